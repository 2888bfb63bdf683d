package monitor

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/hony-redirect/internal/telegram"
	"github.com/orgball2608/hony-redirect/internal/tumblr"
	"github.com/orgball2608/hony-redirect/pkg/config"
	"github.com/orgball2608/hony-redirect/pkg/formatter"
	"github.com/orgball2608/hony-redirect/pkg/logger"
	"go.uber.org/fx"
)

const checkTimeout = 30 * time.Second

const (
	stateUnknown int32 = iota
	stateHealthy
	stateFailing
)

type Opts struct {
	fx.In

	Tumblr   tumblr.Client
	Telegram telegram.Client
	Logger   logger.Logger
	Config   *config.Config
}

// Monitor probes the Tumblr API on a schedule and tracks whether it answers.
type Monitor struct {
	tumblr    tumblr.Client
	telegram  telegram.Client
	logger    logger.Logger
	interval  time.Duration
	state     atomic.Int32
	scheduler gocron.Scheduler
	cancel    context.CancelFunc
}

func New(opts Opts) *Monitor {
	return &Monitor{
		tumblr:   opts.Tumblr,
		telegram: opts.Telegram,
		logger:   opts.Logger.WithComponent("Monitor"),
		interval: opts.Config.Monitor.Interval,
	}
}

// Ready reports whether the last probe reached the API.
func (m *Monitor) Ready() bool {
	return m.state.Load() == stateHealthy
}

// Check runs one probe. Alerts go out only when the API state changes.
func (m *Monitor) Check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	total, err := m.tumblr.PostsCount(ctx)
	if err != nil {
		if prev := m.state.Swap(stateFailing); prev != stateFailing {
			m.logger.Error("Tumblr API check failed", "error", err)
			m.notify(fmt.Sprintf("Tumblr API check failed: %v", err))
		}
		return
	}

	switch m.state.Swap(stateHealthy) {
	case stateFailing:
		m.logger.Info("Tumblr API reachable again", "total_posts", total)
		m.notify(fmt.Sprintf("Tumblr API reachable again, %s posts", formatter.FormatNumber(total)))
	case stateUnknown:
		m.logger.Info("Tumblr API reachable", "total_posts", total)
	}
}

func (m *Monitor) notify(message string) {
	if err := m.telegram.NotifyUser(message); err != nil {
		m.logger.Warn("Failed to send alert", "error", err)
	}
}

// ScheduleUpstreamCheck probes right away and then every configured interval.
func (m *Monitor) ScheduleUpstreamCheck(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create monitor scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	_, err = scheduler.NewJob(
		gocron.DurationJob(m.interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}
			m.Check(ctx)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to schedule upstream check: %w", err)
	}

	m.scheduler = scheduler
	m.cancel = cancel
	scheduler.Start()
	m.logger.Info("Upstream check scheduled", "interval", m.interval.String())
	return nil
}

func (m *Monitor) Shutdown() error {
	if m.scheduler == nil {
		return nil
	}
	m.cancel()
	if err := m.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down monitor scheduler: %w", err)
	}
	return nil
}
