package app

import (
	"context"

	"github.com/orgball2608/hony-redirect/internal/metrics"
	"github.com/orgball2608/hony-redirect/internal/monitor"
	"github.com/orgball2608/hony-redirect/internal/selection"
	"github.com/orgball2608/hony-redirect/internal/selection/selectionimpl"
	"github.com/orgball2608/hony-redirect/internal/server"
	"github.com/orgball2608/hony-redirect/internal/telegram/telegramimpl"
	"github.com/orgball2608/hony-redirect/internal/tumblr"
	"github.com/orgball2608/hony-redirect/internal/tumblr/tumblrimpl"
	"github.com/orgball2608/hony-redirect/pkg/config"
	"github.com/orgball2608/hony-redirect/pkg/logger"
	"github.com/orgball2608/hony-redirect/pkg/tracing"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	metrics.Module,
	fx.Provide(
		fx.Annotate(
			tumblrimpl.New,
			fx.As(new(tumblr.Client)),
		),
		fx.Annotate(
			selectionimpl.New,
			fx.As(new(selection.Client)),
		),
		telegramimpl.New,
		monitor.New,
		server.New,
	),
	fx.Invoke(tracing.New),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, log logger.Logger, srv *server.Server, mon *monitor.Monitor) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			srv.Start()

			// The start context expires once fx finishes starting, the probe outlives it.
			if err := mon.ScheduleUpstreamCheck(context.Background()); err != nil {
				log.Error("Failed to schedule upstream check", "error", err)
				return err
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := mon.Shutdown(); err != nil {
				log.Error("Failed to stop upstream check", "error", err)
			}
			return srv.Shutdown(ctx)
		},
	})
}
