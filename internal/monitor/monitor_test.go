package monitor

import (
	"context"
	"io"
	"testing"

	mock_telegram "github.com/orgball2608/hony-redirect/internal/telegram/mocks"
	mock_tumblr "github.com/orgball2608/hony-redirect/internal/tumblr/mocks"
	"github.com/orgball2608/hony-redirect/pkg/config"
	"github.com/orgball2608/hony-redirect/pkg/errors"
	"github.com/orgball2608/hony-redirect/pkg/logger"
	"go.uber.org/mock/gomock"
)

func newTestMonitor(t *testing.T) (*Monitor, *mock_tumblr.MockClient, *mock_telegram.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tc := mock_tumblr.NewMockClient(ctrl)
	tg := mock_telegram.NewMockClient(ctrl)

	m := New(Opts{
		Tumblr:   tc,
		Telegram: tg,
		Logger:   logger.New(logger.Opts{Env: "test", Output: io.Discard}),
		Config:   &config.Config{},
	})
	return m, tc, tg
}

func TestCheck_HealthyOnStartDoesNotAlert(t *testing.T) {
	m, tc, _ := newTestMonitor(t)
	tc.EXPECT().PostsCount(gomock.Any()).Return(7260, nil)

	if m.Ready() {
		t.Fatal("Ready() = true before any check")
	}
	m.Check(context.Background())
	if !m.Ready() {
		t.Fatal("Ready() = false after a successful check")
	}
}

func TestCheck_AlertsOnTransitionsOnly(t *testing.T) {
	m, tc, tg := newTestMonitor(t)
	upstream := errors.Upstream(503, "tumblr info")

	gomock.InOrder(
		tc.EXPECT().PostsCount(gomock.Any()).Return(7260, nil),
		tc.EXPECT().PostsCount(gomock.Any()).Return(0, upstream),
		tg.EXPECT().NotifyUser(gomock.Any()).Return(nil),
		tc.EXPECT().PostsCount(gomock.Any()).Return(0, upstream),
		tc.EXPECT().PostsCount(gomock.Any()).Return(7261, nil),
		tg.EXPECT().NotifyUser("Tumblr API reachable again, 7,261 posts").Return(nil),
		tc.EXPECT().PostsCount(gomock.Any()).Return(7261, nil),
	)

	wantReady := []bool{true, false, false, true, true}
	for i, want := range wantReady {
		m.Check(context.Background())
		if got := m.Ready(); got != want {
			t.Fatalf("check %d: Ready() = %v, want %v", i, got, want)
		}
	}
}

func TestCheck_AlertFailureIsNotFatal(t *testing.T) {
	m, tc, tg := newTestMonitor(t)
	tc.EXPECT().PostsCount(gomock.Any()).Return(0, errors.Upstream(500, "tumblr info"))
	tg.EXPECT().NotifyUser(gomock.Any()).Return(errors.New("telegram down"))

	m.Check(context.Background())
	if m.Ready() {
		t.Fatal("Ready() = true after a failed check")
	}
}

func TestShutdown_WithoutSchedule(t *testing.T) {
	m, _, _ := newTestMonitor(t)
	if err := m.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
}
