package telegramimpl

import (
	"io"
	"testing"

	"github.com/orgball2608/hony-redirect/pkg/config"
	"github.com/orgball2608/hony-redirect/pkg/logger"
)

func TestNew_WithoutTokenIsNoop(t *testing.T) {
	client, err := New(Opts{
		Config: &config.Config{},
		Logger: logger.New(logger.Opts{Env: "test", Output: io.Discard}),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := client.(Noop); !ok {
		t.Fatalf("New() = %T, want Noop", client)
	}
	if err := client.NotifyUser("tumblr is down"); err != nil {
		t.Fatalf("NotifyUser() error = %v", err)
	}
}
