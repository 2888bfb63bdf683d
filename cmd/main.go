package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orgball2608/hony-redirect/internal/app"
	"github.com/orgball2608/hony-redirect/pkg/logger"
	"go.uber.org/fx"
)

const stopTimeout = 15 * time.Second

func main() {
	log := logger.New(logger.Opts{Env: os.Getenv("APP_ENV")})

	application := fx.New(
		fx.Logger(log),
		app.Module,
	)

	if err := application.Start(context.Background()); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal, stopping", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	if err := application.Stop(ctx); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}
}
