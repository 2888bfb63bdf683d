package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/orgball2608/hony-redirect/pkg/logger"
)

type Config struct {
	MaxRetries uint64
	// Unbounded retries until the operation succeeds or the context ends.
	Unbounded       bool
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      1.5,
	}
}

// Immediate runs at most maxAttempts attempts back to back, zero means no limit.
func Immediate(maxAttempts uint64) Config {
	if maxAttempts == 0 {
		return Config{Unbounded: true}
	}
	return Config{MaxRetries: maxAttempts - 1}
}

// Permanent marks err as final, Do returns it without another attempt.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

func Do(ctx context.Context, log logger.Logger, operationName string, operation func() error, cfg Config) error {
	var bo backoff.BackOff
	if cfg.InitialInterval <= 0 {
		bo = &backoff.ZeroBackOff{}
	} else {
		exp := backoff.NewExponentialBackOff()
		exp.InitialInterval = cfg.InitialInterval
		exp.MaxInterval = cfg.MaxInterval
		exp.Multiplier = cfg.Multiplier
		exp.MaxElapsedTime = 0
		exp.Reset()
		bo = exp
	}

	if !cfg.Unbounded {
		bo = backoff.WithMaxRetries(bo, cfg.MaxRetries)
	}
	retryableWithContext := backoff.WithContext(bo, ctx)

	notify := func(err error, t time.Duration) {
		log.Debug(
			"Operation not done, retrying",
			"operation", operationName,
			"reason", err,
			"next_attempt_in", t.Round(time.Millisecond).String(),
		)
	}

	return backoff.RetryNotify(operation, retryableWithContext, notify)
}
