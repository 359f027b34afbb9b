package app

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

const (
	defaultRetryBase = 2 * time.Second
	maxBackoff       = 30 * time.Second
)

// calculateBackoff doubles base once per failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if base <= 0 {
		base = defaultRetryBase
	}
	d := base
	for i := 0; i < failures && d < maxBackoff; i++ {
		d *= 2
	}
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}

// retryFetch calls fetch up to attempts times, sleeping on clock between
// failures. It returns the last error, or ctx.Err() if cancelled while
// waiting.
func retryFetch(ctx context.Context, clock clockwork.Clock, attempts int, base time.Duration, fetch func(context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		if err = fetch(ctx); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		wait := calculateBackoff(i, base)
		log.Debug().Err(err).Int("attempt", i+1).Dur("wait", wait).Msg("leaderboard fetch failed; retrying")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clock.After(wait):
		}
	}
	return err
}
