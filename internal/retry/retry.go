package retry

import (
	"context"
	"time"

	ai "github.com/spetersoncode/sentibot"
)

// effectiveDelay returns the delay to use, honoring the server's Retry-After if larger.
func effectiveDelay(configuredDelay time.Duration, err error) time.Duration {
	if serverDelay := ai.RetryAfterOf(err); serverDelay > configuredDelay {
		return serverDelay
	}
	return configuredDelay
}

// Do executes fn, retrying while it fails with a transient error.
// It respects context cancellation during backoff waits.
// Returns the result on success, or the last error if all attempts fail.
func Do[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err
		if !IsTransient(err) {
			return zero, err
		}

		// Don't sleep after the last attempt
		if attempt == attempts-1 {
			break
		}

		delay := effectiveDelay(cfg.Delay(attempt), err)
		if cfg.OnRetry != nil {
			cfg.OnRetry(Event{
				Attempt:     attempt + 1,
				MaxAttempts: attempts,
				Err:         err,
				Delay:       delay,
			})
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	return zero, lastErr
}
