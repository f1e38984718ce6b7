package backend

import (
	"context"
	"errors"
	"time"

	"contest_client/internal/common"
)

// withRetry runs fn up to retryAttempts times with linear-growth backoff
// between attempts. This is deliberately separate from the workers' polling
// cadences: a tick should not absorb transient failures silently.
func (c *Client) withRetry(ctx context.Context, op string, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < c.retryAttempts; attempt++ {
		if attempt > 0 {
			delay := c.retryBaseDelay * time.Duration(attempt)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) {
			return lastErr
		}
		c.log.Warn().
			Str("op", op).
			Int("attempt", attempt+1).
			Int("max_attempts", c.retryAttempts).
			Err(lastErr).
			Msg("fetch failed, will retry")
	}
	return lastErr
}

// Only transport-level failures are worth repeating; a 4xx or a parse
// failure will not improve on a second attempt.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return errors.Is(err, common.ErrServiceUnavailable)
}
