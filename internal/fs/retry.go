package fs

import (
	"context"
	"fmt"
	"time"
)

// retry budget for listing and removal; tests shrink retryBase.
var (
	retryAttempts = 4
	retryBase     = 50 * time.Millisecond
)

// retry runs fn until it succeeds, fails permanently or the budget runs out.
// Only transient errors are retried, with exponential backoff.
func retry(ctx context.Context, opName string, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= retryAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !isTransient(err) {
			return fmt.Errorf("%s failed permanently: %w", opName, err)
		}
		if attempt == retryAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBase * (1 << (attempt - 1))):
		}
	}

	return fmt.Errorf("%s failed after %d retries: %w", opName, retryAttempts, lastErr)
}
