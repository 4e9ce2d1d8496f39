package storage

import (
	"context"
	"errors"
	"time"
)

// RetryPolicy bounds retries of transient persistence failures with
// exponential backoff. Explicit saves use it; autosave never retries.
type RetryPolicy struct {
	Attempts  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

// DefaultRetryPolicy is a small, bounded policy suitable for user-triggered
// saves: three attempts, 100ms doubling backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts:  3,
		BaseDelay: 100 * time.Millisecond,
		MaxDelay:  2 * time.Second,
	}
}

// Do runs fn until it succeeds, the attempts are exhausted, or the context is
// done. Not-found errors are never retried.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = 1
	}
	delay := p.BaseDelay

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if waitErr := wait(ctx, delay); waitErr != nil {
				return waitErr
			}
			delay *= 2
			if p.MaxDelay > 0 && delay > p.MaxDelay {
				delay = p.MaxDelay
			}
		}
		err = fn()
		if err == nil {
			return nil
		}
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return err
		}
	}
	return err
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
