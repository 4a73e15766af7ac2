package extraction

import (
	"context"
	"time"
)

// Sleeper abstracts the wait between retry attempts so the retry loop can be
// unit-tested without real timers.
type Sleeper interface {
	// Sleep waits for d or until ctx is cancelled, whichever comes first.
	Sleep(ctx context.Context, d time.Duration) error
}

// realSleeper is the production Sleeper backed by time.After.
type realSleeper struct{}

func (realSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff returns the wait before the attempt following attempt (1-based):
// 2^attempt seconds.
func Backoff(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt)) * time.Second
}

// retryState tracks one extraction run's progress through its attempt
// budget. It deliberately carries the last failure so the decision to retry
// or surface can be made (and tested) in one place.
type retryState struct {
	attempt     int
	maxAttempts int
	lastErr     *Error
}

// recordFailure stores the failure and reports whether another attempt
// should be made.
func (s *retryState) recordFailure(err *Error) bool {
	s.lastErr = err
	if err.Type == ErrAuth {
		return false
	}
	return s.attempt < s.maxAttempts && err.transient()
}

// wait sleeps for the backoff of the attempt that just failed, honoring a
// server-provided Retry-After when it is longer.
func (s *retryState) wait(ctx context.Context, sleeper Sleeper) error {
	d := Backoff(s.attempt)
	if s.lastErr != nil && s.lastErr.RetryAfter > d {
		d = s.lastErr.RetryAfter
	}
	return sleeper.Sleep(ctx, d)
}
