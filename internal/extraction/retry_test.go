package extraction

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackoff(t *testing.T) {
	assert.Equal(t, 2*time.Second, Backoff(1))
	assert.Equal(t, 4*time.Second, Backoff(2))
	assert.Equal(t, 8*time.Second, Backoff(3))
}

func TestRecordFailure(t *testing.T) {
	tests := []struct {
		name        string
		errType     ErrorType
		attempt     int
		maxAttempts int
		shouldRetry bool
	}{
		{"rate limit mid-budget", ErrRateLimit, 1, 3, true},
		{"rate limit on final attempt", ErrRateLimit, 3, 3, false},
		{"api error mid-budget", ErrAPI, 2, 3, true},
		{"parsing error mid-budget", ErrParsing, 1, 3, true},
		{"invalid response mid-budget", ErrInvalidResponse, 2, 3, true},
		{"auth error never retries", ErrAuth, 1, 3, false},
		{"single-attempt budget", ErrRateLimit, 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &retryState{attempt: tt.attempt, maxAttempts: tt.maxAttempts}
			retry := state.recordFailure(&Error{Type: tt.errType})
			assert.Equal(t, tt.shouldRetry, retry)
		})
	}
}

func TestWaitUsesRetryAfterWhenLonger(t *testing.T) {
	sleeper := &fakeSleeper{}
	state := &retryState{
		attempt:     1,
		maxAttempts: 3,
		lastErr:     &Error{Type: ErrRateLimit, RetryAfter: 30 * time.Second},
	}

	require.NoError(t, state.wait(context.Background(), sleeper))
	require.Len(t, sleeper.slept, 1)
	assert.Equal(t, 30*time.Second, sleeper.slept[0])
}

func TestWaitUsesBackoffWhenRetryAfterShorter(t *testing.T) {
	sleeper := &fakeSleeper{}
	state := &retryState{
		attempt:     2,
		maxAttempts: 3,
		lastErr:     &Error{Type: ErrRateLimit, RetryAfter: time.Second},
	}

	require.NoError(t, state.wait(context.Background(), sleeper))
	require.Len(t, sleeper.slept, 1)
	assert.Equal(t, 4*time.Second, sleeper.slept[0])
}

func TestRealSleeperHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := realSleeper{}.Sleep(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}
