package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		MaxDelay:    4 * time.Millisecond,
		Multiplier:  2,
	}
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoExhaustsAttempts(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := Do(context.Background(), fastPolicy(), func(ctx context.Context) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestDoStopsOnNonRetryable(t *testing.T) {
	fatal := errors.New("fatal")
	p := fastPolicy()
	p.Retryable = func(err error) bool { return !errors.Is(err, fatal) }

	calls := 0
	err := Do(context.Background(), p, func(ctx context.Context) error {
		calls++
		return fatal
	})

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls)
}

func TestDoHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	p := fastPolicy()
	p.BaseDelay = time.Minute // would block without cancellation

	done := make(chan error, 1)
	go func() {
		done <- Do(ctx, p, func(ctx context.Context) error {
			return errors.New("keep trying")
		})
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Do did not return after cancellation")
	}
}

// hintedError carries a provider reset hint.
type hintedError struct{ hint time.Duration }

func (e *hintedError) Error() string                 { return "rate limited" }
func (e *hintedError) RetryAfterHint() time.Duration { return e.hint }

func TestDoUsesRetryAfterHint(t *testing.T) {
	p := Policy{MaxAttempts: 2, BaseDelay: time.Millisecond, Multiplier: 1}

	start := time.Now()
	calls := 0
	err := Do(context.Background(), p, func(ctx context.Context) error {
		calls++
		return &hintedError{hint: 50 * time.Millisecond}
	})

	require.Error(t, err)
	assert.Equal(t, 2, calls)
	// The 50ms hint overrides the 1ms computed backoff.
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestDoCapsHintAtPolicyCeiling(t *testing.T) {
	p := Policy{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 1}

	start := time.Now()
	err := Do(context.Background(), p, func(ctx context.Context) error {
		return &hintedError{hint: 2 * time.Second}
	})

	require.Error(t, err)
	// Two waits, each clamped to the 5ms ceiling instead of the 2s hint.
	assert.Less(t, time.Since(start), 500*time.Millisecond)

	var h *hintedError
	require.ErrorAs(t, err, &h)
	assert.Equal(t, 2*time.Second, h.RetryAfterHint(), "the surfaced error keeps the full hint")
}

func TestDelayBackoffCeiling(t *testing.T) {
	p := Policy{BaseDelay: time.Second, MaxDelay: 3 * time.Second, Multiplier: 2}

	assert.Equal(t, time.Second, p.delay(0))
	assert.Equal(t, 2*time.Second, p.delay(1))
	assert.Equal(t, 3*time.Second, p.delay(2)) // capped
	assert.Equal(t, 3*time.Second, p.delay(5))
}

func TestDefaultPolicyShape(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, 4, p.MaxAttempts)
	assert.True(t, p.Jitter)
	assert.NotNil(t, p.Retryable)
}
