// Package retry provides an explicit retry policy: max attempts, exponential
// backoff with jitter, and a classifier deciding which failures are worth
// another attempt. Used by the source client; the generative backend gets a
// single attempt and never goes through a retry loop.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

// Policy configures retry behavior.
type Policy struct {
	MaxAttempts int           // total attempts, including the first
	BaseDelay   time.Duration // delay before the second attempt
	MaxDelay    time.Duration // backoff ceiling
	Multiplier  float64       // backoff growth factor
	Jitter      bool          // randomize each delay by up to +30%
	Retryable   func(error) bool
}

// DefaultPolicy returns the policy used for provider API calls.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 4,
		BaseDelay:   time.Second,
		MaxDelay:    16 * time.Second,
		Multiplier:  2.0,
		Jitter:      true,
		Retryable:   func(error) bool { return true },
	}
}

// delayHinter is implemented by errors that carry a provider-supplied
// retry-after hint (e.g. a rate-limit reset time).
type delayHinter interface {
	RetryAfterHint() time.Duration
}

// Do runs fn until it succeeds, the classifier rejects the failure, attempts
// are exhausted, or ctx is done. The last error is returned unwrapped so
// callers can still classify it.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(lastErr) {
			return lastErr
		}
		if attempt == p.MaxAttempts-1 {
			break
		}

		delay := p.delay(attempt)

		// A provider reset hint overrides the computed backoff when longer,
		// but never past the policy ceiling. A distant reset is not worth
		// holding the caller for; the error keeps the full hint either way.
		var h delayHinter
		if errors.As(lastErr, &h) {
			if hint := h.RetryAfterHint(); hint > delay {
				delay = hint
				if p.MaxDelay > 0 && delay > p.MaxDelay {
					delay = p.MaxDelay
				}
			}
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}

func (p Policy) delay(attempt int) time.Duration {
	d := float64(p.BaseDelay) * math.Pow(p.Multiplier, float64(attempt))
	if max := float64(p.MaxDelay); p.MaxDelay > 0 && d > max {
		d = max
	}
	if p.Jitter {
		d += rand.Float64() * 0.3 * d
	}
	return time.Duration(d)
}
