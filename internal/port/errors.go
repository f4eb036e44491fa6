package port

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind categorizes failures crossing component boundaries.
type ErrorKind string

const (
	// KindNotFound marks a nonexistent repository or user. Terminal; never
	// retried, since retrying cannot change a missing resource.
	KindNotFound ErrorKind = "not_found"

	// KindRateLimited marks an exhausted provider rate limit. Terminal for
	// the current call; carries the reset time when the provider supplied one.
	KindRateLimited ErrorKind = "rate_limited"

	// KindTransientFetch marks a network fault that survived bounded retries.
	KindTransientFetch ErrorKind = "transient_fetch"

	// KindGenerationFailed marks a generative-backend failure. Never surfaced
	// to the caller; always absorbed by the template fallback.
	KindGenerationFailed ErrorKind = "generation_failed"

	// KindInvalidInput marks an unparseable analysis target.
	KindInvalidInput ErrorKind = "invalid_input"
)

// Error is the structured error returned to callers: kind + message +
// optional retry-after, never a raw transport error.
type Error struct {
	Kind       ErrorKind     `json:"kind"`
	Message    string        `json:"message"`
	RetryAfter time.Duration `json:"retry_after,omitempty"`
	Cause      error         `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// RetryAfterHint exposes the provider-supplied reset hint to retry policies.
func (e *Error) RetryAfterHint() time.Duration { return e.RetryAfter }

// NotFound builds a terminal not-found error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// RateLimited builds a rate-limit error. retryAfter may be zero when the
// provider gave no reset hint.
func RateLimited(message string, retryAfter time.Duration) *Error {
	return &Error{Kind: KindRateLimited, Message: message, RetryAfter: retryAfter}
}

// Transient wraps a network fault that exhausted its retries.
func Transient(message string, cause error) *Error {
	return &Error{Kind: KindTransientFetch, Message: message, Cause: cause}
}

// GenerationFailed wraps a generative-backend failure.
func GenerationFailed(message string, cause error) *Error {
	return &Error{Kind: KindGenerationFailed, Message: message, Cause: cause}
}

// InvalidInput builds an unparseable-target error.
func InvalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or empty when err is not a structured Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
