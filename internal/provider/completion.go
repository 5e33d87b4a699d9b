package provider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrCompletionFailed is returned by every completion adapter when no usable
// text could be obtained: transport error, non-2xx status or empty result.
var ErrCompletionFailed = errors.New("completion failed")

// StatusError records a non-2xx response from a completion API.
type StatusError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %v", e.Provider, e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error { return e.Err }

// Failed wraps cause so that it matches ErrCompletionFailed while keeping the
// cause inspectable.
func Failed(cause error) error {
	return fmt.Errorf("%w: %w", ErrCompletionFailed, cause)
}

// IsTransient reports whether a completion error is worth retrying:
// rate limiting, 5xx responses and network failures. Context cancellation is
// never transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode == http.StatusTooManyRequests || se.StatusCode >= 500
	}

	var ne net.Error
	return errors.As(err, &ne)
}
