package provider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
)

func TestFailed_MatchesSentinelAndCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := Failed(cause)

	if !errors.Is(err, ErrCompletionFailed) {
		t.Error("expected ErrCompletionFailed")
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be preserved")
	}
}

func TestIsTransient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "429", err: &StatusError{Provider: "openai", StatusCode: 429, Err: errors.New("slow down")}, want: true},
		{name: "503", err: Failed(&StatusError{Provider: "anthropic", StatusCode: 503, Err: errors.New("overloaded")}), want: true},
		{name: "400", err: &StatusError{Provider: "openai", StatusCode: 400, Err: errors.New("bad")}, want: false},
		{name: "401", err: &StatusError{Provider: "openai", StatusCode: 401, Err: errors.New("key")}, want: false},
		{name: "network", err: fmt.Errorf("dial: %w", &net.OpError{Op: "dial", Err: errors.New("refused")}), want: true},
		{name: "canceled", err: Failed(context.Canceled), want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: false},
		{name: "empty response", err: Failed(errors.New("no choices")), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
