package ctxutil

import (
	"context"
	"testing"
)

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromCtx(ctx); got != "req-1" {
		t.Fatalf("expected req-1, got %q", got)
	}
}

func TestRequestIDFromCtx_Missing(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestRequestIDFromCtx_StringKeyDoesNotCollide(t *testing.T) {
	t.Parallel()

	//nolint:staticcheck // deliberately uses a plain string key
	ctx := context.WithValue(context.Background(), "request_id", "spoofed")
	if got := RequestIDFromCtx(ctx); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
