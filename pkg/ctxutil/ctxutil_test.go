package ctxutil

import (
	"context"
	"testing"
)

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")

	got := RequestIDFromCtx(ctx)
	if got != "req-123" {
		t.Fatalf("expected req-123, got %q", got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestRequestIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("request_id"), 42)

	if got := RequestIDFromCtx(ctx); got != "" {
		t.Fatalf("expected empty string for wrong type, got %q", got)
	}
}
