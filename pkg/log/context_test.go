package log

import (
	"context"
	"testing"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "first")
	ctx = WithRequestID(ctx, "second")

	if id := RequestIDFromContext(ctx); id != "second" {
		t.Errorf("RequestIDFromContext() = %q, want %q", id, "second")
	}
}

func TestRequestIDFromContext_Missing_ReturnsEmpty(t *testing.T) {
	if id := RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", id)
	}
	if id := RequestIDFromContext(nil); id != "" {
		t.Errorf("RequestIDFromContext(nil) = %q, want empty", id)
	}
}

func TestWithFields_MergesWithoutMutatingParent(t *testing.T) {
	parent := WithFields(context.Background(), "a", "1")
	child := WithFields(parent, "b", "2")

	if got := FieldsFromContext(child); got["a"] != "1" || got["b"] != "2" {
		t.Errorf("child fields = %v", got)
	}
	if _, ok := FieldsFromContext(parent)["b"]; ok {
		t.Error("parent fields should not see child keys")
	}
}

func TestFieldsFromContext_NoFields_ReturnsNil(t *testing.T) {
	if fields := FieldsFromContext(context.Background()); fields != nil {
		t.Errorf("FieldsFromContext() = %v, want nil", fields)
	}
}
