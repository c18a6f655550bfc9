package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{Provider: "statsapi", StatusCode: 502, Message: "bad gateway"}
	want := "statsapi: bad gateway (status=502)"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}

	bare := &StatusError{Provider: "statsapi"}
	if bare.Error() != "statsapi: unexpected upstream status" {
		t.Fatalf("unexpected message %q", bare.Error())
	}
}

func TestAsStatusErrorUnwraps(t *testing.T) {
	inner := &StatusError{Provider: "statsapi", StatusCode: 404}
	wrapped := fmt.Errorf("fetch failed: %w", inner)

	got, ok := AsStatusError(wrapped)
	if !ok {
		t.Fatal("expected unwrap to succeed")
	}
	if got.StatusCode != 404 {
		t.Fatalf("unexpected status %d", got.StatusCode)
	}

	if _, ok := AsStatusError(errors.New("plain")); ok {
		t.Fatal("expected plain error to not unwrap")
	}
}

func TestIsCancellation(t *testing.T) {
	if !IsCancellation(context.Canceled) {
		t.Fatal("expected context.Canceled to count")
	}
	if !IsCancellation(fmt.Errorf("wrapped: %w", context.Canceled)) {
		t.Fatal("expected wrapped cancellation to count")
	}
	if IsCancellation(context.DeadlineExceeded) {
		t.Fatal("expected an upstream timeout to not count as a cancellation")
	}
	if IsCancellation(errors.New("boom")) {
		t.Fatal("expected plain error to not count")
	}
	if IsCancellation(nil) {
		t.Fatal("expected nil to not count")
	}
}
