package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	if got := KindOf(NotFoundf("missing")); got != KindNotFound {
		t.Fatalf("expected KindNotFound, got %v", got)
	}
	if got := KindOf(Conflictf("duplicate")); got != KindConflict {
		t.Fatalf("expected KindConflict, got %v", got)
	}
	if got := KindOf(InvalidArgumentf("bad input")); got != KindInvalidArgument {
		t.Fatalf("expected KindInvalidArgument, got %v", got)
	}
	if got := KindOf(errors.New("plain")); got != KindUnexpected {
		t.Fatalf("expected KindUnexpected for foreign error, got %v", got)
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Conflictf("duplicate subject"))
	if got := KindOf(wrapped); got != KindConflict {
		t.Fatalf("expected KindConflict through wrapping, got %v", got)
	}
}

func TestMessageOf(t *testing.T) {
	err := Unexpected("query failed", errors.New("disk full"))
	if got := MessageOf(err); got != "query failed" {
		t.Fatalf("expected bare message, got %q", got)
	}
	if got := err.Error(); got != "query failed: disk full" {
		t.Fatalf("expected cause in Error(), got %q", got)
	}
	if got := MessageOf(errors.New("plain")); got != "plain" {
		t.Fatalf("expected fallback to Error(), got %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Unexpected("query failed", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to reach the cause")
	}
}
