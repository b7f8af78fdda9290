package rop

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	if !IsNil(nil) {
		t.Fatalf("untyped nil must be nil")
	}

	var p *int
	if !IsNil(p) {
		t.Fatalf("typed nil pointer must be nil")
	}

	var m map[string]int
	var s []int
	if !IsNil(m) || !IsNil(s) {
		t.Fatalf("nil map and slice must be nil")
	}

	if IsNil(0) || IsNil("") || IsNil(errors.New("x")) {
		t.Fatalf("non-nil values must not be nil")
	}
}

type nilableErr struct{}

func (*nilableErr) Error() string { return "nilable" }

func TestIsNil_TypedNilInErrorInterface(t *testing.T) {
	t.Parallel()

	var typed *nilableErr
	var err error = typed

	if err == nil {
		t.Fatalf("the interface itself must be non-nil")
	}
	if !IsNil(err) {
		t.Fatalf("typed nil inside an interface must be detected")
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	if got := GetErrors(nil); len(got) != 0 {
		t.Fatalf("nil must yield no errors, got %d", len(got))
	}

	plain := errors.New("single")
	if got := GetErrors(plain); len(got) != 1 || got[0] != plain {
		t.Fatalf("plain error must come back as itself, got %v", got)
	}

	a, b := errors.New("a"), errors.New("b")
	got := GetErrors(errors.Join(a, b))
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("joined errors must be split in order, got %v", got)
	}
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()

	if !IsCancellationError(context.Canceled) ||
		!IsCancellationError(context.DeadlineExceeded) {
		t.Fatalf("context sentinels must count as cancellation")
	}
	if !IsCancellationError(fmt.Errorf("wait: %w", context.Canceled)) {
		t.Fatalf("wrapped cancellation must be detected")
	}
	if IsCancellationError(errors.New("boom")) || IsCancellationError(nil) {
		t.Fatalf("ordinary errors and nil are not cancellations")
	}
}
