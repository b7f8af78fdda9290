package solo

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/ropguard/pkg/rop"
	"github.com/ib-77/ropguard/pkg/rop/fault"
)

func TestSucceedAndFail(t *testing.T) {
	t.Parallel()

	ok := Succeed(10)
	if !ok.IsSuccess() || ok.Result() != 10 {
		t.Fatalf("expected success with 10, got: %v", ok.Err())
	}

	bad := Fail[int](fault.New(fault.IO, "disk gone"))
	if !bad.IsFailure() || bad.Err().Kind() != fault.IO {
		t.Fatalf("expected IO failure, got: %v", bad.Err())
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Validate(ctx, 4, func(_ context.Context, in int) (bool, string) {
		return in%2 == 0, "must be even"
	})
	if !ok.IsSuccess() {
		t.Fatalf("expected success, got: %v", ok.Err())
	}

	bad := Validate(ctx, 5, func(_ context.Context, in int) (bool, string) {
		return in%2 == 0, "must be even"
	})
	if !bad.IsFailure() || bad.Err().Kind() != fault.InvalidInput {
		t.Fatalf("expected InvalidInput failure, got: %v", bad.Err())
	}
	if bad.Err().Message() != "must be even" {
		t.Fatalf("expected validator message, got: %q", bad.Err().Message())
	}
}

func TestAndValidate_PassesFailureThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	failed := rop.Fail[int](fault.New(fault.NotFound, "gone"))
	called := false
	out := AndValidate(ctx, failed, func(_ context.Context, in int) (bool, string) {
		called = true
		return true, ""
	})

	if called {
		t.Fatalf("validator must not run on failed input")
	}
	if out.Err().Kind() != fault.NotFound {
		t.Fatalf("expected original failure, got: %v", out.Err())
	}
}

func TestSwitch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Switch(ctx, Succeed(21), func(_ context.Context, in int) rop.Result[string] {
		if in > 18 {
			return rop.Success("adult")
		}
		return rop.Fail[string](fault.New(fault.InvalidInput, "minor"))
	})
	if !out.IsSuccess() || out.Result() != "adult" {
		t.Fatalf("expected adult, got: %v", out.Err())
	}

	moved := Switch(ctx, rop.Fail[int](fault.New(fault.Timeout, "late")),
		func(_ context.Context, in int) rop.Result[string] { return rop.Success("x") })
	if !moved.IsFailure() || moved.Err().Kind() != fault.Timeout {
		t.Fatalf("expected Timeout carried over, got: %v", moved.Err())
	}
	if !moved.IsCancel() {
		t.Fatalf("timeout failure must count as cancel")
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(ctx, Succeed(3), func(_ context.Context, in int) int { return in * in })
	if out.Result() != 9 {
		t.Fatalf("expected 9, got %d", out.Result())
	}
}

func TestTry_ConvertsErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	bad := Try(ctx, Succeed("abc"), func(_ context.Context, in string) (int, error) {
		return 0, errors.New("no digits")
	})
	if !bad.IsFailure() || bad.Err().Kind() != fault.Other {
		t.Fatalf("expected Other failure, got: %v", bad.Err())
	}

	cancelled := Try(ctx, Succeed("x"), func(_ context.Context, in string) (int, error) {
		return 0, context.Canceled
	})
	if !cancelled.IsCancel() || cancelled.Err().Kind() != fault.Interrupted {
		t.Fatalf("expected Interrupted, got: %v", cancelled.Err())
	}
}

func TestTry_TypedNilErrorIsSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Try(ctx, Succeed(7), func(_ context.Context, in int) (int, error) {
		var f *fault.Error // typed nil inside the error interface
		return in * 2, f
	})
	if !out.IsSuccess() || out.Result() != 14 {
		t.Fatalf("typed nil error must not fail the result, got: %v", out.Err())
	}
}

func TestFailOnError_TypedNil(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FailOnError(ctx, Succeed(1), func(_ context.Context, in int) error {
		var f *fault.Error
		return f
	})
	if !out.IsSuccess() {
		t.Fatalf("typed nil error must not fail the result, got: %v", out.Err())
	}
}

func TestTee_RunsOnSuccessOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	Tee(ctx, Succeed(1), func(_ context.Context, r rop.Result[int]) { seen++ })
	Tee(ctx, rop.Fail[int](fault.New(fault.IO, "x")), func(_ context.Context, r rop.Result[int]) { seen++ })

	if seen != 1 {
		t.Fatalf("expected exactly one side effect, got %d", seen)
	}
}

func TestDoubleTee_RoutesByOutcome(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var route string
	handlers := func() (func(context.Context, int), func(context.Context, *fault.Error), func(context.Context, *fault.Error)) {
		return func(context.Context, int) { route = "success" },
			func(context.Context, *fault.Error) { route = "fault" },
			func(context.Context, *fault.Error) { route = "cancel" }
	}

	s, f, c := handlers()
	DoubleTee(ctx, Succeed(1), s, f, c)
	if route != "success" {
		t.Fatalf("expected success route, got %q", route)
	}

	s, f, c = handlers()
	DoubleTee(ctx, rop.Fail[int](fault.New(fault.IO, "x")), s, f, c)
	if route != "fault" {
		t.Fatalf("expected fault route, got %q", route)
	}

	s, f, c = handlers()
	DoubleTee(ctx, rop.Cancel[int](context.Canceled), s, f, c)
	if route != "cancel" {
		t.Fatalf("expected cancel route, got %q", route)
	}
}

func TestFailOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := FailOnError(ctx, Succeed(2), func(_ context.Context, in int) error { return nil })
	if !ok.IsSuccess() {
		t.Fatalf("expected success, got: %v", ok.Err())
	}

	bad := FailOnError(ctx, Succeed(2), func(_ context.Context, in int) error {
		return errors.New("rejected")
	})
	if !bad.IsFailure() {
		t.Fatalf("expected failure")
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	collapse := func(r rop.Result[int]) string {
		return Finally(ctx, r,
			func(_ context.Context, v int) string { return "ok" },
			func(_ context.Context, f *fault.Error) string { return "fault" },
			func(_ context.Context, f *fault.Error) string { return "cancel" })
	}

	if got := collapse(Succeed(1)); got != "ok" {
		t.Fatalf("expected ok, got %q", got)
	}
	if got := collapse(rop.Fail[int](fault.New(fault.IO, "x"))); got != "fault" {
		t.Fatalf("expected fault, got %q", got)
	}
	if got := collapse(rop.Cancel[int](context.Canceled)); got != "cancel" {
		t.Fatalf("expected cancel, got %q", got)
	}
}
