package rop

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/ropguard/pkg/rop/fault"
)

// Result is the two-case success/failure container used by the whole
// library instead of (T, error) pairs. Exactly one case is populated.
//
// The zero Result is a value-less failure: it reports neither success
// nor a fault, only IsEmpty. Treat it as "no result produced" and never
// hand it to callers deliberately.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	fail      *fault.Error
	isSuccess bool
	hasValue  bool
}

// Success wraps a value in a successful Result.
func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail wraps a fault in a failed Result.
func Fail[T any](f *fault.Error) Result[T] {
	return Result[T]{
		fail:      f,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailErr converts any error via fault.FromErr and wraps it.
func FailErr[T any](err error) Result[T] {
	return Fail[T](fault.FromErr(err))
}

// Cancel wraps err as an interrupted failure. Errors already classified
// as Timeout keep their kind so timed-out waits stay distinguishable.
func Cancel[T any](err error) Result[T] {
	f := fault.FromErr(err)
	if f != nil && f.Kind() != fault.Interrupted && f.Kind() != fault.Timeout {
		f = f.WithKind(fault.Interrupted)
	}
	return Fail[T](f)
}

// FailFrom transfers a failure across value types, keeping identity and
// creation time of the original result.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		fail:      from.fail,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Result returns the success value, the zero value on failure.
func (r Result[T]) Result() T {
	return r.value
}

// Err returns the failure, nil on success.
func (r Result[T]) Err() *fault.Error {
	return r.fail
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.fail != nil
}

// IsCancel reports whether the failure came from a cancelled or
// timed-out wait rather than a domain error.
func (r Result[T]) IsCancel() bool {
	if r.fail == nil {
		return false
	}
	return r.fail.Kind() == fault.Interrupted || r.fail.Kind() == fault.Timeout
}

func (r Result[T]) HasResult() bool {
	return r.hasValue
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports the documented zero-value state: neither case populated.
func (r Result[T]) IsEmpty() bool {
	return !r.isSuccess && r.fail == nil
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
