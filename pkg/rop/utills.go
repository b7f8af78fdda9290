package rop

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether i is nil, including a typed nil pointer, map,
// slice, func or channel hiding inside a non-nil interface. Error
// returns from reflective or generated code are the usual offenders.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// GetErrors flattens err into its component errors. Aggregates built
// with errors.Join (or anything exposing Unwrap() []error) are split;
// a plain error becomes a single-element slice and nil yields none.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}

	return []error{err}
}

// IsCancellationError reports whether err stems from context
// cancellation or an expired deadline.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
