package rop

import "github.com/ib-77/ropguard/pkg/rop/fault"

// Option is a presence/absence container: Some(v) or None.
type Option[T any] struct {
	value  T
	isSome bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, isSome: true}
}

// None is the absent case. The zero Option is None.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.isSome
}

func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.isSome
}

// OrElse returns the value when present, def otherwise.
func (o Option[T]) OrElse(def T) T {
	if o.isSome {
		return o.value
	}
	return def
}

// ToResult lifts the option into a Result, failing with the given kind
// and message when the option is None.
func (o Option[T]) ToResult(kind fault.Kind, msg string) Result[T] {
	if o.isSome {
		return Success(o.value)
	}
	return Fail[T](fault.New(kind, msg))
}

// MapOption transforms a present value, preserving None.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.isSome {
		return Some(fn(o.value))
	}
	return None[U]()
}
