package valid

import (
	"github.com/ib-77/ropguard/pkg/rop"
	"github.com/ib-77/ropguard/pkg/rop/fault"
)

// Validation carries a value together with every fault found so far.
// A Validation with no faults is valid. Methods are non-mutating.
type Validation[T any] struct {
	value  T
	faults []*fault.Error
}

// Valid starts a validation with no faults.
func Valid[T any](v T) Validation[T] {
	return Validation[T]{value: v}
}

// Invalid starts a validation already carrying faults.
func Invalid[T any](v T, faults ...*fault.Error) Validation[T] {
	return Validation[T]{value: v, faults: cloneFaults(faults)}
}

func (v Validation[T]) IsValid() bool {
	return len(v.faults) == 0
}

// Value returns the validated value regardless of faults.
func (v Validation[T]) Value() T {
	return v.value
}

// Faults returns a copy of the accumulated faults.
func (v Validation[T]) Faults() []*fault.Error {
	return cloneFaults(v.faults)
}

// Check runs a predicate and appends a fault of kind InvalidInput when
// it reports a problem. The value flows on either way.
func (v Validation[T]) Check(check func(T) (ok bool, msg string)) Validation[T] {
	ok, msg := check(v.value)
	if ok {
		return v
	}
	return Validation[T]{
		value:  v.value,
		faults: append(cloneFaults(v.faults), fault.New(fault.InvalidInput, msg)),
	}
}

// Add appends an explicit fault.
func (v Validation[T]) Add(f *fault.Error) Validation[T] {
	return Validation[T]{value: v.value, faults: append(cloneFaults(v.faults), f)}
}

// AddErr flattens err into its component errors (aggregates built with
// errors.Join are split) and appends each as a classified fault. A nil
// err leaves the validation untouched.
func (v Validation[T]) AddErr(err error) Validation[T] {
	errs := rop.GetErrors(err)
	if len(errs) == 0 {
		return v
	}

	faults := cloneFaults(v.faults)
	for _, e := range errs {
		faults = append(faults, fault.FromErr(e))
	}
	return Validation[T]{value: v.value, faults: faults}
}

// Join merges the faults of another validation over the receiver's value.
func (v Validation[T]) Join(other Validation[T]) Validation[T] {
	if len(other.faults) == 0 {
		return v
	}
	return Validation[T]{value: v.value, faults: append(cloneFaults(v.faults), other.faults...)}
}

// ToResult collapses the validation: success when fault-free, otherwise
// one fault chain with the first problem outermost.
func (v Validation[T]) ToResult() rop.Result[T] {
	if len(v.faults) == 0 {
		return rop.Success(v.value)
	}
	return rop.Fail[T](Combine(v.faults))
}

// Combine folds faults into a single chain, first fault outermost.
// Every fault keeps its metadata and stack. Returns nil for an empty
// slice.
func Combine(faults []*fault.Error) *fault.Error {
	return fault.Join(faults...)
}

func cloneFaults(in []*fault.Error) []*fault.Error {
	if len(in) == 0 {
		return nil
	}
	out := make([]*fault.Error, len(in))
	copy(out, in)
	return out
}
