package rop

import (
	"time"

	"github.com/ib-77/ropguard/pkg/rop/fault"
)

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFault defines an interface for types that can return a result or a fault
type WithFault[T any] interface {
	ResultProvider[T]
	// Err returns the fault if the operation failed
	Err() *fault.Error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithCancel extends WithFault with cancellation support
type WithCancel[T any] interface {
	WithFault[T]
	// IsCancel returns true if the operation was cancelled or timed out
	IsCancel() bool
}
