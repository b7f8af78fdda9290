package fault

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"strconv"
	"syscall"
)

// classifiers is the static classification table walked by FromErr.
// Order matters: cancellation and timeouts outrank filesystem and
// network conditions, which outrank generic IO.
var classifiers = []struct {
	kind  Kind
	match func(error) bool
}{
	{Interrupted, func(err error) bool { return errors.Is(err, context.Canceled) }},
	{Timeout, func(err error) bool {
		if errors.Is(err, context.DeadlineExceeded) {
			return true
		}
		var ne net.Error
		return errors.As(err, &ne) && ne.Timeout()
	}},
	{NotFound, func(err error) bool { return errors.Is(err, os.ErrNotExist) }},
	{PermissionDenied, func(err error) bool { return errors.Is(err, os.ErrPermission) }},
	{AlreadyExists, func(err error) bool { return errors.Is(err, os.ErrExist) }},
	{ConnectionRefused, func(err error) bool { return errors.Is(err, syscall.ECONNREFUSED) }},
	{ConnectionReset, func(err error) bool {
		return errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE)
	}},
	{ParseError, func(err error) bool {
		var ne *strconv.NumError
		return errors.As(err, &ne)
	}},
	{IO, func(err error) bool {
		return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) ||
			errors.Is(err, io.ErrClosedPipe)
	}},
}

// KindOf classifies an arbitrary error against the static table,
// returning Other when nothing matches. Faults report their own kind.
func KindOf(err error) Kind {
	if err == nil {
		return Other
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind()
	}
	for _, c := range classifiers {
		if c.match(err) {
			return c.kind
		}
	}
	return Other
}

// FromErr converts any error into a fault. Faults pass through untouched;
// foreign errors are classified via KindOf and kept reachable through
// Unwrap for errors.Is interop. Returns nil for a nil error.
func FromErr(err error) *Error {
	if err == nil {
		return nil
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}
	return &Error{msg: err.Error(), kind: KindOf(err), cause: err}
}

// HasKind reports whether any fault in err's chain carries kind.
func HasKind(err error, kind Kind) bool {
	for err != nil {
		if fe, ok := err.(*Error); ok && fe.Kind() == kind {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
