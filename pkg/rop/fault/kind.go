package fault

// Kind classifies a fault into one of the closed set of categories.
// The set is deliberately closed: callers branch on it, transport
// adapters map it, and nothing in the library invents new values.
type Kind uint8

const (
	// Other is the zero value and catches everything unclassified.
	Other Kind = iota
	// NotFound indicates a requested resource does not exist.
	NotFound
	// PermissionDenied indicates the caller lacks access rights.
	PermissionDenied
	// ConnectionRefused indicates a remote endpoint rejected a connection.
	ConnectionRefused
	// ConnectionReset indicates a connection was dropped by the peer.
	ConnectionReset
	// Timeout indicates a bounded wait expired before completion.
	Timeout
	// Interrupted indicates an operation was cancelled while waiting.
	Interrupted
	// InvalidInput indicates the caller supplied a malformed argument.
	InvalidInput
	// NotSupported indicates the operation is not available.
	NotSupported
	// IO indicates a generic input/output failure.
	IO
	// AlreadyExists indicates a resource conflict on creation.
	AlreadyExists
	// InvalidOperation indicates the operation is illegal in the current
	// lifecycle state, e.g. acquiring a disposed lock.
	InvalidOperation
	// ParseError indicates textual data could not be decoded.
	ParseError
	// ResourceExhausted indicates a limited resource is currently busy,
	// e.g. a non-blocking lock attempt on a held lock.
	ResourceExhausted
	// InvalidState indicates an internal invariant does not hold.
	InvalidState
)

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case NotFound:
		return "NotFound"
	case PermissionDenied:
		return "PermissionDenied"
	case ConnectionRefused:
		return "ConnectionRefused"
	case ConnectionReset:
		return "ConnectionReset"
	case Timeout:
		return "Timeout"
	case Interrupted:
		return "Interrupted"
	case InvalidInput:
		return "InvalidInput"
	case NotSupported:
		return "NotSupported"
	case IO:
		return "IO"
	case AlreadyExists:
		return "AlreadyExists"
	case InvalidOperation:
		return "InvalidOperation"
	case ParseError:
		return "ParseError"
	case ResourceExhausted:
		return "ResourceExhausted"
	case InvalidState:
		return "InvalidState"
	default:
		return "Other"
	}
}
