package fault

import (
	"fmt"
	"runtime"
	"strings"
)

// Error is an immutable fault node. A chain of nodes (via source) records
// how a low-level failure travelled up through the layers; the outermost
// node carries the most recent context.
//
// All WithX methods return a fresh *Error; receivers are never mutated.
type Error struct {
	msg    string
	kind   Kind
	source *Error // inner fault this one was layered on, nil at the root
	cause  error  // foreign error captured by FromErr, nil otherwise
	meta   fields
	stack  string
}

// New creates a fault with the given kind and message.
func New(kind Kind, msg string) *Error {
	return &Error{msg: msg, kind: kind}
}

// Newf creates a fault with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...), kind: kind}
}

// Error implements the error interface with a compact single-node form.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.msg == "" {
		return e.kind.String()
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

// Unwrap exposes the chain to errors.Is / errors.As. The inner fault wins
// over a captured foreign cause; FromErr keeps both reachable.
func (e *Error) Unwrap() error {
	if e.source != nil {
		return e.source
	}
	if e.cause != nil {
		return e.cause
	}
	return nil
}

// Message returns the node's own message, without kind or chain.
func (e *Error) Message() string { return e.msg }

// Kind returns the node's classification.
func (e *Error) Kind() Kind { return e.kind }

// Source returns the inner fault this node wraps, or nil.
func (e *Error) Source() *Error { return e.source }

// Meta returns a copy of the ordered metadata.
func (e *Error) Meta() []Field {
	out := make([]Field, len(e.meta))
	copy(out, e.meta)
	return out
}

// MetaValue returns the metadata value stored under key.
func (e *Error) MetaValue(key string) (Value, bool) { return e.meta.lookup(key) }

// Stack returns the captured stack trace, empty when none was requested.
func (e *Error) Stack() string { return e.stack }

// WithContext layers a new node with msg on top of e. The new node
// inherits e's kind; use WithKind afterwards to reclassify.
func (e *Error) WithContext(msg string) *Error {
	return &Error{msg: msg, kind: e.kind, source: e}
}

// WithMeta returns a copy of e with one more metadata field appended.
func (e *Error) WithMeta(key string, v Value) *Error {
	n := e.clone()
	n.meta = cloneAppend(n.meta, Field{Key: key, Value: v})
	return n
}

// WithKind returns a copy of e reclassified as kind.
func (e *Error) WithKind(kind Kind) *Error {
	n := e.clone()
	n.kind = kind
	return n
}

// WithStack returns a copy of e carrying the current goroutine's stack.
func (e *Error) WithStack() *Error {
	n := e.clone()
	n.stack = captureStack(2)
	return n
}

// Join links faults into one chain, first fault outermost. Every node
// is cloned with its message, kind, metadata and stack intact; a fault
// that already carries a chain keeps it, with the next fault attached
// below its deepest node. Nil entries are skipped; joining nothing
// yields nil and a single fault passes through unchanged.
func Join(faults ...*Error) *Error {
	var chain *Error
	for i := len(faults) - 1; i >= 0; i-- {
		f := faults[i]
		if f == nil {
			continue
		}
		if chain == nil {
			chain = f
			continue
		}
		chain = f.withTail(chain)
	}
	return chain
}

// withTail clones e's chain and hangs tail off its deepest node.
func (e *Error) withTail(tail *Error) *Error {
	n := e.clone()
	if e.source != nil {
		n.source = e.source.withTail(tail)
	} else {
		n.source = tail
	}
	return n
}

func (e *Error) clone() *Error {
	n := *e
	if len(e.meta) > 0 {
		n.meta = cloneAppend(e.meta)
	}
	return &n
}

// maxChainDepth bounds cause-chain traversal so that display always
// terminates even on absurdly deep chains.
const maxChainDepth = 50

// Detail renders the full cause chain, one node per line, newest first.
// Traversal stops at maxChainDepth nodes or on a revisited node.
func (e *Error) Detail() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	seen := make(map[*Error]struct{}, 8)

	node := e
	for depth := 0; node != nil; depth++ {
		if depth >= maxChainDepth {
			b.WriteString("\n  ... chain truncated")
			break
		}
		if _, ok := seen[node]; ok {
			b.WriteString("\n  ... chain cycle detected")
			break
		}
		seen[node] = struct{}{}

		if depth > 0 {
			b.WriteString("\n  caused by: ")
		}
		b.WriteString(node.Error())
		for _, f := range node.meta {
			fmt.Fprintf(&b, " [%s=%s]", f.Key, f.Value)
		}
		if node.source == nil && node.cause != nil {
			fmt.Fprintf(&b, "\n  caused by: %v", node.cause)
		}
		node = node.source
	}

	if e.stack != "" {
		b.WriteString("\n")
		b.WriteString(e.stack)
	}
	return b.String()
}

func captureStack(skip int) string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}
