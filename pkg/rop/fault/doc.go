// Package fault is the failure channel of the library: a tagged,
// immutable error value with a closed Kind taxonomy, a cause chain and
// ordered typed metadata.
//
// Every fluent method (WithContext, WithMeta, WithKind, WithStack)
// returns a new *Error and never mutates the receiver, so fault values
// may be shared across goroutines without synchronization.
//
// Key operations:
// - New/Newf/FromErr: create a fault (FromErr classifies stdlib errors)
// - WithContext: push a new node onto the cause chain
// - WithMeta: attach an ordered key/value pair from the restricted union
// - Kind/HasKind: programmatic branching over the closed taxonomy
// - Detail: render the full cause chain (bounded, cycle-safe)
//
// The package stays policy-free: no logging, no HTTP, no JSON. Adapters
// that map Kind to transport status codes live outside the library.
package fault
