// Package guard provides value-owning synchronization primitives with a
// Result-returning API: Mutex[T] and RwLock[T] wrap a weighted semaphore
// around a single protected value and hand out scoped guards instead of
// exposing the value directly.
//
// Acquisition comes in four styles, all returning rop.Result[*Guard]:
//
//   - Lock/Read/Write: block until available
//   - TryLock/TryRead/TryWrite: never suspend; ResourceExhausted on contention
//   - TryLockTimeout/...: bounded wait; Timeout carries the requested
//     duration as metadata
//   - LockContext/...: context-driven wait; Interrupted on cancellation
//
// A disposed primitive rejects every acquisition with InvalidOperation;
// disposal wakes all waiters. Using a guard after it or its primitive
// was disposed is a programming error and panics rather than returning
// stale data.
//
// Fairness follows the underlying semaphore's FIFO waiter queue; the
// package adds no ordering policy of its own. In particular RwLock read
// locks are NOT reentrant: a goroutine already holding a read lock that
// calls Read again queues behind any waiting writer and can deadlock
// against it (TryRead fails instead). Acquire everything you need once
// and hold the guard across the critical section.
//
// Release is the caller's job exactly once per guard, normally via
//
//	res := m.Lock()
//	if res.IsFailure() { ... }
//	g := res.Result()
//	defer g.Dispose()
//
// or through the closure helpers With, WithRead and WithWrite, which
// guarantee release on every exit path.
package guard
