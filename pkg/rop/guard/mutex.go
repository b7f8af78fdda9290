package guard

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/ib-77/ropguard/pkg/rop"
	"github.com/ib-77/ropguard/pkg/rop/fault"
)

// Mutex owns a single value of type T and hands out at most one
// MutexGuard at a time. The value is reachable only through a guard.
// Must not be copied after first use.
type Mutex[T any] struct {
	sem   *sema
	value T
}

// NewMutex creates a mutex around value with the lock unheld.
func NewMutex[T any](value T) *Mutex[T] {
	return &Mutex[T]{sem: newSema("mutex", 1), value: value}
}

// Lock blocks the calling goroutine until the lock is free. It fails
// with InvalidOperation when the mutex is disposed before or during
// the wait.
func (m *Mutex[T]) Lock() rop.Result[*MutexGuard[T]] {
	return m.guardResult(m.sem.acquire(1))
}

// TryLock attempts immediate acquisition without suspending. Contention
// yields ResourceExhausted.
func (m *Mutex[T]) TryLock() rop.Result[*MutexGuard[T]] {
	return m.guardResult(m.sem.tryAcquire(1))
}

// TryLockTimeout blocks up to timeout. Expiry yields a Timeout fault
// carrying the requested duration as metadata.
func (m *Mutex[T]) TryLockTimeout(timeout time.Duration) rop.Result[*MutexGuard[T]] {
	return m.guardResult(m.sem.acquireTimeout(1, timeout))
}

// LockContext waits until the lock is free or ctx is cancelled. An
// already-cancelled ctx yields Interrupted without blocking, even when
// the lock is free.
func (m *Mutex[T]) LockContext(ctx context.Context) rop.Result[*MutexGuard[T]] {
	return m.guardResult(m.sem.acquireCtx(ctx, 1))
}

// LockContextTimeout waits until the lock is free, ctx is cancelled
// (Interrupted) or timeout expires (Timeout), whichever fires first.
func (m *Mutex[T]) LockContextTimeout(ctx context.Context, timeout time.Duration) rop.Result[*MutexGuard[T]] {
	return m.guardResult(m.sem.acquireCtxTimeout(ctx, 1, timeout))
}

// IntoInner disposes the mutex and returns the protected value. The
// mutex must be unlocked and not disposed; violating either is a
// programming error and panics.
func (m *Mutex[T]) IntoInner() T {
	if m.sem.isDisposed() {
		panic("guard: IntoInner on a disposed mutex")
	}
	if !m.sem.w.TryAcquire(1) {
		panic("guard: IntoInner on a locked mutex")
	}
	if !m.sem.disposed.CompareAndSwap(false, true) {
		m.sem.release(1)
		panic("guard: IntoInner on a disposed mutex")
	}
	m.sem.stop()
	return m.value
}

// Dispose marks the mutex unusable and wakes all waiters. Idempotent.
func (m *Mutex[T]) Dispose() {
	m.sem.dispose()
}

// IsDisposed reports whether Dispose or IntoInner has run.
func (m *Mutex[T]) IsDisposed() bool {
	return m.sem.isDisposed()
}

func (m *Mutex[T]) guardResult(f *fault.Error) rop.Result[*MutexGuard[T]] {
	if f != nil {
		return rop.Fail[*MutexGuard[T]](f)
	}
	return rop.Success(&MutexGuard[T]{m: m})
}

// MutexGuard is the scoped handle to a locked Mutex. Exactly one exists
// per acquisition; Dispose releases the lock exactly once however many
// exit paths call it. Any value access after the guard or its mutex is
// disposed panics.
type MutexGuard[T any] struct {
	m        *Mutex[T]
	released atomic.Bool
}

// Value returns the protected value.
func (g *MutexGuard[T]) Value() T {
	g.check()
	return g.m.value
}

// SetValue replaces the protected value.
func (g *MutexGuard[T]) SetValue(v T) {
	g.check()
	g.m.value = v
}

// Update replaces the protected value with fn(current).
func (g *MutexGuard[T]) Update(fn func(T) T) {
	g.check()
	if fn == nil {
		panic("guard: nil update func")
	}
	g.m.value = fn(g.m.value)
}

// Dispose releases the mutex. Safe to call more than once; only the
// first call releases.
func (g *MutexGuard[T]) Dispose() {
	if g.released.CompareAndSwap(false, true) {
		g.m.sem.release(1)
	}
}

func (g *MutexGuard[T]) check() {
	if g.released.Load() {
		panic("guard: use of disposed guard")
	}
	if g.m.sem.isDisposed() {
		panic("guard: use of guard after mutex disposal")
	}
}
