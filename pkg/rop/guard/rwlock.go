package guard

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/ib-77/ropguard/pkg/rop"
	"github.com/ib-77/ropguard/pkg/rop/fault"
)

// maxReaders caps concurrent readers. A writer takes the whole weight,
// so it excludes every reader and other writers in one acquisition.
const maxReaders = 1 << 30

// RwLock owns a single value of type T and allows either any number of
// concurrent ReadGuards or exactly one WriteGuard. The value is
// reachable only through a guard. Must not be copied after first use.
//
// Read locks are not reentrant; see the package documentation.
type RwLock[T any] struct {
	sem   *sema
	value T
}

// NewRwLock creates a reader/writer lock around value, fully released.
func NewRwLock[T any](value T) *RwLock[T] {
	return &RwLock[T]{sem: newSema("rwlock", maxReaders), value: value}
}

// Read blocks until shared read access is available.
func (rw *RwLock[T]) Read() rop.Result[*ReadGuard[T]] {
	return rw.readResult(rw.sem.acquire(1))
}

// TryRead attempts immediate shared acquisition without suspending.
// It fails with ResourceExhausted while a writer holds or awaits the
// lock.
func (rw *RwLock[T]) TryRead() rop.Result[*ReadGuard[T]] {
	return rw.readResult(rw.sem.tryAcquire(1))
}

// TryReadTimeout blocks up to timeout for shared access.
func (rw *RwLock[T]) TryReadTimeout(timeout time.Duration) rop.Result[*ReadGuard[T]] {
	return rw.readResult(rw.sem.acquireTimeout(1, timeout))
}

// ReadContext waits for shared access until ctx is cancelled.
func (rw *RwLock[T]) ReadContext(ctx context.Context) rop.Result[*ReadGuard[T]] {
	return rw.readResult(rw.sem.acquireCtx(ctx, 1))
}

// ReadContextTimeout waits for shared access until ctx is cancelled or
// timeout expires.
func (rw *RwLock[T]) ReadContextTimeout(ctx context.Context, timeout time.Duration) rop.Result[*ReadGuard[T]] {
	return rw.readResult(rw.sem.acquireCtxTimeout(ctx, 1, timeout))
}

// Write blocks until exclusive access is available.
func (rw *RwLock[T]) Write() rop.Result[*WriteGuard[T]] {
	return rw.writeResult(rw.sem.acquire(maxReaders))
}

// TryWrite attempts immediate exclusive acquisition without suspending.
// It fails with ResourceExhausted while any reader or writer is active.
func (rw *RwLock[T]) TryWrite() rop.Result[*WriteGuard[T]] {
	return rw.writeResult(rw.sem.tryAcquire(maxReaders))
}

// TryWriteTimeout blocks up to timeout for exclusive access.
func (rw *RwLock[T]) TryWriteTimeout(timeout time.Duration) rop.Result[*WriteGuard[T]] {
	return rw.writeResult(rw.sem.acquireTimeout(maxReaders, timeout))
}

// WriteContext waits for exclusive access until ctx is cancelled.
func (rw *RwLock[T]) WriteContext(ctx context.Context) rop.Result[*WriteGuard[T]] {
	return rw.writeResult(rw.sem.acquireCtx(ctx, maxReaders))
}

// WriteContextTimeout waits for exclusive access until ctx is cancelled
// or timeout expires.
func (rw *RwLock[T]) WriteContextTimeout(ctx context.Context, timeout time.Duration) rop.Result[*WriteGuard[T]] {
	return rw.writeResult(rw.sem.acquireCtxTimeout(ctx, maxReaders, timeout))
}

// IntoInner disposes the lock and returns the protected value. The lock
// must be fully released (no readers, no writer) and not disposed;
// violating either is a programming error and panics.
func (rw *RwLock[T]) IntoInner() T {
	if rw.sem.isDisposed() {
		panic("guard: IntoInner on a disposed rwlock")
	}
	if !rw.sem.w.TryAcquire(maxReaders) {
		panic("guard: IntoInner on a held rwlock")
	}
	if !rw.sem.disposed.CompareAndSwap(false, true) {
		rw.sem.release(maxReaders)
		panic("guard: IntoInner on a disposed rwlock")
	}
	rw.sem.stop()
	return rw.value
}

// Dispose marks the lock unusable and wakes all waiters. Idempotent.
func (rw *RwLock[T]) Dispose() {
	rw.sem.dispose()
}

// IsDisposed reports whether Dispose or IntoInner has run.
func (rw *RwLock[T]) IsDisposed() bool {
	return rw.sem.isDisposed()
}

func (rw *RwLock[T]) readResult(f *fault.Error) rop.Result[*ReadGuard[T]] {
	if f != nil {
		return rop.Fail[*ReadGuard[T]](f)
	}
	return rop.Success(&ReadGuard[T]{rw: rw})
}

func (rw *RwLock[T]) writeResult(f *fault.Error) rop.Result[*WriteGuard[T]] {
	if f != nil {
		return rop.Fail[*WriteGuard[T]](f)
	}
	return rop.Success(&WriteGuard[T]{rw: rw})
}

// ReadGuard is the scoped handle for shared read access. It exposes no
// mutators: read-only use is enforced at the type level. Disposing the
// guard releases one reader slot.
type ReadGuard[T any] struct {
	rw       *RwLock[T]
	released atomic.Bool
}

// Value returns the protected value.
func (g *ReadGuard[T]) Value() T {
	g.check()
	return g.rw.value
}

// Dispose releases the reader slot. Safe to call more than once; only
// the first call releases.
func (g *ReadGuard[T]) Dispose() {
	if g.released.CompareAndSwap(false, true) {
		g.rw.sem.release(1)
	}
}

func (g *ReadGuard[T]) check() {
	if g.released.Load() {
		panic("guard: use of disposed guard")
	}
	if g.rw.sem.isDisposed() {
		panic("guard: use of guard after rwlock disposal")
	}
}

// WriteGuard is the scoped handle for exclusive write access. Disposing
// the guard releases the writer's exclusive hold.
type WriteGuard[T any] struct {
	rw       *RwLock[T]
	released atomic.Bool
}

// Value returns the protected value.
func (g *WriteGuard[T]) Value() T {
	g.check()
	return g.rw.value
}

// SetValue replaces the protected value.
func (g *WriteGuard[T]) SetValue(v T) {
	g.check()
	g.rw.value = v
}

// Update replaces the protected value with fn(current).
func (g *WriteGuard[T]) Update(fn func(T) T) {
	g.check()
	if fn == nil {
		panic("guard: nil update func")
	}
	g.rw.value = fn(g.rw.value)
}

// Dispose releases exclusive access. Safe to call more than once; only
// the first call releases.
func (g *WriteGuard[T]) Dispose() {
	if g.released.CompareAndSwap(false, true) {
		g.rw.sem.release(maxReaders)
	}
}

func (g *WriteGuard[T]) check() {
	if g.released.Load() {
		panic("guard: use of disposed guard")
	}
	if g.rw.sem.isDisposed() {
		panic("guard: use of guard after rwlock disposal")
	}
}
