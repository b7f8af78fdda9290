package guard

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/ib-77/ropguard/pkg/rop/fault"
)

// sema couples a weighted semaphore with a disposal lifecycle shared by
// Mutex and RwLock. An internal lifetime context is cancelled exactly
// once on dispose, which wakes every queued waiter; each acquisition
// path re-checks the disposed flag after waking so an acquire can never
// be observed on a disposed primitive.
//
// The flag is flipped before the context is cancelled, so a waiter woken
// by cancellation always sees disposed == true.
type sema struct {
	w        *semaphore.Weighted
	name     string // "mutex" or "rwlock", used in fault messages
	life     context.Context
	stop     context.CancelFunc
	disposed atomic.Bool
}

func newSema(name string, weight int64) *sema {
	life, stop := context.WithCancel(context.Background())
	return &sema{
		w:    semaphore.NewWeighted(weight),
		name: name,
		life: life,
		stop: stop,
	}
}

// dispose is idempotent; only the first call cancels the lifetime.
func (s *sema) dispose() {
	if s.disposed.CompareAndSwap(false, true) {
		s.stop()
	}
}

func (s *sema) isDisposed() bool {
	return s.disposed.Load()
}

func (s *sema) release(n int64) {
	s.w.Release(n)
}

func (s *sema) disposedFault() *fault.Error {
	return fault.New(fault.InvalidOperation, s.name+" is disposed")
}

func (s *sema) interruptedFault() *fault.Error {
	return fault.New(fault.Interrupted, "lock wait cancelled")
}

func (s *sema) timeoutFault(d time.Duration) *fault.Error {
	return fault.New(fault.Timeout, "lock wait timed out").
		WithMeta("timeout", fault.Duration(d))
}

// settle finishes a successful semaphore acquisition: if the primitive
// was disposed while the waiter held the slot, the slot is given back
// so disposal never leaves weight dangling.
func (s *sema) settle(n int64) *fault.Error {
	if s.disposed.Load() {
		s.w.Release(n)
		return s.disposedFault()
	}
	return nil
}

// acquire blocks until n weight is available or the primitive is disposed.
func (s *sema) acquire(n int64) *fault.Error {
	if s.disposed.Load() {
		return s.disposedFault()
	}
	if err := s.w.Acquire(s.life, n); err != nil {
		return s.disposedFault()
	}
	return s.settle(n)
}

// tryAcquire never suspends.
func (s *sema) tryAcquire(n int64) *fault.Error {
	if s.disposed.Load() {
		return s.disposedFault()
	}
	if !s.w.TryAcquire(n) {
		return fault.New(fault.ResourceExhausted, "lock is currently held")
	}
	return s.settle(n)
}

// acquireTimeout blocks at most d.
func (s *sema) acquireTimeout(n int64, d time.Duration) *fault.Error {
	if s.disposed.Load() {
		return s.disposedFault()
	}

	wait, cancel := context.WithTimeout(s.life, d)
	defer cancel()

	if err := s.w.Acquire(wait, n); err != nil {
		if s.disposed.Load() {
			return s.disposedFault()
		}
		return s.timeoutFault(d)
	}
	return s.settle(n)
}

// acquireCtx blocks until acquisition, cancellation of ctx, or disposal.
// A ctx that is already cancelled wins even when weight is free: the
// semaphore's fast path would otherwise succeed without consulting ctx.
func (s *sema) acquireCtx(ctx context.Context, n int64) *fault.Error {
	if s.disposed.Load() {
		return s.disposedFault()
	}
	if ctx.Err() != nil {
		return s.interruptedFault()
	}

	wait, cancel := context.WithCancel(ctx)
	defer cancel()
	unlink := context.AfterFunc(s.life, cancel)
	defer unlink()

	if err := s.w.Acquire(wait, n); err != nil {
		if s.disposed.Load() {
			return s.disposedFault()
		}
		return s.interruptedFault()
	}
	return s.settle(n)
}

// acquireCtxTimeout combines acquireCtx and acquireTimeout. When both
// the deadline and the cancellation fire near-simultaneously either
// outcome is legitimate; caller cancellation is checked first.
func (s *sema) acquireCtxTimeout(ctx context.Context, n int64, d time.Duration) *fault.Error {
	if s.disposed.Load() {
		return s.disposedFault()
	}
	if ctx.Err() != nil {
		return s.interruptedFault()
	}

	wait, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	unlink := context.AfterFunc(s.life, cancel)
	defer unlink()

	if err := s.w.Acquire(wait, n); err != nil {
		if s.disposed.Load() {
			return s.disposedFault()
		}
		if ctx.Err() != nil {
			return s.interruptedFault()
		}
		return s.timeoutFault(d)
	}
	return s.settle(n)
}
