package guard

import "github.com/ib-77/ropguard/pkg/rop"

// View is the read surface every guard type shares.
type View[T any] interface {
	Value() T
}

// Map projects the guarded value through fn without mutating it. The
// guard stays held; fn must not retain references past the guard's
// lifetime.
func Map[T, R any](g View[T], fn func(T) R) R {
	if fn == nil {
		panic("guard: nil map func")
	}
	return fn(g.Value())
}

// With acquires m, runs fn under the guard and releases on every exit
// path. Acquisition failures pass through as the same fault.
func With[T, R any](m *Mutex[T], fn func(g *MutexGuard[T]) R) rop.Result[R] {
	res := m.Lock()
	if !res.IsSuccess() {
		return rop.FailFrom[*MutexGuard[T], R](res)
	}

	g := res.Result()
	defer g.Dispose()
	return rop.Success(fn(g))
}

// WithRead acquires shared access on rw, runs fn under the guard and
// releases on every exit path.
func WithRead[T, R any](rw *RwLock[T], fn func(g *ReadGuard[T]) R) rop.Result[R] {
	res := rw.Read()
	if !res.IsSuccess() {
		return rop.FailFrom[*ReadGuard[T], R](res)
	}

	g := res.Result()
	defer g.Dispose()
	return rop.Success(fn(g))
}

// WithWrite acquires exclusive access on rw, runs fn under the guard
// and releases on every exit path.
func WithWrite[T, R any](rw *RwLock[T], fn func(g *WriteGuard[T]) R) rop.Result[R] {
	res := rw.Write()
	if !res.IsSuccess() {
		return rop.FailFrom[*WriteGuard[T], R](res)
	}

	g := res.Result()
	defer g.Dispose()
	return rop.Success(fn(g))
}
