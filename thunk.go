package golazystreams

import "sync"

// A Thunk is a deferred computation that is evaluated at most once.
// The first call to Force runs the computation and caches its result;
// every subsequent call returns the cached result without running the
// computation again.
//
// The computation must be pure: its result must depend only on the values
// it closes over, so that forcing it once, many times, or never does not
// change observable behavior.
type Thunk[T any] struct {
	once    sync.Once
	compute func() T
	result  T
	forced  bool
}

// NewThunk returns a thunk around the given computation.
// The computation is not run until the thunk is forced.
func NewThunk[T any](compute func() T) *Thunk[T] {
	return &Thunk[T]{compute: compute}
}

// Force returns the result of the computation, running it on the first call
// and returning the cached result on every call after that.
//
// A computation that never returns (for example, one that materializes an
// infinite stream) makes Force never return; that is a property of the
// computation, not of the thunk.
func (t *Thunk[T]) Force() T {
	t.once.Do(func() {
		t.result = t.compute()
		t.compute = nil
		t.forced = true
	})

	return t.result
}

// Forced returns true if the computation has already been run.
func (t *Thunk[T]) Forced() bool {
	return t.forced
}
