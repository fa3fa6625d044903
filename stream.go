package golazystreams

// A Stream is a lazy, memoized sequence of elements.
// It is either empty, or a cell holding a deferred head and a deferred rest.
// The zero value of Stream is the empty stream.
//
// Streams are immutable: every operation returns a new stream, and streams
// may be aliased by any number of consumers. Forcing is idempotent, so shared
// structure is evaluated at most once no matter how many consumers walk it.
type Stream[T any] struct {
	cell *cell[T]
}

// A cell holds a stream's first element and the rest of the stream, both as
// thunks. Neither is evaluated before it is demanded.
type cell[T any] struct {
	head *Thunk[T]
	tail *Thunk[Stream[T]]
}

// FoldFunc folds element elem into a result of type A.
// The accumulated result over the rest of the stream is passed as the deferred
// computation acc: a FoldFunc that returns without calling acc stops the fold
// at elem, without evaluating anything further down the stream.
type FoldFunc[T any, A any] func(elem T, acc func() A) A

// Empty returns the empty stream.
func Empty[T any]() Stream[T] {
	return Stream[T]{}
}

// Cons returns a stream whose first element is the result of head, and whose
// remaining elements are those of the stream returned by tail.
// Neither head nor tail is called by Cons itself; each runs at most once, when
// a consumer first demands it.
func Cons[T any](head func() T, tail func() Stream[T]) Stream[T] {
	return Stream[T]{
		cell: &cell[T]{
			head: NewThunk(head),
			tail: NewThunk(tail),
		},
	}
}

// IsEmpty returns true if the stream has no elements.
// It never forces the stream's head.
func (s Stream[T]) IsEmpty() bool {
	return s.cell == nil
}

// FoldRight folds the stream into a single result, combining each element
// with the fold over the rest of the stream, which f receives as a deferred
// computation. On an empty stream it returns zero(); otherwise it forces the
// stream's first element and returns f(head, rest-of-fold).
//
// Because f receives the rest of the fold unevaluated, it decides how far the
// stream is traversed: AnyMatch, AllMatch, and TakeWhile are all folds whose f
// stops calling acc as soon as the answer is known, which is what makes them
// safe on infinite streams.
func FoldRight[T any, A any](s Stream[T], zero func() A, f FoldFunc[T, A]) A {
	if s.cell == nil {
		return zero()
	}

	return f(s.cell.head.Force(), func() A {
		return FoldRight(s.cell.tail.Force(), zero, f)
	})
}
