package golazystreams

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// PredicateFunc returns true if elem matches a predicate.
type PredicateFunc[T any] func(elem T) bool

// Map returns a stream of the results of applying mapp to each element of s,
// in order. The results are computed lazily, one per demanded element, so
// mapping an infinite stream is safe.
func Map[T any, U any](s Stream[T], mapp Function[T, U]) Stream[U] {
	return FoldRight(s, Empty[U], func(elem T, rest func() Stream[U]) Stream[U] {
		return Cons(func() U { return mapp(elem) }, rest)
	})
}

// Filter returns a stream of the elements of s for which filter returns true,
// in order.
//
// Filter skips non-matching elements as it goes: demanding the next element
// of the result forces elements of s until the next match. On an infinite
// stream with no further matching element, that demand never returns.
func Filter[T any](s Stream[T], filter PredicateFunc[T]) Stream[T] {
	return FoldRight(s, Empty[T], func(elem T, rest func() Stream[T]) Stream[T] {
		if !filter(elem) {
			return rest()
		}

		return Cons(func() T { return elem }, rest)
	})
}

// Append returns a stream of the elements of s followed by the elements of
// other. The concatenation is lazy; other is not touched until s is
// exhausted, which on an infinite s means never.
func Append[T any](s Stream[T], other Stream[T]) Stream[T] {
	return appendDeferred(s, func() Stream[T] { return other })
}

// appendDeferred concatenates s with a stream that is only produced if a
// consumer walks past the end of s.
func appendDeferred[T any](s Stream[T], other func() Stream[T]) Stream[T] {
	return FoldRight(s, other, func(elem T, rest func() Stream[T]) Stream[T] {
		return Cons(func() T { return elem }, rest)
	})
}

// FlatMap returns a stream that replaces each element of s with the elements
// of the stream mapp returns for it, lazily concatenated in order.
func FlatMap[T any, U any](s Stream[T], mapp Function[T, Stream[U]]) Stream[U] {
	return FoldRight(s, Empty[U], func(elem T, rest func() Stream[U]) Stream[U] {
		return appendDeferred(mapp(elem), rest)
	})
}

// Take returns a stream of the first max elements of s, or all of them if s
// is shorter than max.
//
// Take never forces more of s than the result itself is asked for: taking
// exactly one element builds a one-element stream without forcing the
// original stream's tail at all, which makes Take the standard way to bound
// an infinite stream.
func Take[T any](s Stream[T], max uint64) Stream[T] {
	if max == 0 || s.cell == nil {
		return Empty[T]()
	}

	c := s.cell

	if max == 1 {
		return Cons(func() T { return c.head.Force() }, Empty[T])
	}

	return Cons(func() T { return c.head.Force() }, func() Stream[T] {
		return Take(c.tail.Force(), max-1)
	})
}

// TakeWhile returns the longest prefix of s whose elements all match filter.
// The first non-matching element ends the result; nothing past it is forced.
func TakeWhile[T any](s Stream[T], filter PredicateFunc[T]) Stream[T] {
	return FoldRight(s, Empty[T], func(elem T, rest func() Stream[T]) Stream[T] {
		if !filter(elem) {
			return Empty[T]()
		}

		return Cons(func() T { return elem }, rest)
	})
}

// Drop returns the stream s without its first num elements, or the empty
// stream if s is shorter than num.
// Drop forces (and discards) num tails up front, but no heads, and nothing
// beyond the dropped prefix.
func Drop[T any](s Stream[T], num uint64) Stream[T] {
	for ; num > 0 && s.cell != nil; num-- {
		s = s.cell.tail.Force()
	}

	return s
}
