package golazystreams

// ConsumerFunc consumes element elem.
type ConsumerFunc[T any] func(elem T)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc,
// or a new accumulator.
type AccumulatorFunc[T any, A any] func(acc A, elem T) A

// AnyMatch returns true as soon as pred returns true for an element of s,
// that is, an element matches. No element past the first match is forced, so
// AnyMatch terminates on an infinite stream that contains a match.
// If no element matches, every element is forced; on an infinite stream that
// never returns.
func AnyMatch[T any](s Stream[T], pred PredicateFunc[T]) bool {
	return FoldRight(s, func() bool { return false }, func(elem T, acc func() bool) bool {
		return pred(elem) || acc()
	})
}

// AllMatch returns true if pred returns true for all elements of s, that is,
// all elements match. It returns false as soon as an element does not match,
// without forcing anything past it, so AllMatch terminates on an infinite
// stream that contains a non-match.
func AllMatch[T any](s Stream[T], pred PredicateFunc[T]) bool {
	return FoldRight(s, func() bool { return true }, func(elem T, acc func() bool) bool {
		return pred(elem) && acc()
	})
}

// HeadOption returns the first element of s, or None if s is empty.
// Only the first element is forced.
func HeadOption[T any](s Stream[T]) Option[T] {
	if s.cell == nil {
		return None[T]()
	}

	return Some(s.cell.head.Force())
}

// Find returns the first element of s for which pred returns true, or None
// if no element matches. Elements are forced up to and including the first
// match; on an infinite stream with no match, Find never returns.
func Find[T any](s Stream[T], pred PredicateFunc[T]) Option[T] {
	return HeadOption(Filter(s, pred))
}

// Each calls each for every element of s, in order.
// On an infinite stream, Each never returns.
func Each[T any](s Stream[T], each ConsumerFunc[T]) {
	for s.cell != nil {
		each(s.cell.head.Force())
		s = s.cell.tail.Force()
	}
}

// Reduce folds every element of s into accumulator acc, left to right,
// returning the final accumulator.
// On an infinite stream, Reduce never returns.
func Reduce[T any, A any](s Stream[T], acc A, reduce AccumulatorFunc[T, A]) A {
	Each(s, func(elem T) {
		acc = reduce(acc, elem)
	})

	return acc
}

// Count returns the number of elements of s, forcing all of them.
// On an infinite stream, Count never returns.
func Count[T any](s Stream[T]) uint64 {
	count := uint64(0)

	Each(s, func(_ T) {
		count++
	})

	return count
}
