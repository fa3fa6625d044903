package golazystreams

// BiFunction returns the result of combining elements a and b.
type BiFunction[T any, U any, V any] func(a T, b U) V

// ZipWith returns a stream that combines the elements of a and b pairwise
// using zip, in order. The result ends as soon as either input ends: its
// length is the length of the shorter input. Zipping an infinite stream with
// a finite one is therefore safe.
func ZipWith[T any, U any, V any](a Stream[T], b Stream[U], zip BiFunction[T, U, V]) Stream[V] {
	return Unfold(PairOf(a, b), func(seed Pair[Stream[T], Stream[U]]) Option[Pair[V, Pair[Stream[T], Stream[U]]]] {
		left, right := seed.First.cell, seed.Second.cell
		if left == nil || right == nil {
			return None[Pair[V, Pair[Stream[T], Stream[U]]]]()
		}

		elem := zip(left.head.Force(), right.head.Force())

		return Some(PairOf(elem, PairOf(left.tail.Force(), right.tail.Force())))
	})
}

// Zip returns a stream of the elements of a and b paired up in order,
// ending as soon as either input ends.
func Zip[T any, U any](a Stream[T], b Stream[U]) Stream[Pair[T, U]] {
	return ZipWith(a, b, PairOf[T, U])
}

// ZipWithAll returns a stream that combines the elements of a and b pairwise
// using zip, continuing until both inputs have ended: its length is the
// length of the longer input. Once an input is exhausted, its side of each
// remaining pair is None.
func ZipWithAll[T any, U any, V any](a Stream[T], b Stream[U], zip BiFunction[Option[T], Option[U], V]) Stream[V] {
	return Unfold(PairOf(a, b), func(seed Pair[Stream[T], Stream[U]]) Option[Pair[V, Pair[Stream[T], Stream[U]]]] {
		left, right := seed.First.cell, seed.Second.cell
		if left == nil && right == nil {
			return None[Pair[V, Pair[Stream[T], Stream[U]]]]()
		}

		leftElem, leftRest := None[T](), Empty[T]()
		if left != nil {
			leftElem, leftRest = Some(left.head.Force()), left.tail.Force()
		}

		rightElem, rightRest := None[U](), Empty[U]()
		if right != nil {
			rightElem, rightRest = Some(right.head.Force()), right.tail.Force()
		}

		return Some(PairOf(zip(leftElem, rightElem), PairOf(leftRest, rightRest)))
	})
}

// ZipAll returns a stream of the elements of a and b paired up in order,
// continuing until both inputs have ended. The exhausted side of each pair
// is None.
func ZipAll[T any, U any](a Stream[T], b Stream[U]) Stream[Pair[Option[T], Option[U]]] {
	return ZipWithAll(a, b, PairOf[Option[T], Option[U]])
}
