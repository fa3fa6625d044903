package golazystreams

// Tails returns the stream of all suffixes of s, starting with s itself and
// ending with the empty stream. A stream of length n has n+1 suffixes.
//
// The suffixes are generated lazily by repeatedly dropping one element; the
// final empty suffix is appended explicitly, since the generator signals
// exhaustion by producing nothing and so cannot emit the all-consumed state
// itself.
func Tails[T any](s Stream[T]) Stream[Stream[T]] {
	suffixes := Unfold(s, func(suffix Stream[T]) Option[Pair[Stream[T], Stream[T]]] {
		if suffix.cell == nil {
			return None[Pair[Stream[T], Stream[T]]]()
		}

		return Some(PairOf(suffix, suffix.cell.tail.Force()))
	})

	return Append(suffixes, Of(Empty[T]()))
}

// StartsWith returns true if the elements of prefix, in order, are the first
// elements of s. Every stream starts with the empty stream.
// Only the first len(prefix) elements of s are forced, so an infinite s is
// safe; an infinite prefix of a stream it actually prefixes never returns.
func StartsWith[T comparable](s Stream[T], prefix Stream[T]) bool {
	zipped := TakeWhile(ZipAll(s, prefix), func(elem Pair[Option[T], Option[T]]) bool {
		return elem.Second.Present()
	})

	return AllMatch(zipped, func(elem Pair[Option[T], Option[T]]) bool {
		a, ok := elem.First.Get()
		b, _ := elem.Second.Get()

		return ok && a == b
	})
}

// HasSubsequence returns true if the elements of sub appear contiguously, in
// order, anywhere in s. Every stream has the empty stream as a subsequence.
func HasSubsequence[T comparable](s Stream[T], sub Stream[T]) bool {
	return AnyMatch(Tails(s), func(suffix Stream[T]) bool {
		return StartsWith(suffix, sub)
	})
}

// ScanRight returns the stream of intermediate results of folding s from the
// right with f, starting from zero: the first element is the fold over all of
// s, and the last element is zero itself. A stream of length n scans to n+1
// results.
//
// The whole scan is a single fold: each step reuses the already-computed fold
// of the suffix after it through a shared memoized thunk, rather than
// refolding every suffix from scratch.
func ScanRight[T any, A any](s Stream[T], zero A, f FoldFunc[T, A]) Stream[A] {
	folded := FoldRight(s,
		func() Pair[A, Stream[A]] {
			return PairOf(zero, Of(zero))
		},
		func(elem T, acc func() Pair[A, Stream[A]]) Pair[A, Stream[A]] {
			rest := NewThunk(acc)

			result := f(elem, func() A {
				return rest.Force().First
			})

			return PairOf(result, Cons(func() A { return result }, func() Stream[A] {
				return rest.Force().Second
			}))
		})

	return folded.Second
}
