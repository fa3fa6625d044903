package golazystreams

import "golang.org/x/exp/constraints"

// StepFunc produces the next element of a stream from seed, together with the
// seed for the element after it, or None to end the stream.
type StepFunc[S any, T any] func(seed S) Option[Pair[T, S]]

// Of returns a finite stream of the given elements, in order.
func Of[T any](elems ...T) Stream[T] {
	return Produce(elems)
}

// Produce returns a stream of the elements of the given slices, in order.
// The slices are walked lazily: no element is touched before a consumer
// demands it.
func Produce[T any](slices ...[]T) Stream[T] {
	var prod func(slice []T, rest [][]T) Stream[T]

	prod = func(slice []T, rest [][]T) Stream[T] {
		for len(slice) == 0 {
			if len(rest) == 0 {
				return Empty[T]()
			}

			slice, rest = rest[0], rest[1:]
		}

		first := slice

		return Cons(func() T { return first[0] }, func() Stream[T] {
			return prod(first[1:], rest)
		})
	}

	return prod(nil, slices)
}

// Unfold returns the stream generated forward from seed by step.
// step is applied to seed once, immediately: None means the stream is empty,
// Some((elem, next)) means the stream starts with elem and continues with
// Unfold(next, step). The continuation only runs when the stream's tail is
// forced, so a step function that never returns None produces an infinite
// stream that is still safe to consume with Take, TakeWhile, AnyMatch, or
// any other bounded operation.
func Unfold[S any, T any](seed S, step StepFunc[S, T]) Stream[T] {
	next, ok := step(seed).Get()
	if !ok {
		return Empty[T]()
	}

	return Cons(func() T { return next.First }, func() Stream[T] {
		return Unfold(next.Second, step)
	})
}

// Iterate returns the infinite stream start, next(start), next(next(start)), ...
func Iterate[T any](start T, next Function[T, T]) Stream[T] {
	return Unfold(start, func(seed T) Option[Pair[T, T]] {
		return Some(PairOf(seed, next(seed)))
	})
}

// Constant returns the infinite stream value, value, value, ...
// The stream is a single cell whose tail is the cell itself, so consumers
// walking it revisit the same memoized node instead of allocating new ones.
func Constant[T any](value T) Stream[T] {
	var s Stream[T]

	s = Cons(func() T { return value }, func() Stream[T] { return s })

	return s
}

// From returns the infinite stream start, start+1, start+2, ...
func From[T constraints.Integer](start T) Stream[T] {
	return Unfold(start, func(seed T) Option[Pair[T, T]] {
		return Some(PairOf(seed, seed+1))
	})
}

// Fibs returns the infinite stream of Fibonacci numbers 0, 1, 1, 2, 3, 5, ...
func Fibs[T constraints.Integer]() Stream[T] {
	return Unfold(PairOf(T(0), T(1)), func(seed Pair[T, T]) Option[Pair[T, Pair[T, T]]] {
		return Some(PairOf(seed.First, PairOf(seed.Second, seed.First+seed.Second)))
	})
}
