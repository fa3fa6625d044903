package golazystreams

// An Option holds either a single value, or no value at all.
// It is the result type of queries that may come up empty (HeadOption, Find),
// the termination signal of Unfold step functions, and the padding used by
// ZipAll for the exhausted side.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{
		value:   value,
		present: true,
	}
}

// None returns an option holding no value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Present returns true if the option holds a value.
func (o Option[T]) Present() bool {
	return o.present
}

// Get returns the option's value, and true if the option holds one.
// If the option is empty, it returns the zero value of T and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the option's value if it holds one, or fallback otherwise.
func (o Option[T]) OrElse(fallback T) T {
	if !o.present {
		return fallback
	}

	return o.value
}

// A Pair holds two values of possibly different types.
// It carries the (element, next seed) result of Unfold step functions, and
// the element pairs produced by Zip and ZipAll.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// PairOf returns a pair of first and second.
func PairOf[A any, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{
		First:  first,
		Second: second,
	}
}
