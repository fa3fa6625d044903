package golazystreams

import "golang.org/x/exp/constraints"

// Number is a constraint matching any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// A DuplicateKeyError indicates that a key could not be added to a map
// because it already exists.
type DuplicateKeyError[T any, K comparable] struct {
	// Element is the stream element that caused the error.
	Element T

	// Key is the key that was already in the map.
	Key K
}

// ToSlice returns a slice of all elements of s, in order, forcing all of
// them. The slice is built up in a loop, so arbitrarily long finite streams
// materialize without growing the call stack.
// On an infinite stream, ToSlice never returns; bound the stream with Take
// or TakeWhile first.
func ToSlice[T any](s Stream[T]) []T {
	elems := []T{}

	Each(s, func(elem T) {
		elems = append(elems, elem)
	})

	return elems
}

// ToMap returns a map of all elements of s, keyed and valued using key and
// value, respectively. If a key occurs more than once, the map entry is
// overwritten, keeping the last occurrence.
// On an infinite stream, ToMap never returns.
func ToMap[T any, K comparable, V any](s Stream[T], key Function[T, K], value Function[T, V]) map[K]V {
	acc := map[K]V{}

	Each(s, func(elem T) {
		acc[key(elem)] = value(elem)
	})

	return acc
}

// ToMapNoDuplicateKeys returns a map of all elements of s, keyed and valued
// using key and value, respectively. If a key occurs more than once, it
// returns the map collected so far and a DuplicateKeyError, without forcing
// anything past the offending element.
func ToMapNoDuplicateKeys[T any, K comparable, V any](s Stream[T], key Function[T, K], value Function[T, V]) (map[K]V, error) {
	acc := map[K]V{}

	for s.cell != nil {
		elem := s.cell.head.Force()

		k := key(elem)

		if _, ok := acc[k]; ok {
			return acc, &DuplicateKeyError[T, K]{
				Element: elem,
				Key:     k,
			}
		}

		acc[k] = value(elem)

		s = s.cell.tail.Force()
	}

	return acc, nil
}

// GroupBy returns a map grouping all elements of s into slices according to
// key, each group in encounter order.
// On an infinite stream, GroupBy never returns.
func GroupBy[T any, K comparable, V any](s Stream[T], key Function[T, K], value Function[T, V]) map[K][]V {
	acc := map[K][]V{}

	Each(s, func(elem T) {
		k := key(elem)
		acc[k] = append(acc[k], value(elem))
	})

	return acc
}

// Sum returns the sum of all elements of s, forcing all of them.
// On an infinite stream, Sum never returns.
func Sum[T Number](s Stream[T]) T {
	return Reduce(s, T(0), func(acc T, elem T) T {
		return acc + elem
	})
}

// Error implements error.
func (e *DuplicateKeyError[T, K]) Error() string {
	return "duplicate key"
}
