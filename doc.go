// Package golazystreams provides a lazy, memoized, singly-linked stream of elements.
// A stream is either empty, or a head together with the rest of the stream; both the
// head and the rest are deferred computations that are evaluated at most once.
//
// Streams are constructed from slices or individual elements, or generated from a
// seed value using Unfold, Iterate, Constant, From, or Fibs. Generated streams may
// be infinite: nothing is evaluated at construction time, and consumers only ever
// force the elements they actually demand.
//
// Elements may then be operated upon using mapping, filtering, slicing, and zipping
// operations. These are themselves lazy, producing new unevaluated streams.
//
// Finally, elements are consumed by materializing operations such as ToSlice, Each,
// Reduce, and the matching queries AnyMatch, AllMatch, and Find. These force
// elements strictly left to right, and they are the only place where evaluation
// actually happens. Consumers that must visit every element (ToSlice, Count,
// AllMatch on an all-matching stream, Filter followed by Find with no further
// match) never return when given an infinite stream; bound the stream with Take
// or TakeWhile first.
//
// Streams are immutable and may be shared freely between consumers: forcing an
// element caches it, so shared structure is computed at most once.
package golazystreams
