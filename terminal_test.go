package golazystreams

import (
	"testing"

	"github.com/matryer/is"
)

func TestAnyMatch(t *testing.T) {
	is := is.New(t)

	is.True(AnyMatch(Of(1, 2, 3), even))
	is.True(!AnyMatch(Of(1, 3, 5), even))
	is.True(!AnyMatch(Empty[int](), even))
}

func TestAnyMatch_ShortCircuits(t *testing.T) {
	is := is.New(t)

	// the elements past the first match must never be forced
	is.True(AnyMatch(From(1), func(elem int) bool { return elem > 3 }))

	checked := 0

	found := AnyMatch(Of(1, 2, 3, 4, 5), func(elem int) bool {
		checked++
		return elem == 2
	})

	is.True(found)
	is.Equal(checked, 2)
}

func TestAllMatch(t *testing.T) {
	is := is.New(t)

	is.True(AllMatch(Of(2, 4, 6), even))
	is.True(!AllMatch(Of(2, 3, 4), even))
	is.True(AllMatch(Empty[int](), even))
}

func TestAllMatch_ShortCircuits(t *testing.T) {
	is := is.New(t)

	is.True(!AllMatch(From(1), func(elem int) bool { return elem < 4 }))

	checked := 0

	ok := AllMatch(Of(2, 3, 4, 5), func(elem int) bool {
		checked++
		return even(elem)
	})

	is.True(!ok)
	is.Equal(checked, 2)
}

func TestHeadOption(t *testing.T) {
	is := is.New(t)

	head, ok := HeadOption(Of(1, 2, 3)).Get()
	is.True(ok)
	is.Equal(head, 1)

	is.True(!HeadOption(Empty[int]()).Present())
}

func TestHeadOption_ForcesHeadOnly(t *testing.T) {
	is := is.New(t)

	tailEvaluated := false

	s := Cons(func() int { return 1 }, func() Stream[int] {
		tailEvaluated = true
		return Empty[int]()
	})

	is.Equal(HeadOption(s).OrElse(0), 1)
	is.True(!tailEvaluated)
}

func TestFind(t *testing.T) {
	is := is.New(t)

	found, ok := Find(Of(1, 2, 3, 4), even).Get()
	is.True(ok)
	is.Equal(found, 2)

	is.True(!Find(Of(1, 3, 5), even).Present())
}

func TestFind_Infinite(t *testing.T) {
	is := is.New(t)

	is.Equal(Find(From(1), func(elem int) bool { return elem*elem > 50 }).OrElse(0), 8)
}

func TestEach(t *testing.T) {
	is := is.New(t)

	seen := []int{}

	Each(Of(1, 2, 3), func(elem int) {
		seen = append(seen, elem)
	})

	is.Equal(seen, []int{1, 2, 3})
}

func TestReduce(t *testing.T) {
	is := is.New(t)

	concatenated := Reduce(Of("a", "b", "c"), "", func(acc string, elem string) string {
		return acc + elem
	})

	is.Equal(concatenated, "abc")
	is.Equal(Reduce(Empty[int](), 10, func(acc int, elem int) int { return acc + elem }), 10)
}

func TestCount(t *testing.T) {
	is := is.New(t)

	is.Equal(Count(Of(1, 2, 3, 4)), uint64(4))
	is.Equal(Count(Empty[int]()), uint64(0))
	is.Equal(Count(Take(Constant("x"), 100)), uint64(100))
}
