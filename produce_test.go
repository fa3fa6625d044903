package golazystreams

import (
	"testing"

	"github.com/matryer/is"
)

func TestOf(t *testing.T) {
	is := is.New(t)

	is.Equal(ToSlice(Of(1, 2, 3)), []int{1, 2, 3})
	is.True(Of[int]().IsEmpty())
}

func TestProduce(t *testing.T) {
	is := is.New(t)

	is.Equal(ToSlice(Produce([]int{1, 2}, []int{3, 4, 5})), []int{1, 2, 3, 4, 5})
}

func TestProduce_SkipsEmptySlices(t *testing.T) {
	is := is.New(t)

	is.Equal(ToSlice(Produce([]int(nil), []int{1}, []int{}, []int{2, 3}, nil)), []int{1, 2, 3})
	is.True(Produce[int](nil, nil).IsEmpty())
}

func TestUnfold(t *testing.T) {
	is := is.New(t)

	counting := Unfold(0, func(seed int) Option[Pair[int, int]] {
		if seed >= 5 {
			return None[Pair[int, int]]()
		}

		return Some(PairOf(seed, seed+1))
	})

	is.Equal(ToSlice(counting), []int{0, 1, 2, 3, 4})
}

func TestUnfold_StepCalledOnDemandOnly(t *testing.T) {
	is := is.New(t)

	steps := 0

	s := Unfold(0, func(seed int) Option[Pair[int, int]] {
		steps++
		return Some(PairOf(seed, seed+1))
	})

	// the first step runs when the stream is built, later steps only when
	// the corresponding tail is forced
	is.Equal(steps, 1)

	is.Equal(ToSlice(Take(s, 3)), []int{0, 1, 2})
	is.Equal(steps, 3)
}

func TestIterate(t *testing.T) {
	is := is.New(t)

	doublings := Iterate(1, func(elem int) int { return elem * 2 })

	is.Equal(ToSlice(Take(doublings, 5)), []int{1, 2, 4, 8, 16})
}

func TestConstant(t *testing.T) {
	is := is.New(t)

	is.Equal(ToSlice(Take(Constant(4), 5)), []int{4, 4, 4, 4, 4})
}

func TestConstant_TiedTail(t *testing.T) {
	is := is.New(t)

	fours := Constant(4)

	// the stream is a single cell whose tail is the cell itself
	is.True(fours.cell == Drop(fours, 3).cell)
}

func TestFrom(t *testing.T) {
	is := is.New(t)

	is.Equal(ToSlice(Take(From(3), 4)), []int{3, 4, 5, 6})
	is.Equal(ToSlice(Take(From(int8(-2)), 4)), []int8{-2, -1, 0, 1})
}

func TestFibs(t *testing.T) {
	is := is.New(t)

	is.Equal(ToSlice(Take(Fibs[int](), 7)), []int{0, 1, 1, 2, 3, 5, 8})
}
