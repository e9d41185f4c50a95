package fluentseq

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestEach(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := FromSlice([]int{1, 2, 3, 4, 5})

	sum := 0

	err := Each(ctx, ints, func(_ context.Context, _ context.CancelCauseFunc, elem int) {
		sum += elem
	})

	is.NoErr(err)
	is.Equal(sum, 15)
}

func TestEach_Cancel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := FromSlice([]int{1, 2, 3, 4, 5})

	sum := 0

	err := Each(ctx, ints, func(_ context.Context, cancel context.CancelCauseFunc, elem int) {
		is.True(elem <= 3)

		if elem == 3 {
			cancel(nil)
			return
		}

		sum += elem
	})

	is.Equal(sum, 3)
	is.True(errors.Is(err, context.Canceled))
}

func TestReduce(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := FromSlice([]int{1, 2, 3, 4, 5})

	summer := func(_ context.Context, _ context.CancelCauseFunc, acc int, elem int) int {
		return acc + elem
	}

	result, err := Reduce(ctx, ints, 0, summer)

	is.NoErr(err)
	is.Equal(result, 15)
}

func TestCollect(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := FromSlice([]int{1, 2, 3, 4, 5})

	result, err := Collect(ctx, ints)

	is.NoErr(err)
	is.Equal(result, []int{1, 2, 3, 4, 5})
}

func TestCount(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := FromSlice([]int{1, 2, 3, 4, 5})

	result, err := Count(ctx, ints)

	is.NoErr(err)
	is.Equal(result, uint64(5))
}

func TestAnyMatch(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := FromSlice([]int{1, 3, 4, 5})

	result, err := AnyMatch(ctx, ints, even)

	is.NoErr(err)
	is.True(result)
}

func TestAnyMatch_NoMatch(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := FromSlice([]int{1, 3, 5})

	result, err := AnyMatch(ctx, ints, even)

	is.NoErr(err)
	is.True(!result)
}

func TestAllMatch(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := FromSlice([]int{2, 4, 6})

	result, err := AllMatch(ctx, ints, even)

	is.NoErr(err)
	is.True(result)
}

func TestAllMatch_NoMatch(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := FromSlice([]int{2, 3, 4})

	result, err := AllMatch(ctx, ints, even)

	is.NoErr(err)
	is.True(!result)
}
