package fluentseq

import (
	"context"
	"testing"

	"github.com/matryer/is"
)

func TestFromSlice(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	ints := []int{}
	for i := range FromSlice([]int{1, 2}, []int{3, 4, 5})(ctx, cancel) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{1, 2, 3, 4, 5})
}

func TestFromChannel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	intsCh1 := FromSlice([]int{1, 2})(ctx, cancel)
	intsCh2 := FromSlice([]int{3, 4, 5})(ctx, cancel)

	ints := []int{}
	for i := range FromChannel(intsCh1, intsCh2)(ctx, cancel) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{1, 2, 3, 4, 5})
}

func TestFromChannel_StartedTwice(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	intsCh := make(chan int)
	close(intsCh)

	ints := FromChannel[int](intsCh)

	for range ints(ctx, cancel) { //nolint:revive // drain only
	}

	defer func() {
		is.True(recover() != nil)
	}()

	ints(ctx, cancel)
}

func TestConcat(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	ints1 := FromSlice([]int{1, 2})
	ints2 := FromSlice([]int{3, 4, 5})

	ints := []int{}
	for i := range Concat(ints1, ints2)(ctx, cancel) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{1, 2, 3, 4, 5})
}
