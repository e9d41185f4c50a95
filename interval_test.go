package fluentseq

import (
	"context"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestInterval(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := FromSlice([]int{1, 2, 3})

	times := []time.Time{}

	err := Each(ctx, Interval(ints, 50*time.Millisecond), func(_ context.Context, _ context.CancelCauseFunc, _ int) {
		times = append(times, time.Now())
	})

	is.NoErr(err)
	is.Equal(len(times), 3)

	for i := 1; i < len(times); i++ {
		is.True(times[i].Sub(times[i-1]) >= 50*time.Millisecond)
	}
}

func TestInterval_FirstElementUndelayed(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := FromSlice([]int{1})

	start := time.Now()

	var first time.Time

	err := Each(ctx, Interval(ints, 200*time.Millisecond), func(_ context.Context, _ context.CancelCauseFunc, _ int) {
		first = time.Now()
	})

	is.NoErr(err)
	is.True(first.Sub(start) < 200*time.Millisecond)
}

func TestInterval_SlowUpstream(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Sequence[int](func(ctx context.Context, _ context.CancelCauseFunc) <-chan int {
		outCh := make(chan int)

		go func() {
			defer close(outCh)

			for _, i := range []int{1, 2, 3} {
				time.Sleep(100 * time.Millisecond)

				select {
				case outCh <- i:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	})

	times := []time.Time{}

	err := Each(ctx, Interval(ints, 50*time.Millisecond), func(_ context.Context, _ context.CancelCauseFunc, _ int) {
		times = append(times, time.Now())
	})

	is.NoErr(err)
	is.Equal(len(times), 3)

	// upstream latency already exceeds the interval, so no extra wait is added
	for i := 1; i < len(times); i++ {
		is.True(times[i].Sub(times[i-1]) < 140*time.Millisecond)
	}
}

func TestInterval_Zero(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := FromSlice([]int{1, 2, 3})

	result, err := Collect(ctx, Interval(ints, 0))

	is.NoErr(err)
	is.Equal(result, []int{1, 2, 3})
}
