package fluentseq

import (
	"context"
	"sync/atomic"
)

// Sequence returns a channel of elements for a lazy asynchronous sequence.
// The sequence does not produce anything until it is started by calling it
// with a context; each receive from the returned channel pulls the next
// element, and the channel is closed on exhaustion.
// A Sequence must be traversed sequentially, by a single consumer.
type Sequence[T any] func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T

// FromSlice returns a sequence that produces the elements of the given slices, in order.
func FromSlice[T any](slices ...[]T) Sequence[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, slice := range slices {
				for _, elem := range slice {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return outCh
	}
}

// FromChannel returns a sequence that produces the elements received through the given channels, in order.
// Since a channel cannot be replayed, the sequence must not be started more than once,
// doing so will panic.
func FromChannel[T any](channels ...<-chan T) Sequence[T] {
	started := atomic.Bool{}

	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		if started.Swap(true) {
			panic("sequence started multiple times")
		}

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, ch := range channels {
				for elem := range ch {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return outCh
	}
}

// Concat returns a sequence that produces the elements produced by the given sequences, in order.
// Each sequence is exhausted before the next one is started.
func Concat[T any](seqs ...Sequence[T]) Sequence[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, seq := range seqs {
				for elem := range seq(ctx, cancel) {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return outCh
	}
}
