package fluentseq

import "context"

// Batch returns a sequence that groups consecutive elements produced by seq
// into slices of the given size, in order. The final batch may be shorter than
// size, but is never empty; an empty upstream sequence produces zero batches.
// At most one partially filled batch is held at a time, and a batch being
// accumulated when the stream is canceled is discarded.
// A size less than 1 is a contract violation and panics.
func Batch[T any](seq Sequence[T], size int) Sequence[[]T] {
	if size < 1 {
		panic("batch size must be at least 1")
	}

	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan []T {
		ch := seq(ctx, cancel)

		outCh := make(chan []T)

		go func() {
			defer close(outCh)

			buf := make([]T, 0, size)

			for elem := range ch {
				buf = append(buf, elem)

				if len(buf) < size {
					continue
				}

				select {
				case outCh <- buf:
					buf = make([]T, 0, size)

				case <-ctx.Done():
					return
				}
			}

			if len(buf) == 0 || contextDone(ctx) {
				return
			}

			select {
			case outCh <- buf:

			case <-ctx.Done():
			}
		}()

		return outCh
	}
}
