package fluentseq

import (
	"context"
	"time"
)

// Interval returns a sequence that produces the same elements as seq, in order,
// spacing successive deliveries at least min apart. Time spent by the upstream
// producing the next element counts toward the interval, so the wait shrinks
// or vanishes when the upstream is already slower than min. The first element
// is delivered as soon as it is available, and a min of zero or less makes
// Interval a pass-through.
func Interval[T any](seq Sequence[T], min time.Duration) Sequence[T] {
	if min <= 0 {
		return seq
	}

	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := seq(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			// last is the monotonic timestamp of the previous delivery.
			var last time.Time

			for elem := range ch {
				if !last.IsZero() {
					if wait := min - time.Since(last); wait > 0 {
						timer := time.NewTimer(wait)

						select {
						case <-timer.C:

						case <-ctx.Done():
							timer.Stop()
							return
						}
					}
				}

				select {
				case outCh <- elem:
					last = time.Now()

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}
