package fluentseq

import (
	"context"
	"errors"

	"golang.org/x/exp/slices"
)

// TransformFunc maps element elem to type U.
// Transforms are synchronous and must not block.
type TransformFunc[T any, U any] func(elem T) U

// TryTransformFunc maps element elem to type U, or fails.
type TryTransformFunc[T any, U any] func(elem T) (U, error)

// PredicateFunc returns true if elem matches a predicate.
type PredicateFunc[T any] func(elem T) bool

// TryPredicateFunc returns true if elem matches a predicate, or fails.
type TryPredicateFunc[T any] func(elem T) (bool, error)

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(a T, b T) bool

// ErrLimitReached is the error used to cancel the upstream sequence to indicate that
// the maximum number of elements given to Limit has been reached.
var ErrLimitReached = errors.New("limit reached")

// Map returns a sequence that calls transform for each element produced by seq,
// mapping it to type U. It preserves count and order 1:1.
func Map[T any, U any](seq Sequence[T], transform TransformFunc[T, U]) Sequence[U] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan U {
		ch := seq(ctx, cancel)

		outCh := make(chan U)

		go func() {
			defer close(outCh)

			for elem := range ch {
				select {
				case outCh <- transform(elem):

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// TryMap returns a sequence that calls transform for each element produced by seq,
// mapping it to type U. If transform fails, the sequence cancels the stream's context
// with the error and stops producing.
func TryMap[T any, U any](seq Sequence[T], transform TryTransformFunc[T, U]) Sequence[U] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan U {
		ch := seq(ctx, cancel)

		outCh := make(chan U)

		go func() {
			defer close(outCh)

			for elem := range ch {
				outElem, err := transform(elem)
				if err != nil {
					cancel(err)
					return
				}

				select {
				case outCh <- outElem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// Filter returns a sequence that calls filter for each element produced by seq,
// and only produces elements for which filter returns true. Rejected elements
// are skipped transparently by pulling the next element right away.
func Filter[T any](seq Sequence[T], filter PredicateFunc[T]) Sequence[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := seq(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for elem := range ch {
				if !filter(elem) {
					continue
				}

				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// TryFilter returns a sequence that calls filter for each element produced by seq,
// and only produces elements for which filter returns true. If filter fails,
// the sequence cancels the stream's context with the error and stops producing.
func TryFilter[T any](seq Sequence[T], filter TryPredicateFunc[T]) Sequence[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := seq(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for elem := range ch {
				keep, err := filter(elem)
				if err != nil {
					cancel(err)
					return
				}

				if !keep {
					continue
				}

				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// Peek returns a sequence that calls peek for each element produced by seq, in order,
// and produces the same elements.
func Peek[T any](seq Sequence[T], peek func(elem T)) Sequence[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := seq(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for elem := range ch {
				peek(elem)

				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// Limit returns a sequence that produces the same elements as seq, in order,
// up to max elements. Once the limit is reached, the upstream sequence is
// canceled with ErrLimitReached.
func Limit[T any](seq Sequence[T], max uint64) Sequence[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		seqCtx, cancelSeq := context.WithCancelCause(ctx)

		ch := seq(seqCtx, cancel)

		outCh := make(chan T)

		go func() {
			defer cancelSeq(nil)

			defer close(outCh)

			if max == 0 {
				cancelSeq(ErrLimitReached)
				return
			}

			done := uint64(0)

			for elem := range ch {
				select {
				case outCh <- elem:
					done++
					if done == max {
						cancelSeq(ErrLimitReached)
						return
					}

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// Skip returns a sequence that produces the same elements as seq, in order,
// skipping the first num elements.
func Skip[T any](seq Sequence[T], num uint64) Sequence[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := seq(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			done := uint64(0)

			for elem := range ch {
				done++
				if done <= num {
					continue
				}

				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// Sort returns a sequence that consumes all elements from seq, sorts them using less,
// and produces them in sorted order. Since it materializes the upstream sequence,
// it must not be used on an infinite sequence.
func Sort[T any](seq Sequence[T], less LessFunc[T]) Sequence[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := seq(ctx, cancel)

		result := []T{}

		for elem := range ch {
			result = append(result, elem)
		}

		slices.SortFunc(result, less)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, elem := range result {
				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// Identity returns a transform that returns the same element it receives.
func Identity[T any]() TransformFunc[T, T] {
	return func(elem T) T {
		return elem
	}
}
