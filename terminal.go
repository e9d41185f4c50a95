package fluentseq

import (
	"context"
	"errors"
)

// ConsumerFunc consumes element elem.
// Calling cancel ends the traversal after the current element.
type ConsumerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
// Calling cancel ends the traversal after the current element.
type AccumulatorFunc[T any, A any] func(ctx context.Context, cancel context.CancelCauseFunc, acc A, elem T) A

// ErrShortCircuit is a generic error used to end a traversal early by canceling
// the stream's context. Terminal operations report it as a nil error.
var ErrShortCircuit = errors.New("short circuit")

// Each starts seq and calls each for each element it produces. It is the
// terminal operation that drives consumption: elements are pulled on demand,
// one at a time, through the full combinator chain.
// If seq, a combinator, or each cancel the stream's context, it returns the
// cause of the cancelation. The sequence must not be traversed again afterward.
func Each[T any](ctx context.Context, seq Sequence[T], each ConsumerFunc[T]) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	ch := seq(ctx, cancel)

	for elem := range ch {
		each(ctx, cancel, elem)

		if contextDone(ctx) {
			break
		}
	}

	err := context.Cause(ctx)
	if errors.Is(err, ErrShortCircuit) {
		err = nil
	}

	return err
}

// Reduce calls fold for each element produced by seq, folding it into accumulator acc,
// returning the final accumulator.
// If the stream's context is canceled, it returns the accumulator so far, and the
// cause of the cancelation.
func Reduce[T any, A any](ctx context.Context, seq Sequence[T], acc A, fold AccumulatorFunc[T, A]) (A, error) {
	err := Each(ctx, seq, func(ctx context.Context, cancel context.CancelCauseFunc, elem T) {
		acc = fold(ctx, cancel, acc, elem)
	})

	return acc, err
}

// Collect drains seq into a slice, preserving production order.
// It must not be called on an infinite sequence.
// If the stream's context is canceled, it returns the elements collected so far,
// and the cause of the cancelation.
func Collect[T any](ctx context.Context, seq Sequence[T]) ([]T, error) {
	return Reduce(ctx, seq, nil, CollectSlice[T]())
}

// Count returns the number of elements produced by seq.
// If the stream's context is canceled, it returns an undefined result, and the
// cause of the cancelation.
func Count[T any](ctx context.Context, seq Sequence[T]) (uint64, error) {
	count := uint64(0)

	err := Each(ctx, seq, func(_ context.Context, _ context.CancelCauseFunc, _ T) {
		count++
	})

	return count, err
}

// AnyMatch returns true as soon as pred returns true for an element produced by seq.
// If an element matches, it cancels the stream's context using ErrShortCircuit.
func AnyMatch[T any](ctx context.Context, seq Sequence[T], pred PredicateFunc[T]) (bool, error) {
	anyMatch := false

	err := Each(ctx, seq, func(_ context.Context, cancel context.CancelCauseFunc, elem T) {
		if !pred(elem) {
			return
		}

		anyMatch = true

		cancel(ErrShortCircuit)
	})

	return anyMatch, err
}

// AllMatch returns true if pred returns true for all elements produced by seq.
// If any element does not match, it cancels the stream's context using ErrShortCircuit.
func AllMatch[T any](ctx context.Context, seq Sequence[T], pred PredicateFunc[T]) (bool, error) {
	allMatch := true

	err := Each(ctx, seq, func(_ context.Context, cancel context.CancelCauseFunc, elem T) {
		if pred(elem) {
			return
		}

		allMatch = false

		cancel(ErrShortCircuit)
	})

	return allMatch, err
}
