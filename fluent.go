package fluentseq

import (
	"context"
	"sync/atomic"
	"time"
)

// A Stream is a fluent facade over a Sequence. Each chain call consumes the
// receiver and returns a new Stream wrapping the derived Sequence; terminal
// operations consume the receiver and drive the traversal. Using a consumed
// Stream panics. Streams are never mutated in place.
//
// Chain calls that change the element type cannot be methods, since Go
// methods cannot introduce type parameters; use the package-level Mapped,
// TryMapped, and Grouped instead.
type Stream[T any] struct {
	seq      Sequence[T]
	consumed *atomic.Bool
}

// New returns a stream over seq.
func New[T any](seq Sequence[T]) *Stream[T] {
	return &Stream[T]{
		seq:      seq,
		consumed: &atomic.Bool{},
	}
}

// Of returns a stream over the given elements.
func Of[T any](elems ...T) *Stream[T] {
	return New(FromSlice(elems))
}

// take consumes the stream, handing out its sequence.
func (s *Stream[T]) take() Sequence[T] {
	if s.consumed.Swap(true) {
		panic("stream already consumed")
	}

	return s.seq
}

// Map consumes the stream, returning a stream of the results of calling
// transform for each element. For a transform that changes the element type,
// use Mapped.
func (s *Stream[T]) Map(transform TransformFunc[T, T]) *Stream[T] {
	return New(Map(s.take(), transform))
}

// Filter consumes the stream, returning a stream of the elements for which
// filter returns true.
func (s *Stream[T]) Filter(filter PredicateFunc[T]) *Stream[T] {
	return New(Filter(s.take(), filter))
}

// TryFilter consumes the stream, returning a stream of the elements for which
// filter returns true. If filter fails, the stream is canceled with the error.
func (s *Stream[T]) TryFilter(filter TryPredicateFunc[T]) *Stream[T] {
	return New(TryFilter(s.take(), filter))
}

// Batch consumes the stream, returning a stream of consecutive batches of the
// given size. A size less than 1 panics.
func (s *Stream[T]) Batch(size int) *Stream[[]T] {
	return New(Batch(s.take(), size))
}

// Interval consumes the stream, returning a stream that spaces successive
// deliveries at least min apart.
func (s *Stream[T]) Interval(min time.Duration) *Stream[T] {
	return New(Interval(s.take(), min))
}

// Limit consumes the stream, returning a stream of at most max elements.
func (s *Stream[T]) Limit(max uint64) *Stream[T] {
	return New(Limit(s.take(), max))
}

// Skip consumes the stream, returning a stream without the first num elements.
func (s *Stream[T]) Skip(num uint64) *Stream[T] {
	return New(Skip(s.take(), num))
}

// Peek consumes the stream, returning a stream of the same elements that calls
// peek for each element in passing.
func (s *Stream[T]) Peek(peek func(elem T)) *Stream[T] {
	return New(Peek(s.take(), peek))
}

// Sort consumes the stream, returning a stream of its elements sorted using
// less. The underlying sequence is materialized, so the stream must be finite.
func (s *Stream[T]) Sort(less LessFunc[T]) *Stream[T] {
	return New(Sort(s.take(), less))
}

// Collect consumes the stream, draining it into a slice in production order.
// The stream must be finite.
func (s *Stream[T]) Collect(ctx context.Context) ([]T, error) {
	return Collect(ctx, s.take())
}

// Each consumes the stream, calling each for each element in production order.
func (s *Stream[T]) Each(ctx context.Context, each func(elem T)) error {
	return Each(ctx, s.take(), func(_ context.Context, _ context.CancelCauseFunc, elem T) {
		each(elem)
	})
}

// Count consumes the stream, returning its number of elements.
// The stream must be finite.
func (s *Stream[T]) Count(ctx context.Context) (uint64, error) {
	return Count(ctx, s.take())
}

// Sequence consumes the stream, handing back the underlying Sequence for
// manual traversal, without draining it:
//
//	ctx, cancel := context.WithCancelCause(ctx)
//	defer cancel(nil)
//
//	for elem := range s.Sequence()(ctx, cancel) {
//		...
//	}
func (s *Stream[T]) Sequence() Sequence[T] {
	return s.take()
}

// Mapped consumes stream s, returning a stream of the results of calling
// transform for each element, mapped to type U.
func Mapped[T any, U any](s *Stream[T], transform TransformFunc[T, U]) *Stream[U] {
	return New(Map(s.take(), transform))
}

// TryMapped consumes stream s, returning a stream of the results of calling
// transform for each element, mapped to type U. If transform fails, the
// stream is canceled with the error.
func TryMapped[T any, U any](s *Stream[T], transform TryTransformFunc[T, U]) *Stream[U] {
	return New(TryMap(s.take(), transform))
}

// Grouped consumes stream s, returning a stream of the runs of consecutive
// elements sharing the same derived key. The stream is expected to be ordered
// by the derived key.
func Grouped[T any, K comparable](s *Stream[T], key KeyFunc[T, K]) *Stream[Group[K, T]] {
	return New(GroupBy(s.take(), key))
}
