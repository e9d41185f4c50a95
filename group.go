package fluentseq

import "context"

// KeyFunc derives a grouping key from element elem.
type KeyFunc[T any, K comparable] func(elem T) K

// A Group holds a run of consecutive elements sharing the same derived key.
type Group[K comparable, T any] struct {
	// Key is the derived key shared by all elements of the group.
	Key K

	// Items are the group's elements, in production order.
	Items []T
}

// GroupBy returns a sequence that groups consecutive elements of seq sharing
// the same derived key, comparing keys by value equality. A new group starts
// exactly when the derived key of the next element differs from the open
// group's key; each group is fully accumulated before it is produced.
//
// The upstream sequence is expected to be ordered by the derived key, so that
// elements sharing a key are contiguous. This is not verified: if a key
// reappears non-contiguously, a separate group is produced for each run
// rather than merging them.
//
// An empty upstream sequence produces zero groups, and a group being
// accumulated when the stream is canceled is discarded.
func GroupBy[T any, K comparable](seq Sequence[T], key KeyFunc[T, K]) Sequence[Group[K, T]] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan Group[K, T] {
		ch := seq(ctx, cancel)

		outCh := make(chan Group[K, T])

		go func() {
			defer close(outCh)

			var current Group[K, T]

			open := false

			for elem := range ch {
				elemKey := key(elem)

				if open && elemKey == current.Key {
					current.Items = append(current.Items, elem)
					continue
				}

				if open {
					select {
					case outCh <- current:

					case <-ctx.Done():
						return
					}
				}

				current = Group[K, T]{
					Key:   elemKey,
					Items: []T{elem},
				}

				open = true
			}

			if !open || contextDone(ctx) {
				return
			}

			select {
			case outCh <- current:

			case <-ctx.Done():
			}
		}()

		return outCh
	}
}
