package fluentseq

import "context"

// A DuplicateKeyError is used to cancel a stream's context to indicate that
// a key could not be added to a map because it already exists.
type DuplicateKeyError[T any, K comparable] struct {
	// Element is the element that caused the error.
	Element T

	// Key is the key that was already in the map.
	Key K
}

// CollectSlice returns an accumulator that collects elements into a slice,
// preserving production order.
func CollectSlice[T any]() AccumulatorFunc[T, []T] {
	return func(_ context.Context, _ context.CancelCauseFunc, acc []T, elem T) []T {
		return append(acc, elem)
	}
}

// CollectMap returns an accumulator that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the map entry will be overwritten.
func CollectMap[T any, K comparable, V any](key KeyFunc[T, K], value TransformFunc[T, V]) AccumulatorFunc[T, map[K]V] {
	return func(_ context.Context, _ context.CancelCauseFunc, acc map[K]V, elem T) map[K]V {
		acc[key(elem)] = value(elem)
		return acc
	}
}

// CollectMapNoDuplicateKeys returns an accumulator that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the stream's context will be canceled with a DuplicateKeyError.
func CollectMapNoDuplicateKeys[T any, K comparable, V any](key KeyFunc[T, K], value TransformFunc[T, V]) AccumulatorFunc[T, map[K]V] {
	return func(_ context.Context, cancel context.CancelCauseFunc, acc map[K]V, elem T) map[K]V {
		elemKey := key(elem)

		if _, ok := acc[elemKey]; ok {
			cancel(&DuplicateKeyError[T, K]{
				Element: elem,
				Key:     elemKey,
			})

			return acc
		}

		acc[elemKey] = value(elem)

		return acc
	}
}

// Error implements error.
func (e *DuplicateKeyError[T, K]) Error() string {
	return "duplicate key"
}
