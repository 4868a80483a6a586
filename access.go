package orderedsets

import "iter"

// At returns s[i], or a *BoundsError instead of panicking when i is outside s.
func At[T any](s []T, i int) (T, error) {
	if i < 0 || i >= len(s) {
		var zero T
		return zero, &BoundsError{Op: "at", Name: "index", Value: i, Min: 0, Max: len(s) - 1}
	}
	return s[i], nil
}

// Read returns a sequence over s[start:end] that reads s in place. The bounds
// are checked up front: 0 <= start <= len(s) and start <= end <= len(s).
func Read[T any](s []T, start, end int) (iter.Seq[T], error) {
	if start < 0 || start > len(s) {
		return nil, &BoundsError{Op: "read", Name: "start", Value: start, Min: 0, Max: len(s)}
	}
	if end < start || end > len(s) {
		return nil, &BoundsError{Op: "read", Name: "end", Value: end, Min: start, Max: len(s)}
	}
	return func(yield func(T) bool) {
		for _, v := range s[start:end] {
			if !yield(v) {
				return
			}
		}
	}, nil
}
