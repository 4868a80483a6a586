package orderedsets

import "cmp"

// CompareFunc orders an element of one sequence against an element of
// another. It returns a negative number when a sorts before b, zero when they
// are equal for set purposes, and a positive number otherwise. A and B may
// differ, e.g. records against the keys they are sorted by.
type CompareFunc[A, B any] func(a A, b B) int

// Natural is the CompareFunc of the natural order of T.
func Natural[T cmp.Ordered]() CompareFunc[T, T] {
	return cmp.Compare[T]
}

// Reverse inverts the order described by c. Sequences sorted in descending
// order can be combined with Reverse(Natural[T]()).
func Reverse[A, B any](c CompareFunc[A, B]) CompareFunc[A, B] {
	return func(a A, b B) int {
		switch r := c(a, b); {
		case r < 0:
			return 1
		case r > 0:
			return -1
		default:
			return 0
		}
	}
}
