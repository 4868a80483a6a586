package orderedsets

import "iter"

// Difference yields the elements of minuend that have no equal counterpart in
// subtrahend, in minuend order.
func Difference[A, B any](minuend iter.Seq[A], subtrahend iter.Seq[B], cmp CompareFunc[A, B]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for step := range Pairwise(minuend, subtrahend, cmp) {
			if step.Kind() != LeftOnly {
				continue
			}
			if !yield(step.Left.value) {
				return
			}
		}
	}
}

// Symmetric yields the elements found on only one side, merged in order
// rather than grouped by side.
func Symmetric[T any](a, b iter.Seq[T], cmp CompareFunc[T, T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for left, right := range Diff(a, b, cmp) {
			if !yield(left.OrElse(right.value)) {
				return
			}
		}
	}
}

// Diff is Symmetric for callers that need to know which side an element came
// from. Exactly one of each yielded pair is present.
func Diff[A, B any](a iter.Seq[A], b iter.Seq[B], cmp CompareFunc[A, B]) iter.Seq2[Option[A], Option[B]] {
	return func(yield func(Option[A], Option[B]) bool) {
		for step := range Pairwise(a, b, cmp) {
			if step.Kind() == Both {
				continue
			}
			if !yield(step.Left, step.Right) {
				return
			}
		}
	}
}
