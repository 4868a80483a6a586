package orderedsets

import "iter"

// Intersection yields b's value for every element of a matched by an equal
// element of b. It stops reading both sequences as soon as either one is
// exhausted, so one infinite input is fine as long as the other ends.
func Intersection[A, B any](a iter.Seq[A], b iter.Seq[B], cmp CompareFunc[A, B]) iter.Seq[B] {
	return func(yield func(B) bool) {
		for step := range Pairwise(a, b, cmp) {
			if step.Kind() == Both && !yield(step.Right.value) {
				return
			}
			if step.LeftDone || step.RightDone {
				return
			}
		}
	}
}
