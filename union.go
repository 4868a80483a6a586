package orderedsets

import "iter"

// Union yields one element per traversal step: the element of a when a step
// carries one, the element of b otherwise. Elements equal under cmp are
// therefore represented once, by a's value.
func Union[T any](a, b iter.Seq[T], cmp CompareFunc[T, T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for step := range Pairwise(a, b, cmp) {
			if !yield(step.Left.OrElse(step.Right.value)) {
				return
			}
		}
	}
}
