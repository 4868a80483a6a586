/*
Package orderedsets computes set algebra over sequences that are already
sorted, without building a hash or tree set from either of them.

Every operation is a projection of a single merge-join, [Pairwise], which
walks two sorted [iter.Seq] values in lockstep and classifies each position as
[LeftOnly], [RightOnly] or [Both]. Each input is read forward exactly once, one
element at a time, so inputs may be arbitrarily large or streamed:

	even := slices.Values([]int{0, 2, 4, 6})
	odd := slices.Values([]int{1, 3, 5, 7})

	for v := range orderedsets.Union(even, odd, orderedsets.Natural[int]()) {
		fmt.Print(v, " ") // 0 1 2 3 4 5 6 7
	}

The two sequences may hold different types as long as the [CompareFunc]
orders one against the other, e.g. records against the keys they are sorted
by. [Intersection] then yields the right-hand values, [Difference] the
left-hand ones.

Inputs must be non-decreasing under the comparator. This is not checked; an
unsorted input or an inconsistent comparator produces unspecified output, not
an error. Duplicates within one input are kept and are matched one-to-one
against equal elements of the other input.

Faults are never recovered. A comparator that panics aborts the traversal and
the panic reaches the consumer, as does a panic raised inside an input
sequence. Comparators that report failure through an error can be used with
[PairwiseChecked].
*/
package orderedsets
