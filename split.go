package orderedsets

import (
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"
)

// Range is the half-open interval [Start, End) of positions in a sequence.
type Range struct {
	Start, End int
}

func (r Range) Len() int {
	return r.End - r.Start
}

// Range implements [fmt.Stringer]
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

/*
Split cuts source at every sector. Each sector closes the segment accumulated
since the previous one; when a sector equals an element of source, that
element ends the segment it closes. Source elements past the last sector form
a final segment. So with sectors 0, 2, 4, 6, the sequence 0..7 splits into
[0] [1 2] [3 4] [5 6] [7].

A source with no sectors yields itself as a single segment (an empty one for
an empty source), and an empty source yields one empty segment per sector.
A trailing segment is only yielded when it is non-empty. Yielded slices are
never nil and are not touched again once yielded.
*/
func Split[T, S any](source iter.Seq[T], sectors iter.Seq[S], cmp CompareFunc[T, S]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		var (
			segment = []T{}
			cut     = false
		)
		for step := range Pairwise(source, sectors, cmp) {
			if v, ok := step.Left.Get(); ok {
				segment = append(segment, v)
			}
			if step.Right.IsNone() {
				continue
			}
			cut = true
			if !yield(segment) {
				return
			}
			segment = []T{}
		}
		if len(segment) > 0 || !cut {
			yield(segment)
		}
	}
}

// Ranges reports the segments of Split as positions in source, counted from
// offset. It fails before reading either sequence if offset is negative.
func Ranges[T, S any](source iter.Seq[T], sectors iter.Seq[S], cmp CompareFunc[T, S], offset int) (iter.Seq[Range], error) {
	if offset < 0 {
		Log.WithFields(logrus.Fields{"offset": offset}).Debug("rejecting ranges offset")
		return nil, fmt.Errorf("ranges: offset %d: %w", offset, ErrNegativeOffset)
	}
	return func(yield func(Range) bool) {
		var (
			r   = Range{Start: offset, End: offset}
			cut = false
		)
		for step := range Pairwise(source, sectors, cmp) {
			if step.Left.IsSome() {
				r.End++
			}
			if step.Right.IsNone() {
				continue
			}
			cut = true
			if !yield(r) {
				return
			}
			r.Start = r.End
		}
		if r.Len() > 0 || !cut {
			yield(r)
		}
	}, nil
}
