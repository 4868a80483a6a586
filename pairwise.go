package orderedsets

import (
	"iter"

	"github.com/sirupsen/logrus"
)

// Pairwise walks source and target in lockstep and yields one Step per
// position of their merge. Each step carries the smaller pending element, or
// one element from each side when cmp reports them equal. Equal elements are
// paired one-to-one in order; a surplus on either side surfaces as
// single-sided steps once the other side's run is used up.
//
// Every element of source appears in exactly one step's Left and every element
// of target in exactly one step's Right, in their original order. Both
// sequences are read forward once through iter.Pull and are released when the
// consumer stops ranging. A nil sequence is treated as empty.
func Pairwise[A, B any](source iter.Seq[A], target iter.Seq[B], cmp CompareFunc[A, B]) iter.Seq[Step[A, B]] {
	checked := func(a A, b B) (int, error) {
		return cmp(a, b), nil
	}
	return func(yield func(Step[A, B]) bool) {
		for step := range PairwiseChecked(source, target, checked) {
			if !yield(step) {
				return
			}
		}
	}
}

// PairwiseChecked is Pairwise for a comparator that can fail. The first error
// returned by cmp is yielded together with a zero Step, after which the
// sequence ends.
func PairwiseChecked[A, B any](source iter.Seq[A], target iter.Seq[B], cmp func(A, B) (int, error)) iter.Seq2[Step[A, B], error] {
	return func(yield func(Step[A, B], error) bool) {
		left := pull(source)
		defer left.stop()
		right := pull(target)
		defer right.stop()

		var stats walkStats
		for left.ok || right.ok {
			var step Step[A, B]
			switch {
			case left.ok && right.ok:
				order, err := cmp(left.head, right.head)
				if err != nil {
					Log.WithError(err).Debug("comparator failed, ending traversal")
					stats.trace("comparator error")
					yield(Step[A, B]{}, err)
					return
				}
				if order <= 0 {
					step.Left = Some(left.head)
					left.advance()
				}
				if order >= 0 {
					step.Right = Some(right.head)
					right.advance()
				}
			case left.ok:
				step.Left = Some(left.head)
				left.advance()
			default:
				step.Right = Some(right.head)
				right.advance()
			}

			/* flags describe the state after this step's advance */
			step.LeftDone, step.RightDone = !left.ok, !right.ok
			stats.add(step.Kind())

			if !yield(step, nil) {
				stats.trace("consumer stopped")
				return
			}
		}
		stats.trace("exhausted")
	}
}

// cursor holds the pending element of one side of a traversal.
type cursor[T any] struct {
	next func() (T, bool)
	stop func()
	head T
	ok   bool
}

func pull[T any](seq iter.Seq[T]) *cursor[T] {
	if seq == nil {
		return &cursor[T]{stop: func() {}}
	}
	next, stop := iter.Pull(seq)
	c := &cursor[T]{next: next, stop: stop}
	c.advance()
	return c
}

func (c *cursor[T]) advance() {
	c.head, c.ok = c.next()
}

type walkStats struct {
	leftOnly, rightOnly, both int
}

func (s *walkStats) add(k Kind) {
	switch k {
	case LeftOnly:
		s.leftOnly++
	case RightOnly:
		s.rightOnly++
	case Both:
		s.both++
	}
}

func (s *walkStats) trace(end string) {
	if !Log.IsLevelEnabled(logrus.TraceLevel) {
		return
	}
	Log.WithFields(logrus.Fields{
		"left_only":  s.leftOnly,
		"right_only": s.rightOnly,
		"both":       s.both,
		"end":        end,
	}).Trace("pairwise traversal finished")
}
