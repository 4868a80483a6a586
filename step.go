package orderedsets

import "fmt"

// Kind classifies a traversal step by which sides it carries.
type Kind uint8

const (
	_ Kind = iota
	LeftOnly
	RightOnly
	Both
)

// Kind implements [fmt.Stringer]
func (k Kind) String() string {
	switch k {
	case LeftOnly:
		return "LeftOnly"
	case RightOnly:
		return "RightOnly"
	case Both:
		return "Both"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Step is one aligned position of a pairwise traversal. At least one of
// Left and Right is present. LeftDone and RightDone report whether the
// corresponding side will produce any further element, taking into account
// the advance made for this step.
type Step[A, B any] struct {
	Left      Option[A]
	Right     Option[B]
	LeftDone  bool
	RightDone bool
}

func (s Step[A, B]) Kind() Kind {
	switch {
	case s.Left.ok && s.Right.ok:
		return Both
	case s.Left.ok:
		return LeftOnly
	case s.Right.ok:
		return RightOnly
	default:
		return 0
	}
}

// Step implements [fmt.Stringer]
func (s Step[A, B]) String() string {
	return fmt.Sprintf("{%v %v %t %t}", s.Left, s.Right, s.LeftDone, s.RightDone)
}
