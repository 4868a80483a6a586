package orderedsets

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is matched by every *BoundsError.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrNegativeOffset is returned by Ranges for an offset below zero.
	ErrNegativeOffset = errors.New("offset cannot be negative")
)

// BoundsError reports an index or slice bound that falls outside [Min, Max].
type BoundsError struct {
	Op    string // operation that rejected the value: "at" or "read"
	Name  string // "index", "start" or "end"
	Value int
	Min   int
	Max   int
}

// [BoundsError] implements [error]
func (e *BoundsError) Error() string {
	if e.Max < e.Min {
		return fmt.Sprintf("%s: %s %d out of range (empty)", e.Op, e.Name, e.Value)
	}
	return fmt.Sprintf("%s: %s %d out of range [%d, %d]", e.Op, e.Name, e.Value, e.Min, e.Max)
}

func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
