// Package testsets holds the sorted fixtures shared by the package tests.
package testsets

import (
	"iter"
	"math/rand/v2"
	"slices"
)

const Size = 8

// Create returns 0, 1, ..., n-1.
func Create(n int) []int {
	s := make([]int, n)
	for i := range n {
		s[i] = i
	}
	return s
}

func Numbers() []int {
	return Create(Size)
}

func Even() []int {
	return slices.DeleteFunc(Numbers(), func(n int) bool { return n%2 != 0 })
}

func Odd() []int {
	return slices.DeleteFunc(Numbers(), func(n int) bool { return n%2 == 0 })
}

// Naturals yields 0, 1, 2, ... until the consumer stops.
func Naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Random returns n values drawn from [0, limit) in ascending order, with
// duplicates kept.
func Random(r *rand.Rand, n, limit int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = r.IntN(limit)
	}
	slices.Sort(s)
	return s
}

// Probe wraps a sequence and records how it was consumed.
type Probe[T any] struct {
	seq    iter.Seq[T]
	Pulled int  // elements handed to the consumer
	Closed bool // the wrapped sequence has returned
}

func NewProbe[T any](seq iter.Seq[T]) *Probe[T] {
	return &Probe[T]{seq: seq}
}

func (p *Probe[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer func() { p.Closed = true }()
		for v := range p.seq {
			p.Pulled++
			if !yield(v) {
				return
			}
		}
	}
}
