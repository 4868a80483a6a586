package orderedsets_test

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	orderedsets "github.com/tabcat/ordered-sets"
	"github.com/tabcat/ordered-sets/internal/testsets"
)

func TestUnion(t *testing.T) {
	var (
		numbers = testsets.Numbers()
		even    = testsets.Even()
		odd     = testsets.Odd()
	)

	tests := []setCase{
		{name: "first and second empty", want: []int{}},
		{name: "first empty", b: numbers, want: numbers},
		{name: "second empty", a: numbers, want: numbers},
		{name: "identical single", a: numbers[:1], b: numbers[:1], want: numbers[:1]},
		{name: "identical", a: numbers, b: numbers, want: numbers},
		{name: "partial overlap even", a: numbers, b: even, want: numbers},
		{name: "partial overlap odd", a: numbers, b: odd, want: numbers},
		{name: "no overlap even odd", a: even, b: odd, want: numbers},
		{name: "no overlap odd even", a: odd, b: even, want: numbers},
		{name: "duplicates", a: []int{1, 1, 2}, b: []int{1, 2, 2, 2}, want: []int{1, 1, 2, 2, 2}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, collect(orderedsets.Union(values(test.a), values(test.b), natural)))
		})
	}
}

func TestUnionKeepsLeftValue(t *testing.T) {
	a := []user{{1, "a1"}, {2, "a2"}}
	b := []user{{2, "b2"}, {3, "b3"}}
	byID := func(x, y user) int { return cmp.Compare(x.ID, y.ID) }

	got := collect(orderedsets.Union(slices.Values(a), slices.Values(b), byID))
	assert.Equal(t, []user{{1, "a1"}, {2, "a2"}, {3, "b3"}}, got)
}

func TestUnionDescending(t *testing.T) {
	a := []int{9, 5, 3}
	b := []int{8, 5, 1}

	got := collect(orderedsets.Union(values(a), values(b), orderedsets.Reverse(natural)))
	assert.Equal(t, []int{9, 8, 5, 3, 1}, got)
}

func TestUnionStopsEarly(t *testing.T) {
	a := testsets.NewProbe(testsets.Naturals())
	b := testsets.NewProbe(testsets.Naturals())

	var got []int
	for v := range orderedsets.Union(a.All(), b.All(), natural) {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2}, got)
	assert.True(t, a.Closed)
	assert.True(t, b.Closed)
}
