package orderedsets_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/sirupsen/logrus"
	orderedsets "github.com/tabcat/ordered-sets"
)

func TestMain(m *testing.M) {
	// orderedsets.Log.SetLevel(logrus.TraceLevel)
	orderedsets.Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

var natural = orderedsets.Natural[int]()

func values(s []int) iter.Seq[int] {
	return slices.Values(s)
}

// collect drains seq into a non-nil slice so empty results compare equal to
// []T{} literals.
func collect[T any](seq iter.Seq[T]) []T {
	return append([]T{}, slices.Collect(seq)...)
}
