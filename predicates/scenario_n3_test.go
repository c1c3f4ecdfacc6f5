//go:build n3

package predicates

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/engine"
	"github.com/jeremycarroll/venntriangles/memo"
	"github.com/jeremycarroll/venntriangles/sink"
)

// TestScenarioN3 is SPEC_FULL.md §8's S1: program = [Initialize, Venn,
// counter, Fail] at N=3 must find exactly 2 solutions before exhausting.
func TestScenarioN3(t *testing.T) {
	m, err := memo.Build(3)
	require.NoError(t, err)
	ctx := context.New(m)

	counting := &sink.Counting{}
	program := []engine.Predicate{
		Initialize{},
		&Venn{},
		counting,
		Fail{},
	}

	eng := engine.New(ctx, program)
	status := eng.Search()

	require.Equal(t, engine.Failure, status)
	require.Equal(t, 2, counting.Count)
}
