//go:build !n3 && !n4 && !n5

package predicates

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/engine"
	"github.com/jeremycarroll/venntriangles/geometry"
	"github.com/jeremycarroll/venntriangles/memo"
	"github.com/jeremycarroll/venntriangles/propagation"
	"github.com/jeremycarroll/venntriangles/sink"
)

// runFixedDegreeScenario mirrors cmd/venn-search's -degrees path: Initialize
// then SetupCentralFace directly (bypassing InnerFace's enumeration), then
// Venn through to exhaustion, counting every solution found.
func runFixedDegreeScenario(t *testing.T, degrees [geometry.NColors]int) (int, bool) {
	t.Helper()
	m, err := memo.Build(geometry.NColors)
	require.NoError(t, err)
	ctx := context.New(m)

	Initialize{}.Try(ctx, 0)
	if fail := propagation.SetupCentralFace(ctx, degrees); fail != nil {
		return 0, false
	}

	counting := &sink.Counting{}
	program := []engine.Predicate{&Venn{}, counting, Fail{}}
	status := engine.New(ctx, program).Search()
	require.Equal(t, engine.Failure, status)

	return counting.Count, true
}

// TestScenarioN6FixedDegreesS4 is SPEC_FULL.md §8's S4: N=6, fixed inner-face
// degrees [6,6,4,4,4,3] must yield exactly 5 solutions.
func TestScenarioN6FixedDegreesS4(t *testing.T) {
	count, setupOK := runFixedDegreeScenario(t, [geometry.NColors]int{6, 6, 4, 4, 4, 3})
	require.True(t, setupOK)
	require.Equal(t, 5, count)
}

// TestScenarioN6FixedDegreesS5 is SPEC_FULL.md §8's S5: N=6, fixed inner-face
// degrees [6,5,5,4,4,3] must yield exactly 6 solutions.
func TestScenarioN6FixedDegreesS5(t *testing.T) {
	count, setupOK := runFixedDegreeScenario(t, [geometry.NColors]int{6, 5, 5, 4, 4, 3})
	require.True(t, setupOK)
	require.Equal(t, 6, count)
}

// TestScenarioN6FullSearchS6 is SPEC_FULL.md §8's S6: the full N=6 search
// (Initialize, InnerFace, Venn) must find 233 solutions across every
// canonical or equivocal inner-ring degree sequence. This is the most
// expensive scenario in the suite (it enumerates every reachable degree
// signature, not one fixed sequence), so it is skipped under go test -short.
func TestScenarioN6FullSearchS6(t *testing.T) {
	if testing.Short() {
		t.Skip("full N=6 search is expensive; skipped under -short")
	}

	m, err := memo.Build(geometry.NColors)
	require.NoError(t, err)
	ctx := context.New(m)

	counting := &sink.Counting{}
	program := []engine.Predicate{Initialize{}, InnerFace{}, &Venn{}, counting, Fail{}}
	status := engine.New(ctx, program).Search()

	require.Equal(t, engine.Failure, status)
	require.Equal(t, 233, counting.Count)
}
