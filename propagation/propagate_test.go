package propagation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/geometry"
	"github.com/jeremycarroll/venntriangles/memo"
)

func buildTestContext(t *testing.T) *context.Context {
	t.Helper()
	m, err := memo.Build(geometry.NColors)
	require.NoError(t, err)
	return context.New(m)
}

func TestRestrictFaceCyclesEmptyFails(t *testing.T) {
	ctx := buildTestContext(t)
	fail := RestrictFaceCycles(ctx, geometry.FaceID(1), geometry.CycleSet{}, 0)
	require.NotNil(t, fail)
	require.Equal(t, NoMatchingCycles, fail.Kind)
}

func TestRestrictFaceCyclesConflictWhenAssigned(t *testing.T) {
	ctx := buildTestContext(t)
	face := geometry.FaceID(1)
	assigned := ctx.Face(face).Possible.IDs()[0]
	ctx.SetCurrentCycle(face, assigned)

	fail := RestrictFaceCycles(ctx, face, geometry.CycleSet{}, 0)
	require.NotNil(t, fail)
	require.Equal(t, ConflictingConstraints, fail.Kind)
	require.Equal(t, int(assigned), fail.Cycle)
}

func TestRestrictFaceCyclesNoOpWhenAlreadySatisfied(t *testing.T) {
	ctx := buildTestContext(t)
	face := geometry.FaceID(1)
	assigned := ctx.Face(face).Possible.IDs()[0]
	ctx.SetCurrentCycle(face, assigned)

	fail := RestrictFaceCycles(ctx, face, geometry.CycleSet{}.With(assigned), 0)
	require.Nil(t, fail)
}

func TestPropagateCycleChoiceDepthExceeded(t *testing.T) {
	ctx := buildTestContext(t)
	face := geometry.FaceID(1)
	cycle := ctx.Face(face).Possible.IDs()[0]
	fail := PropagateCycleChoice(ctx, face, cycle, MaxDepth+1)
	require.NotNil(t, fail)
	require.Equal(t, DepthExceeded, fail.Kind)
}

func TestCheckCornersNoopWhenUnlinked(t *testing.T) {
	ctx := buildTestContext(t)
	fail := checkCorners(ctx, geometry.FaceID(0), geometry.Color(0), 0)
	require.Nil(t, fail)
}

func TestCheckDisconnectionNoopWhenUnlinked(t *testing.T) {
	ctx := buildTestContext(t)
	start := geometry.EdgeRef{Face: geometry.FaceID(0), Color: geometry.Color(0)}
	fail := checkDisconnection(ctx, start, 0)
	require.Nil(t, fail)
}

func TestApplyColorOmissionDoesNotPanicOnFreshContext(t *testing.T) {
	ctx := buildTestContext(t)
	fail := applyColorOmission(ctx, geometry.Color(0), 0)
	// The fresh context may legitimately fail (every face is still fully
	// unconstrained and CyclesOmitting(0) may collapse some face's set to a
	// single cycle and cascade further); the property under test is only
	// that the call completes and reports a well-formed Kind either way.
	if fail != nil {
		require.Contains(t, []Kind{NoMatchingCycles, ConflictingConstraints, CrossingLimitExceeded, TooManyCorners, DisconnectedCurve, DepthExceeded}, fail.Kind)
	}
}

func TestValidateFaceCyclesFailsBeforeAnyAssignment(t *testing.T) {
	ctx := buildTestContext(t)
	fail := ValidateFaceCycles(ctx)
	require.NotNil(t, fail)
	require.Equal(t, DisconnectedCurve, fail.Kind)
}

func TestAscendingCycleIsFound(t *testing.T) {
	ctx := buildTestContext(t)
	id, ok := ascendingCycle(ctx)
	require.True(t, ok)
	cyc := ctx.Memo.Cycle(id)
	require.Equal(t, geometry.NColors, cyc.Len())
	for i, c := range cyc.Colors {
		require.Equal(t, geometry.Color(i), c)
	}
}
