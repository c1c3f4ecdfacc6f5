package predicates

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/engine"
	"github.com/jeremycarroll/venntriangles/geometry"
	"github.com/jeremycarroll/venntriangles/memo"
)

func newTestContext(t *testing.T) *context.Context {
	t.Helper()
	m, err := memo.Build(geometry.NColors)
	require.NoError(t, err)
	return context.New(m)
}

func TestInitializeFreezesTrail(t *testing.T) {
	ctx := newTestContext(t)

	cpBeforeFreeze := ctx.Trail.Checkpoint()
	ctx.SetDegreeSlot(3, 9) // a write that happens before the freeze

	result := Initialize{}.Try(ctx, 0)
	require.Equal(t, engine.Success, result.Status)

	ctx.SetDegreeSlot(0, 5) // a write made after the freeze

	// Rewinding to a checkpoint taken before the freeze must be a silent
	// no-op: both writes survive.
	ctx.Trail.RewindTo(cpBeforeFreeze)

	d3, ok := ctx.DegreeSlot(3)
	require.True(t, ok)
	require.Equal(t, 9, d3)

	d0, ok := ctx.DegreeSlot(0)
	require.True(t, ok)
	require.Equal(t, 5, d0)
}

func TestInnerFaceOffersNColorsMinus2ChoicesPerRound(t *testing.T) {
	ctx := newTestContext(t)
	result := InnerFace{}.Try(ctx, 0)
	require.Equal(t, engine.Choices, result.Status)
	require.Equal(t, geometry.NColors-2, result.N)
}

func TestInnerFaceRetryWritesDegreeSlot(t *testing.T) {
	ctx := newTestContext(t)
	result := InnerFace{}.Retry(ctx, 2, 0)
	require.Equal(t, engine.SuccessSameRound, result.Status)
	degree, ok := ctx.DegreeSlot(2)
	require.True(t, ok)
	require.Equal(t, geometry.NColors, degree)
}

func TestInnerFaceFailsOnWrongSum(t *testing.T) {
	ctx := newTestContext(t)
	for i := 0; i < geometry.NColors; i++ {
		ctx.SetDegreeSlot(i, 3) // sum = 3*NColors, essentially never equal to InnerRingDegreeSum
	}
	result := InnerFace{}.Try(ctx, geometry.NColors)
	require.Equal(t, engine.Failure, result.Status)
}

func TestVennTryReturnsChoicesForFreshContext(t *testing.T) {
	ctx := newTestContext(t)
	v := &Venn{}
	result := v.Try(ctx, 0)
	require.Equal(t, engine.Choices, result.Status)
	require.Greater(t, result.N, 0)
}

func TestVennRetrySetsInChoiceExpansionOnlyDuringCall(t *testing.T) {
	ctx := newTestContext(t)
	v := &Venn{}
	v.Try(ctx, 0) // populates faceAtRound[0]/cursorAtRound[0]

	require.False(t, ctx.InChoiceExpansion)
	v.Retry(ctx, 0, 0)
	require.False(t, ctx.InChoiceExpansion) // reset after the call regardless of outcome
}

func TestFailAndSuspendAreTerminal(t *testing.T) {
	var _ engine.Terminal = Fail{}
	var _ engine.Terminal = Suspend{}

	require.Equal(t, engine.Failure, Fail{}.Try(nil, 0).Status)
	require.Equal(t, engine.Suspend, Suspend{}.Try(nil, 0).Status)
}
