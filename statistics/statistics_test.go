package statistics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/engine"
	"github.com/jeremycarroll/venntriangles/geometry"
	"github.com/jeremycarroll/venntriangles/memo"
	"github.com/jeremycarroll/venntriangles/propagation"
)

func newTestContext(t *testing.T) *context.Context {
	t.Helper()
	m, err := memo.Build(geometry.NColors)
	require.NoError(t, err)
	return context.New(m)
}

func TestIncrementAndGet(t *testing.T) {
	s := New()
	require.Equal(t, uint64(0), s.Get(VennSolutions))

	s.Increment(VennSolutions)
	s.Increment(VennSolutions)
	s.Increment(EquivocalSolutions)

	require.Equal(t, uint64(2), s.Get(VennSolutions))
	require.Equal(t, uint64(1), s.Get(EquivocalSolutions))
	require.Equal(t, uint64(0), s.Get(InnerFaceSolutions))
}

func TestIncrementFailureAndGetFailure(t *testing.T) {
	s := New()
	s.IncrementFailure(propagation.NoMatchingCycles)
	s.IncrementFailure(propagation.NoMatchingCycles)
	s.IncrementFailure(propagation.DepthExceeded)

	require.Equal(t, uint64(2), s.GetFailure(propagation.NoMatchingCycles))
	require.Equal(t, uint64(1), s.GetFailure(propagation.DepthExceeded))
	require.Equal(t, uint64(0), s.GetFailure(propagation.TooManyCorners))
}

func TestCounterString(t *testing.T) {
	require.Equal(t, "VennSolutions", VennSolutions.String())
	require.Equal(t, "EquivocalSolutions", EquivocalSolutions.String())
	require.Equal(t, "InnerFaceSolutions", InnerFaceSolutions.String())
}

func TestCountingPredicateDefaultsToAlwaysCount(t *testing.T) {
	ctx := newTestContext(t)
	s := New()
	p := NewCountingPredicate(s, VennSolutions, nil)

	result := p.Try(ctx, 0)
	require.Equal(t, engine.Success, result.Status)
	require.Equal(t, uint64(1), s.Get(VennSolutions))
}

func TestCountingPredicateHonorsFilter(t *testing.T) {
	ctx := newTestContext(t)
	s := New()
	p := NewCountingPredicate(s, VennSolutions, func(ctx *context.Context) bool { return false })

	p.Try(ctx, 0)
	require.Equal(t, uint64(0), s.Get(VennSolutions))
}

func TestCountingPredicateRetryPanics(t *testing.T) {
	ctx := newTestContext(t)
	p := NewCountingPredicate(New(), VennSolutions, nil)
	require.Panics(t, func() {
		p.Retry(ctx, 0, 0)
	})
}
