package sink

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

func TestCountingIncrementsOncePerTry(t *testing.T) {
	ctx := newTestContext(t)
	c := &Counting{}

	result := c.Try(ctx, 0)
	require.Equal(t, engine.Success, result.Status)
	require.Equal(t, 1, c.Count)

	c.Try(ctx, 0)
	require.Equal(t, 2, c.Count)
}

func TestCountingRetryPanics(t *testing.T) {
	ctx := newTestContext(t)
	c := &Counting{}
	require.Panics(t, func() {
		c.Retry(ctx, 0, 0)
	})
}

func TestRecordingCapturesOneSolutionPerTry(t *testing.T) {
	ctx := newTestContext(t)
	r := &Recording{}

	result := r.Try(ctx, 0)
	require.Equal(t, engine.Success, result.Status)
	require.Len(t, r.Solutions, 1)

	r.Try(ctx, 0)
	require.Len(t, r.Solutions, 2)
}

func TestRecordingRetryPanics(t *testing.T) {
	ctx := newTestContext(t)
	r := &Recording{}
	require.Panics(t, func() {
		r.Retry(ctx, 0, 0)
	})
}
