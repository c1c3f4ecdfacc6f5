package propagation

import (
	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/geometry"
)

// resolveVertices is step 4 of PropagateCycleChoice (SPEC_FULL.md §4.3.a):
// for each consecutive color pair in cyc, resolve the crossing vertex the
// first time it is seen, bump its crossing count, link its four incident
// edges, and — for faces other than the inner face — run the corner check
// on each color in cyc.
func resolveVertices(ctx *context.Context, face geometry.FaceID, cyc geometry.Cycle, depth int) *Failure {
	outsideBase := face.ColorSet()

	for i := 0; i < cyc.Len(); i++ {
		a, b := cyc.At(i), cyc.At(i+1)
		outside := outsideBase.Diff(geometry.NewColorSet(a, b))

		vid, ok := ctx.Memo.VertexAt(outside, a, b)
		if !ok {
			continue // geometrically unrealizable; monotonicity filter should already exclude this
		}

		if ctx.Dyn.VertexSeenHas(vid) {
			continue
		}
		ctx.MarkVertexSeen(vid)

		count := ctx.IncrementCrossing(a, b)
		if count > geometry.MaxCrossings {
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			return &Failure{Kind: CrossingLimitExceeded, Face: int(face), I: int(lo), J: int(hi), Count: count, Depth: depth}
		}

		v := ctx.Memo.Vertices[vid]
		for _, e := range v.Incoming {
			if ctx.Face(e.Face).Edges[e.Color].ToEncoded != 0 {
				continue
			}
			other := v.Secondary
			if e.Color == v.Secondary {
				other = v.Primary
			}
			link, ok := ctx.Memo.PossibleLink(e.Face, e.Color, other)
			if !ok {
				continue
			}
			ctx.SetEdgeLink(e.Face, e.Color, link)
			ctx.IncrementEdgeColorCount(e.Color)
			if fail := checkDisconnection(ctx, e, depth); fail != nil {
				return fail
			}
		}
	}

	if !face.IsInner() {
		for _, c := range cyc.Colors {
			if fail := checkCorners(ctx, face, c, depth); fail != nil {
				return fail
			}
		}
	}

	return nil
}
