package propagation

import (
	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/geometry"
)

// MaxDepth bounds PropagateCycleChoice's recursion; exceeding it indicates
// a runaway cascade (a bug), not a legitimately deep search.
const MaxDepth = 128

// PropagateCycleChoice fixes face to cycle and propagates every consequence
// of that choice: vertex resolution and curve-health checks, dual-ring
// pointers, and the three families of neighbor-restriction (edge-adjacency,
// non-adjacent-color, non-vertex-adjacent), plus — only while
// ctx.InChoiceExpansion — the completed-curve color-omission optimization.
// See SPEC_FULL.md §4.3 for the numbered steps this mirrors.
func PropagateCycleChoice(ctx *context.Context, face geometry.FaceID, cycle geometry.CycleID, depth int) *Failure {
	if depth > MaxDepth {
		return &Failure{Kind: DepthExceeded, Face: int(face), Cycle: int(cycle), Depth: depth}
	}
	if depth == 0 {
		ctx.ResetColorsCompletedThisCall()
	}

	cyc := ctx.Memo.Cycle(cycle)
	singleton := geometry.CycleSet{}.With(cycle)
	ctx.RestrictPossible(face, singleton)
	ctx.SetCurrentCycle(face, cycle)

	// Step 4: vertex resolution, crossing-limit and curve-health checks.
	if fail := resolveVertices(ctx, face, cyc, depth); fail != nil {
		return fail
	}

	// Step 5: dual-ring pointers.
	ctx.SetRing(face, ctx.Memo.NextFace(face, cycle), ctx.Memo.PrevFace(face, cycle))

	// Step 6: edge-adjacency propagation.
	for i := 0; i < cyc.Len(); i++ {
		a, b := cyc.At(i), cyc.At(i+1)
		fa := face.Adjacent(a)
		fab := fa.Adjacent(b)
		if fail := RestrictFaceCycles(ctx, fab, ctx.Memo.SameDirection(cycle, i), depth+1); fail != nil {
			return fail
		}
		if fail := RestrictFaceCycles(ctx, fa, ctx.Memo.OppositeDirection(cycle, i), depth+1); fail != nil {
			return fail
		}
	}

	// Step 7: non-adjacent-color propagation.
	for c := 0; c < geometry.NColors; c++ {
		color := geometry.Color(c)
		if cyc.Set.Has(color) {
			continue
		}
		if fail := RestrictFaceCycles(ctx, face.Adjacent(color), ctx.Memo.CyclesOmitting(color), depth+1); fail != nil {
			return fail
		}
	}

	// Step 8: non-vertex-adjacent propagation.
	for i := 0; i < geometry.NColors; i++ {
		for j := i + 1; j < geometry.NColors; j++ {
			ci, cj := geometry.Color(i), geometry.Color(j)
			if hasDirectedEdge(cyc, ci, cj) {
				continue
			}
			target := face.Adjacent(ci).Adjacent(cj)
			if fail := RestrictFaceCycles(ctx, target, ctx.Memo.CyclesOmittingPair(ci, cj), depth+1); fail != nil {
				return fail
			}
		}
	}

	// Step 9: completed-curve color-omission optimization, gated by
	// ctx.InChoiceExpansion rather than depth==0 (SPEC_FULL.md §4.3.d).
	if ctx.InChoiceExpansion {
		for _, color := range ctx.ColorsCompletedThisCall().Colors() {
			if fail := applyColorOmission(ctx, color, depth); fail != nil {
				return fail
			}
		}
	}

	return nil
}

func hasDirectedEdge(cyc geometry.Cycle, i, j geometry.Color) bool {
	for k := 0; k < cyc.Len(); k++ {
		a, b := cyc.At(k), cyc.At(k+1)
		if (a == i && b == j) || (a == j && b == i) {
			return true
		}
	}
	return false
}

// applyColorOmission restricts every face that has not yet touched color to
// cycles omitting it, since color's curve has already closed.
func applyColorOmission(ctx *context.Context, color geometry.Color, depth int) *Failure {
	omitting := ctx.Memo.CyclesOmitting(color)
	for id := 0; id < geometry.NFaces; id++ {
		face := geometry.FaceID(id)
		if _, assigned := ctx.Face(face).CurrentCycle(); assigned {
			continue
		}
		if ctx.Face(face).Edges[color].ToEncoded != 0 {
			continue // already touched color's curve; leave its constraints to the checks that ran there
		}
		if fail := RestrictFaceCycles(ctx, face, omitting, depth+1); fail != nil {
			return fail
		}
	}
	return nil
}

// RestrictFaceCycles intersects face's possible set with allowed. If face
// is already committed, it must already satisfy allowed. If the
// intersection collapses to a single cycle, that cycle is cascaded into via
// PropagateCycleChoice.
func RestrictFaceCycles(ctx *context.Context, face geometry.FaceID, allowed geometry.CycleSet, depth int) *Failure {
	if cycle, ok := ctx.Face(face).CurrentCycle(); ok {
		if !allowed.Has(cycle) {
			return &Failure{Kind: ConflictingConstraints, Face: int(face), Cycle: int(cycle), Depth: depth}
		}
		return nil
	}

	newSet := ctx.RestrictPossible(face, allowed)
	if newSet.Empty() {
		return &Failure{Kind: NoMatchingCycles, Face: int(face), Depth: depth}
	}
	if newSet.Count() == 1 {
		cycle := newSet.IDs()[0]
		return PropagateCycleChoice(ctx, face, cycle, depth+1)
	}
	return nil
}
