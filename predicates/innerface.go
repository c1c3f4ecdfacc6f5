package predicates

import (
	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/engine"
	"github.com/jeremycarroll/venntriangles/geometry"
	"github.com/jeremycarroll/venntriangles/propagation"
	"github.com/jeremycarroll/venntriangles/symmetry"
)

// InnerFace enumerates canonical degree sequences for the NColors faces
// bordering the inner face: for rounds 0..NColors-1 it offers a choice of
// cycle length in [3, NColors] for that round's slot; at round NColors it
// validates the completed tuple (correct total, dihedral canonicality) and,
// if it passes, calls SetupCentralFace to commit it. SPEC_FULL.md §4.5.
type InnerFace struct{}

func (InnerFace) Try(ctx *context.Context, round int) engine.Result {
	if round < geometry.NColors {
		return engine.Result{Status: engine.Choices, N: geometry.NColors - 2}
	}

	var tuple [geometry.NColors]int
	sum := 0
	for i := 0; i < geometry.NColors; i++ {
		degree, ok := ctx.DegreeSlot(i)
		if !ok {
			panic("predicates: InnerFace reached round NColors with an unset slot")
		}
		tuple[i] = degree
		sum += degree
	}
	if sum != geometry.InnerRingDegreeSum {
		return engine.Result{Status: engine.Failure}
	}
	if symmetry.Check(tuple) == symmetry.NonCanonical {
		return engine.Result{Status: engine.Failure}
	}
	if fail := propagation.SetupCentralFace(ctx, tuple); fail != nil {
		return engine.Result{Status: engine.Failure}
	}
	return engine.Result{Status: engine.Success}
}

func (InnerFace) Retry(ctx *context.Context, round int, choice int) engine.Result {
	degree := geometry.NColors - choice
	ctx.SetDegreeSlot(round, degree)
	return engine.Result{Status: engine.SuccessSameRound}
}
