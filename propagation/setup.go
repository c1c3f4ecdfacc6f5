package propagation

import (
	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/geometry"
)

// SetupCentralFace fixes the inner face to the last full-length cycle in the
// MEMO's enumeration order (colors 0, NColors-1, ..., 1) and restricts each of the NColors
// faces missing exactly one color to cycles of the length the caller
// declared for it in degrees, then propagates both. ctx.InChoiceExpansion
// must be false for the duration of this call (SPEC_FULL.md §4.3.d): the
// degree-sequence assignment it performs is bookkeeping a predicate does
// once per candidate solution, not a choice worth the color-omission
// shortcut.
func SetupCentralFace(ctx *context.Context, degrees [geometry.NColors]int) *Failure {
	inner := geometry.FullColorSet.ToFaceID()
	innerCycle := geometry.CycleID(len(ctx.Memo.Cycles) - 1)
	if ctx.Memo.Cycles[innerCycle].Len() != geometry.NColors {
		return &Failure{Kind: NoMatchingCycles, Face: int(inner)}
	}
	if fail := PropagateCycleChoice(ctx, inner, innerCycle, 0); fail != nil {
		return fail
	}

	for i := 0; i < geometry.NColors; i++ {
		color := geometry.Color(i)
		face := geometry.FullColorSet.Without(color).ToFaceID()
		allowed := ctx.Memo.CyclesOfLength(degrees[i])
		if fail := RestrictFaceCycles(ctx, face, allowed, 0); fail != nil {
			return fail
		}
	}

	return nil
}

// ascendingCycle finds the cycle visiting every color in order
// 0, 1, ..., NColors-1: one of the (NColors-1)! full-length cycles, and the
// only one in ascending order, since CanonicalRotation already starts every
// cycle at its smallest color.
func ascendingCycle(ctx *context.Context) (geometry.CycleID, bool) {
	for _, c := range ctx.Memo.Cycles {
		if c.Len() != geometry.NColors {
			continue
		}
		match := true
		for i, col := range c.Colors {
			if int(col) != i {
				match = false
				break
			}
		}
		if match {
			return c.ID, true
		}
	}
	return 0, false
}
