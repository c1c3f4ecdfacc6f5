package predicates

import (
	"math"

	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/engine"
	"github.com/jeremycarroll/venntriangles/geometry"
	"github.com/jeremycarroll/venntriangles/propagation"
)

// Venn is the main search predicate: each round picks the unassigned face
// with the smallest possible-cycle count ("smallest domain first"), offers
// one choice per remaining cycle, and propagates whichever one is tried.
// When no face remains unassigned it runs the final ring check and
// succeeds. SPEC_FULL.md §4.5.
//
// The chosen face and bitset cursor for a given round are NOT trail-
// recorded: they are recomputed fresh by Try every time a round is entered
// (the driver has already rewound the trail to this frame's checkpoint by
// then, so a fresh smallest-domain scan always reflects the right state),
// and the cursor only ever advances forward within the lifetime of one
// Choices/Retry sequence for that round — exactly the "cursor, not a
// committed value" distinction SPEC_FULL.md §4.5 draws. Because Venn
// recurses across many concurrently-live stack frames (an outer round can
// sit in choice mode while an inner round is active), one slot per round is
// still required; a single shared field would let an inner round's retry
// clobber an outer round's in-progress cursor.
type Venn struct {
	faceAtRound   [geometry.NFaces]geometry.FaceID
	cursorAtRound [geometry.NFaces]geometry.CycleID
}

func (v *Venn) Try(ctx *context.Context, round int) engine.Result {
	face, count, ok := smallestDomainFace(ctx)
	if !ok {
		if fail := propagation.ValidateFaceCycles(ctx); fail != nil {
			return engine.Result{Status: engine.Failure}
		}
		return engine.Result{Status: engine.Success}
	}

	v.faceAtRound[round] = face
	v.cursorAtRound[round] = 0
	return engine.Result{Status: engine.Choices, N: int(count)}
}

func (v *Venn) Retry(ctx *context.Context, round int, choice int) engine.Result {
	face := v.faceAtRound[round]
	cycle, ok := ctx.Face(face).Possible.NextFrom(v.cursorAtRound[round])
	if !ok {
		return engine.Result{Status: engine.Failure}
	}
	v.cursorAtRound[round] = cycle + 1

	ctx.InChoiceExpansion = true
	fail := propagation.PropagateCycleChoice(ctx, face, cycle, 0)
	ctx.InChoiceExpansion = false
	if fail != nil {
		return engine.Result{Status: engine.Failure}
	}
	return engine.Result{Status: engine.SuccessSameRound}
}

// smallestDomainFace returns the unassigned face with the fewest remaining
// possible cycles, and its count, or ok=false if every face is assigned.
func smallestDomainFace(ctx *context.Context) (geometry.FaceID, uint64, bool) {
	best := geometry.FaceID(-1)
	bestCount := uint64(math.MaxUint64)
	for id := 0; id < geometry.NFaces; id++ {
		face := geometry.FaceID(id)
		if _, assigned := ctx.Face(face).CurrentCycle(); assigned {
			continue
		}
		count := ctx.Face(face).Count
		if count < bestCount {
			bestCount = count
			best = face
		}
	}
	if best == -1 {
		return 0, 0, false
	}
	return best, bestCount, true
}
