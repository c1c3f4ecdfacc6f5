package propagation

import (
	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/geometry"
)

// ValidateFaceCycles is the final ring check run once every face has been
// assigned a cycle: for every degree level 1..NColors-1, the faces of that
// popcount must form exactly one ring under their Next pointers, of length
// C(NColors, level) (SPEC_FULL.md §6, RingCheck contract). It builds a ringGraph
// of the Next edges at that level and confirms via detectCycles that the
// graph decomposes into exactly one simple cycle touching every vertex.
func ValidateFaceCycles(ctx *context.Context) *Failure {
	for level := 1; level < geometry.NColors; level++ {
		if fail := validateLevel(ctx, level); fail != nil {
			return fail
		}
	}
	return nil
}

func validateLevel(ctx *context.Context, level int) *Failure {
	g := newRingGraph()

	count := 0
	for id := 0; id < geometry.NFaces; id++ {
		face := geometry.FaceID(id)
		if face.ColorSet().Count() != level {
			continue
		}
		count++
		g.addVertex(face)
		next, ok := ctx.Face(face).NextFace()
		if !ok {
			return &Failure{Kind: DisconnectedCurve, Face: id, Color: level}
		}
		g.addEdge(face, next)
	}

	expected := ctx.Memo.Binomial(geometry.NColors, level)
	if count != expected {
		return &Failure{Kind: DisconnectedCurve, Color: level, Seen: uint64(count), Total: uint64(expected)}
	}

	cycles := g.detectCycles()
	var ringLen int
	if len(cycles) == 1 {
		ringLen = len(cycles[0])
	}
	if len(cycles) != 1 || ringLen != expected {
		return &Failure{Kind: DisconnectedCurve, Color: level, Seen: uint64(ringLen), Total: uint64(expected)}
	}

	return nil
}
