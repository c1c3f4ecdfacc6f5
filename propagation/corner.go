package propagation

import (
	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/geometry"
)

// maxCorners is the triangle constraint: a convex curve turns at most 3
// times.
const maxCorners = 3

// checkCorners walks color's curve starting from its edge on startFace and
// counts turning points (SPEC_FULL.md §4.3.b). It is a no-op for
// NColors <= 4, where the constraint is vacuous, and only ever walks edges
// that are already linked — it is called right after the vertex-resolution
// step that links them, so the walk stops (incomplete) the moment it
// reaches an edge that has not been linked yet rather than erroring.
//
// The reference implementation never finished this check (its
// corner_detection.rs is a TODO stub); this is built directly from the
// state-machine description in SPEC_FULL.md §4.3.b, with the per-vertex
// transition rule cross-checked against the working single-step logic kept
// in the reference's geometry/corner.rs.
func checkCorners(ctx *context.Context, startFace geometry.FaceID, color geometry.Color, depth int) *Failure {
	if geometry.NColors <= 4 {
		return nil
	}

	start := geometry.EdgeRef{Face: startFace, Color: color}
	current := start

	var out, passed geometry.ColorSet
	corners := 0

	for step := 0; step <= geometry.NColors+1; step++ {
		de := ctx.Face(current.Face).Edges[current.Color]
		link, ok := de.Link()
		if !ok {
			return nil // curve not fully linked yet; nothing to report
		}

		v := ctx.Memo.Vertices[link.Vertex]
		other := v.Secondary
		if current.Color == v.Secondary {
			other = v.Primary
		}

		if out.Has(other) {
			out = out.Without(other)
			if passed.Has(other) {
				passed = 0
				corners++
				if corners > maxCorners {
					return &Failure{Kind: TooManyCorners, Face: int(startFace), Color: int(color), Count: uint64(corners), Depth: depth}
				}
			}
		} else {
			out = out.With(other)
			passed = passed.With(other)
		}

		current = link.Next
		if current == start {
			return nil
		}
	}

	return nil
}
