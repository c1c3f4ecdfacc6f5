package propagation

import (
	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/geometry"
)

// checkDisconnection walks start's curve forward along its to-links,
// counting edges until the walk returns to start (a closed loop) or reaches
// an edge that has not been linked yet (the curve is still incomplete, and
// there is nothing yet to check). If the loop closes, its length is compared
// against the total number of edges linked so far for start's color
// (SPEC_FULL.md §4.3.c): a loop shorter than that total means the curve
// split into more than one component, which the triangle constraint
// forbids. A loop exactly as long as the total means the curve is whole,
// and its color is marked completed for the enclosing PropagateCycleChoice
// call so step 9 can act on it.
func checkDisconnection(ctx *context.Context, start geometry.EdgeRef, depth int) *Failure {
	color := start.Color
	current := start
	length := uint64(0)

	for {
		de := ctx.Face(current.Face).Edges[current.Color]
		link, ok := de.Link()
		if !ok {
			return nil // curve not fully linked yet
		}
		length++
		current = link.Next
		if current == start {
			break
		}
		if length > ctx.Dyn.EdgeColorCount[color] {
			break // walked further than the known edge count without closing; incomplete elsewhere
		}
	}

	total := ctx.Dyn.EdgeColorCount[color]
	if current != start {
		return nil // did not close; rest of the curve is still unresolved
	}
	if length < total {
		return &Failure{Kind: DisconnectedCurve, Color: int(color), Seen: length, Total: total, Depth: depth}
	}
	if !ctx.ColorCompleted(color) {
		ctx.MarkColorCompleted(color)
	}
	return nil
}
