// Package sink provides solution observers placed between Venn's success
// and the terminal predicate: Counting tallies solutions, Recording also
// captures their shape. Grounded on SPEC_FULL.md §6's Solution Sink
// contract and state/statistics.rs's CountingPredicate (see DESIGN.md).
package sink

import (
	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/engine"
	"github.com/jeremycarroll/venntriangles/geometry"
)

// Sink observes a completed solution without mutating search state.
type Sink interface {
	Observe(ctx *context.Context)
}

// Counting is both a Sink and an engine.Predicate: placed directly after
// Venn and before the terminal predicate, it increments Count on every Try
// call it sees (every Try call at this point in the program corresponds to
// exactly one freshly-completed solution, since Venn only reaches Success
// once all faces are assigned and the ring check passes) and always
// reports Success so the terminal predicate runs next.
type Counting struct {
	Count int
}

func (c *Counting) Observe(ctx *context.Context) { c.Count++ }

func (c *Counting) Try(ctx *context.Context, round int) engine.Result {
	c.Observe(ctx)
	return engine.Result{Status: engine.Success}
}

func (c *Counting) Retry(ctx *context.Context, round int, choice int) engine.Result {
	panic("sink: Counting never offers choices")
}

// Solution captures one completed assignment: each face's committed cycle
// and color-set, and the crossing-count matrix at completion.
type Solution struct {
	FaceCycles [geometry.NFaces]geometry.CycleID
	Crossings  geometry.CrossingCounts
}

// Recording is a Sink/engine.Predicate that copies out every completed
// solution's face-cycle assignment and crossing counts, for tests that need
// to inspect which diagrams were found rather than merely how many.
type Recording struct {
	Solutions []Solution
}

func (r *Recording) Observe(ctx *context.Context) {
	var s Solution
	for id := 0; id < geometry.NFaces; id++ {
		cycle, _ := ctx.Face(geometry.FaceID(id)).CurrentCycle()
		s.FaceCycles[id] = cycle
	}
	s.Crossings = ctx.Dyn.Snapshot()
	r.Solutions = append(r.Solutions, s)
}

func (r *Recording) Try(ctx *context.Context, round int) engine.Result {
	r.Observe(ctx)
	return engine.Result{Status: engine.Success}
}

func (r *Recording) Retry(ctx *context.Context, round int, choice int) engine.Result {
	panic("sink: Recording never offers choices")
}
