// Package context composes the three things a running search needs: the
// shared, read-only *memo.Memo, an owned *state.Dynamic, and an owned
// *trail.Trail. It is the only package that mutates Dynamic directly; every
// write goes through a trail-wrapped method here so propagation, predicates
// and tests never have to remember to record an undo entry themselves.
package context

import (
	"github.com/jeremycarroll/venntriangles/geometry"
	"github.com/jeremycarroll/venntriangles/memo"
	"github.com/jeremycarroll/venntriangles/state"
	"github.com/jeremycarroll/venntriangles/trail"
)

// Context is one independent search: a borrowed Memo plus an owned Dynamic
// and Trail. Contexts never share Dynamic/Trail; running several searches
// concurrently means constructing one Context per goroutine, all borrowing
// the same *memo.Memo.
type Context struct {
	Memo  *memo.Memo
	Dyn   *state.Dynamic
	Trail *trail.Trail

	// InChoiceExpansion replaces the reference's depth==0 proxy (see
	// SPEC_FULL.md §4.3.d): it is true only while a predicate is inside a
	// top-level choice's propagation call, never during SetupCentralFace.
	InChoiceExpansion bool
}

// New constructs a Context over m with a fresh Dynamic and Trail, seeding
// every face's possible-cycle set from the MEMO's monotonicity-filtered
// initial sets.
func New(m *memo.Memo) *Context {
	ctx := &Context{
		Memo:  m,
		Dyn:   &state.Dynamic{},
		Trail: trail.New(),
	}
	for _, f := range m.Faces {
		df := &ctx.Dyn.Faces[f.ID]
		df.Possible = f.InitialPossible
		df.Count = uint64(f.InitialPossible.Count())
	}
	return ctx
}

// Face returns the dynamic state of the given face.
func (c *Context) Face(id geometry.FaceID) *state.DynamicFace {
	return &c.Dyn.Faces[id]
}

// RestrictPossible intersects face's possible set with allowed, recording
// only the words that change, and keeps Count in sync. It returns the new
// possible set.
func (c *Context) RestrictPossible(id geometry.FaceID, allowed geometry.CycleSet) geometry.CycleSet {
	f := c.Face(id)
	newSet := f.Possible.Intersect(allowed)
	if newSet != f.Possible {
		for i := range newSet {
			c.Trail.RecordAndSet(&f.Possible[i], newSet[i])
		}
		c.Trail.RecordAndSet(&f.Count, uint64(newSet.Count()))
	}
	return newSet
}

// SetCurrentCycle commits face to cycle.
func (c *Context) SetCurrentCycle(id geometry.FaceID, cycle geometry.CycleID) {
	f := c.Face(id)
	c.Trail.RecordAndSet(&f.CurrentCycleEncoded, uint64(cycle)+1)
}

// SetRing writes face's same-degree ring neighbors.
func (c *Context) SetRing(id geometry.FaceID, next, prev geometry.FaceID) {
	f := c.Face(id)
	c.Trail.RecordAndSet(&f.NextEncoded, uint64(next)+1)
	c.Trail.RecordAndSet(&f.PrevEncoded, uint64(prev)+1)
}

// SetEdgeLink records that edge (face, color)'s curve continues at link.
func (c *Context) SetEdgeLink(id geometry.FaceID, color geometry.Color, link geometry.CurveLink) {
	f := c.Face(id)
	c.Trail.RecordAndSet(&f.Edges[color].ToEncoded, state.EncodeCurveLink(link))
}

// MarkVertexSeen marks v as resolved.
func (c *Context) MarkVertexSeen(v geometry.VertexID) {
	word := &c.Dyn.VertexSeen[v/64]
	c.Trail.RecordAndSet(word, *word|(1<<(uint(v)%64)))
}

// IncrementCrossing bumps the crossing count between i and j and returns
// the new value.
func (c *Context) IncrementCrossing(i, j geometry.Color) uint64 {
	if i > j {
		i, j = j, i
	}
	idx := geometry.CrossingIndex(i, j)
	word := &c.Dyn.CrossingCounts[idx]
	c.Trail.RecordAndSet(word, *word+1)
	return *word
}

// IncrementEdgeColorCount bumps the linked-edge counter for color and
// returns the new value.
func (c *Context) IncrementEdgeColorCount(color geometry.Color) uint64 {
	word := &c.Dyn.EdgeColorCount[color]
	c.Trail.RecordAndSet(word, *word+1)
	return *word
}

// MarkColorCompleted marks color's curve as closed, both in the persistent
// ColorsCompleted set and the per-call accumulator used by the
// color-omission optimization (run only while InChoiceExpansion is set).
func (c *Context) MarkColorCompleted(color geometry.Color) {
	bit := uint64(1) << color
	word := &c.Dyn.ColorsCompleted
	c.Trail.RecordAndSet(word, *word|bit)
	call := &c.Dyn.ColorsCompletedThisCall
	c.Trail.RecordAndSet(call, *call|bit)
}

// ColorCompleted reports whether color's curve has already closed.
func (c *Context) ColorCompleted(color geometry.Color) bool {
	return c.Dyn.ColorsCompleted&(uint64(1)<<color) != 0
}

// ResetColorsCompletedThisCall clears the per-call accumulator; called at
// the start of every top-level PropagateCycleChoice invocation.
func (c *Context) ResetColorsCompletedThisCall() {
	call := &c.Dyn.ColorsCompletedThisCall
	c.Trail.RecordAndSet(call, 0)
}

// ColorsCompletedThisCall returns the colors completed since the last reset.
func (c *Context) ColorsCompletedThisCall() geometry.ColorSet {
	return geometry.ColorSet(c.Dyn.ColorsCompletedThisCall)
}

// SetDegreeSlot commits round r's degree choice.
func (c *Context) SetDegreeSlot(r int, degree int) {
	c.Trail.RecordAndSet(&c.Dyn.DegreeSlots[r], uint64(degree)+1)
}

// DegreeSlot returns round r's committed degree, if any.
func (c *Context) DegreeSlot(r int) (int, bool) {
	v := c.Dyn.DegreeSlots[r]
	if v == 0 {
		return 0, false
	}
	return int(v - 1), true
}
