package state

import "github.com/jeremycarroll/venntriangles/geometry"

// Dynamic is the complete mutable state of one search: every face's live
// cycle set and edges, the crossing-count matrix, which vertices have
// already been resolved, and how many edges of each color have been linked
// so far. Every field that participates in backtracking is stored as
// uint64 words (even where a narrower type would do, e.g. CrossingCounts)
// so that trail.Trail.RecordAndSet — which only knows how to undo a single
// *uint64 — can address any of them directly.
//
// A Dynamic is owned by exactly one Context for the Context's lifetime; it
// is never shared or relocated, so the raw pointers context's trail-wrapped
// mutators take into its fields stay valid.
type Dynamic struct {
	Faces [geometry.NFaces]DynamicFace

	// CrossingCounts[i*NColors+j] counts crossings between colors i and j
	// (only i<j entries are meaningful; see geometry.CrossingIndex).
	CrossingCounts [geometry.NColors * geometry.NColors]uint64

	// VertexSeen is a bitset over [0, NPoints): has this crossing already
	// been resolved (crossing count bumped, edges linked)?
	VertexSeen [geometry.NVertexWords]uint64

	// EdgeColorCount[c] counts how many edges of color c have been linked
	// so far, for the disconnected-curve check.
	EdgeColorCount [geometry.NColors]uint64

	// ColorsCompleted is a ColorSet (packed as one word) of colors whose
	// curve has closed into a single component of the expected length.
	ColorsCompleted uint64

	// ColorsCompletedThisCall accumulates which colors completed during
	// the current top-level PropagateCycleChoice call, for the
	// color-omission optimization gated by InChoiceExpansion (SPEC_FULL.md
	// §4.3 step 9).
	ColorsCompletedThisCall uint64

	// DegreeSlots[r] is 0 when round r's degree choice is unset, or
	// degree+1 once InnerFace has committed a value to it (SPEC_FULL.md
	// §4.5's InnerFace predicate). Trail-recorded like everything else
	// here, since backtracking across InnerFace's Choices(N-2) must undo
	// it exactly like any other committed value.
	DegreeSlots [geometry.NColors]uint64
}

// VertexSeenHas reports whether vertex v has already been resolved.
func (d *Dynamic) VertexSeenHas(v geometry.VertexID) bool {
	return d.VertexSeen[v/64]&(1<<(uint(v)%64)) != 0
}

// CrossingCount returns the crossing count between colors i and j.
func (d *Dynamic) CrossingCount(i, j geometry.Color) uint64 {
	if i > j {
		i, j = j, i
	}
	return d.CrossingCounts[geometry.CrossingIndex(i, j)]
}

// Snapshot converts the live crossing-count matrix into the immutable,
// narrower geometry.CrossingCounts shape for external consumers (sinks,
// diagnostics).
func (d *Dynamic) Snapshot() geometry.CrossingCounts {
	var out geometry.CrossingCounts
	for i, v := range d.CrossingCounts {
		out[i] = uint8(v)
	}
	return out
}
