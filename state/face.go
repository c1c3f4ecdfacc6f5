package state

import "github.com/jeremycarroll/venntriangles/geometry"

// DynamicFace is the mutable state of one face across a search: its
// shrinking set of possible cycles, a cached population count, which cycle
// (if any) it has been committed to, its position in the same-degree ring,
// and its NColors edges.
type DynamicFace struct {
	// Possible is the live CycleSet, one uint64 word per geometry.CycleSet
	// word; trail.RecordAndSet takes the address of an individual word, so
	// shrinking the set only ever records the words that actually changed.
	Possible geometry.CycleSet
	// Count caches Possible.Count() so the smallest-domain-first heuristic
	// doesn't need to popcount every face's set on every round.
	Count uint64
	// CurrentCycleEncoded is 0 when unassigned, or CycleID+1 once committed.
	CurrentCycleEncoded uint64
	// NextEncoded/PrevEncoded are 0 when unset, or FaceID+1 once this face's
	// position in its same-degree ring has been computed.
	NextEncoded uint64
	PrevEncoded uint64

	Edges [geometry.NColors]DynamicEdge
}

// CurrentCycle returns the committed cycle, if any.
func (f *DynamicFace) CurrentCycle() (geometry.CycleID, bool) {
	if f.CurrentCycleEncoded == 0 {
		return 0, false
	}
	return geometry.CycleID(f.CurrentCycleEncoded - 1), true
}

// NextFace returns the ring-next face, if set.
func (f *DynamicFace) NextFace() (geometry.FaceID, bool) {
	if f.NextEncoded == 0 {
		return 0, false
	}
	return geometry.FaceID(f.NextEncoded - 1), true
}

// PrevFace returns the ring-previous face, if set.
func (f *DynamicFace) PrevFace() (geometry.FaceID, bool) {
	if f.PrevEncoded == 0 {
		return 0, false
	}
	return geometry.FaceID(f.PrevEncoded - 1), true
}
