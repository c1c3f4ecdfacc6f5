package geometry

import "math/bits"

// CycleID indexes the dense array of canonical facial cycles, in [0, NCycles).
type CycleID int

// Cycle is a canonical cyclic sequence of 3..NColors distinct colors,
// rotated so the smallest color present comes first. Two color sequences
// that are rotations of each other produce the identical Cycle value.
type Cycle struct {
	ID     CycleID
	Colors []Color
	Set    ColorSet
}

// Len returns the number of colors (and edges) in the cycle.
func (c Cycle) Len() int {
	return len(c.Colors)
}

// At returns the color at position i, wrapping modulo the cycle length.
func (c Cycle) At(i int) Color {
	n := len(c.Colors)
	return c.Colors[((i%n)+n)%n]
}

// CanonicalRotation rotates colors so that its smallest element is first,
// without otherwise reordering. It is the canonicalization every Cycle in
// the MEMO tables is built with, so that two callers who discover the same
// cyclic sequence from different starting edges always agree on one Cycle.
func CanonicalRotation(colors []Color) []Color {
	if len(colors) == 0 {
		return nil
	}
	minIdx := 0
	for i, c := range colors {
		if c < colors[minIdx] {
			minIdx = i
		}
	}
	out := make([]Color, len(colors))
	for i := range colors {
		out[i] = colors[(minIdx+i)%len(colors)]
	}
	return out
}

// CycleSet is a bitset over [0, NCycles) used for the immutable MEMO lookup
// tables (direction sets, omission sets, initial possible sets). It is a
// plain value type so MEMO tables can be built, compared and copied freely;
// the mutable, trail-tracked counterpart used by the live search lives on
// state.DynamicFace as a raw [NCycleWords]uint64, encoded the same way.
type CycleSet [NCycleWords]uint64

// Has reports whether id is a member of s.
func (s CycleSet) Has(id CycleID) bool {
	return s[id/64]&(1<<(uint(id)%64)) != 0
}

// With returns s with id inserted.
func (s CycleSet) With(id CycleID) CycleSet {
	s[id/64] |= 1 << (uint(id) % 64)
	return s
}

// Without returns s with id removed.
func (s CycleSet) Without(id CycleID) CycleSet {
	s[id/64] &^= 1 << (uint(id) % 64)
	return s
}

// Union returns s ∪ t.
func (s CycleSet) Union(t CycleSet) CycleSet {
	var out CycleSet
	for i := range s {
		out[i] = s[i] | t[i]
	}
	return out
}

// Intersect returns s ∩ t.
func (s CycleSet) Intersect(t CycleSet) CycleSet {
	var out CycleSet
	for i := range s {
		out[i] = s[i] & t[i]
	}
	return out
}

// Diff returns s \ t.
func (s CycleSet) Diff(t CycleSet) CycleSet {
	var out CycleSet
	for i := range s {
		out[i] = s[i] &^ t[i]
	}
	return out
}

// Empty reports whether s has no members.
func (s CycleSet) Empty() bool {
	for _, w := range s {
		if w != 0 {
			return false
		}
	}
	return true
}

// Count returns the population count of s.
func (s CycleSet) Count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// IDs returns the members of s in ascending order.
func (s CycleSet) IDs() []CycleID {
	out := make([]CycleID, 0, s.Count())
	for word := range s {
		w := s[word]
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			out = append(out, CycleID(word*64+bit))
			w &= w - 1
		}
	}
	return out
}

// NextFrom returns the smallest member of s that is >= from, and true, or
// (0, false) if none exists. Used by the Venn predicate to resume bitset
// iteration across retries via a cursor instead of rescanning from zero.
func (s CycleSet) NextFrom(from CycleID) (CycleID, bool) {
	word := int(from) / 64
	if word >= len(s) {
		return 0, false
	}
	// mask off bits below 'from' in the first word
	shift := uint(from) % 64
	w := s[word] &^ ((uint64(1) << shift) - 1)
	for {
		if w != 0 {
			bit := bits.TrailingZeros64(w)
			return CycleID(word*64 + bit), true
		}
		word++
		if word >= len(s) {
			return 0, false
		}
		w = s[word]
	}
}
