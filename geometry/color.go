package geometry

import "math/bits"

// Color identifies one of the NColors curves, in [0, NColors).
type Color uint8

// ColorSet is a bitset over [0, NColors) packed into one machine word; it
// fits every supported N (3..6) in a single uint64 with room to spare.
type ColorSet uint64

// FullColorSet contains every color in [0, NColors).
const FullColorSet ColorSet = (1 << NColors) - 1

// NewColorSet builds a ColorSet from the given colors.
func NewColorSet(colors ...Color) ColorSet {
	var s ColorSet
	for _, c := range colors {
		s = s.With(c)
	}
	return s
}

// Has reports whether c is a member of s.
func (s ColorSet) Has(c Color) bool {
	return s&(1<<c) != 0
}

// With returns s with c inserted.
func (s ColorSet) With(c Color) ColorSet {
	return s | (1 << c)
}

// Without returns s with c removed.
func (s ColorSet) Without(c Color) ColorSet {
	return s &^ (1 << c)
}

// Count returns the number of colors in s.
func (s ColorSet) Count() int {
	return bits.OnesCount64(uint64(s))
}

// Union returns s ∪ t.
func (s ColorSet) Union(t ColorSet) ColorSet {
	return s | t
}

// Intersect returns s ∩ t.
func (s ColorSet) Intersect(t ColorSet) ColorSet {
	return s & t
}

// Diff returns s \ t.
func (s ColorSet) Diff(t ColorSet) ColorSet {
	return s &^ t
}

// Colors returns the members of s in ascending order.
func (s ColorSet) Colors() []Color {
	out := make([]Color, 0, s.Count())
	for rest := s; rest != 0; {
		c := Color(bits.TrailingZeros64(uint64(rest)))
		out = append(out, c)
		rest &= rest - 1
	}
	return out
}

// FaceID identifies a face by the integer value of its ColorSet, in
// [0, NFaces).
type FaceID int

// ToFaceID reinterprets a ColorSet as the FaceID of the face it bounds.
func (s ColorSet) ToFaceID() FaceID {
	return FaceID(s)
}

// ColorSet reinterprets a FaceID as the ColorSet of colors inside it.
func (f FaceID) ColorSet() ColorSet {
	return ColorSet(f)
}

// Adjacent returns the face reached by crossing curve c from f.
func (f FaceID) Adjacent(c Color) FaceID {
	return FaceID(int(f) ^ (1 << c))
}

// IsOuter reports whether f is the outer face (empty ColorSet).
func (f FaceID) IsOuter() bool {
	return f == 0
}

// IsInner reports whether f is the inner face (full ColorSet).
func (f FaceID) IsInner() bool {
	return f == FullColorSet.ToFaceID()
}
