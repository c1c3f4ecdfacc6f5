package geometry

// Face is the immutable, precomputed description of one region of the
// arrangement, identified by the ColorSet of curves whose interior contains
// it. The face with the empty ColorSet is the outer face; the face with the
// full ColorSet is the inner face.
type Face struct {
	ID FaceID
	// Adjacent[c] is the face reached by crossing curve c.
	Adjacent [NColors]FaceID
	// InitialPossible is the CycleSet of facial cycles consistent with the
	// monotonicity constraint alone, before any search-time propagation.
	InitialPossible CycleSet
}

// ColorSet returns the colors inside the face.
func (f Face) ColorSet() ColorSet {
	return f.ID.ColorSet()
}

// Degree returns the number of colors bounding the face, i.e. the facial
// cycle length any assignment to this face must have.
func (f Face) Degree() int {
	return f.ColorSet().Count()
}

// IsOuter reports whether f is the outer face (empty ColorSet).
func (f Face) IsOuter() bool {
	return f.ID == 0
}

// IsInner reports whether f is the inner face (full ColorSet).
func (f Face) IsInner() bool {
	return f.ID == FullColorSet.ToFaceID()
}
