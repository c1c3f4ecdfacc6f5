package geometry

// EdgeRef identifies one directed curve segment: the edge of color Color on
// the boundary of face Face. Edges are never allocated as objects of their
// own; a (face, color) pair is the edge, and its MEMO-immutable attributes
// (reversed partner, candidate to-links) are looked up by this pair.
type EdgeRef struct {
	Face  FaceID
	Color Color
}

// Reversed returns the edge of the same color on the adjacent face across
// the curve, i.e. the other side of this boundary segment.
func (e EdgeRef) Reversed() EdgeRef {
	return EdgeRef{Face: e.Face.Adjacent(e.Color), Color: e.Color}
}

// VertexID indexes the sparse table of curve-crossing vertices, in
// [0, NPoints).
type VertexID int

// CurveLink records that an edge's curve continues at another edge, via the
// vertex where the two curves cross.
type CurveLink struct {
	Next   EdgeRef
	Vertex VertexID
}
