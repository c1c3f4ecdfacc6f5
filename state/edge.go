// Package state holds the mutable, per-search counterparts of the
// immutable geometry/memo value types: a DynamicFace's possible-cycle set
// shrinks as propagation runs, a DynamicEdge's to-link is set once its
// curve is resolved, and every change to either flows through a trail so it
// can be undone in O(1).
package state

import "github.com/jeremycarroll/venntriangles/geometry"

// curveLinkSomeBit marks an encoded DynamicEdge.ToEncoded word as present;
// bits 0-5 hold the face id, bits 6-8 the color index, bits 9-17 the vertex
// id. This mirrors the reference's packed Option<CurveLink> encoding so
// that a single trail.RecordAndSet on one uint64 is enough to set or clear
// a to-link — introducing a Go sum type here would need a parallel trail
// entry kind purely to satisfy the type system, for no behavioral gain.
const curveLinkSomeBit = uint64(1) << 63

// DynamicEdge is the mutable state of one edge: whether, and to where, its
// curve has been linked onward.
type DynamicEdge struct {
	ToEncoded uint64
}

// EncodeCurveLink packs a CurveLink into the word format DynamicEdge
// stores.
func EncodeCurveLink(link geometry.CurveLink) uint64 {
	return curveLinkSomeBit |
		uint64(link.Next.Face) |
		uint64(link.Next.Color)<<6 |
		uint64(link.Vertex)<<9
}

// DecodeCurveLink unpacks a DynamicEdge.ToEncoded word, reporting ok=false
// if no link is set.
func DecodeCurveLink(word uint64) (geometry.CurveLink, bool) {
	if word&curveLinkSomeBit == 0 {
		return geometry.CurveLink{}, false
	}
	face := geometry.FaceID(word & 0x3F)
	color := geometry.Color((word >> 6) & 0x7)
	vertex := geometry.VertexID((word >> 9) & 0x1FF)
	return geometry.CurveLink{Next: geometry.EdgeRef{Face: face, Color: color}, Vertex: vertex}, true
}

// Link returns this edge's current to-link, if any.
func (e DynamicEdge) Link() (geometry.CurveLink, bool) {
	return DecodeCurveLink(e.ToEncoded)
}
