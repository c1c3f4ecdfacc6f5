package memo

import "github.com/jeremycarroll/venntriangles/geometry"

// edgeLink is one candidate continuation for an edge: which other edge of
// the same color the curve reaches next, and via which vertex, if that
// continuation is geometrically realizable.
type edgeLink struct {
	link geometry.CurveLink
	ok   bool
}

// buildVertices constructs the sparse vertex table and, alongside it, every
// edge's candidate to-links. A vertex exists at (outsideFace, primary,
// secondary) whenever primary != secondary and outsideFace contains
// neither — the two curves genuinely cross there, outside the rest of the
// arrangement. At that crossing the `primary` curve has two local
// edges — {outsideFace, primary} and {outsideFace|secondary, primary} — and
// the `secondary` curve likewise has two — {outsideFace, secondary} and
// {outsideFace|primary, secondary}; each pair continues the same curve
// through the crossing and is linked to the other.
func buildVertices() ([]geometry.Vertex, map[[3]int]geometry.VertexID, [][geometry.NColors][geometry.NColors]edgeLink) {
	var vertices []geometry.Vertex
	index := make(map[[3]int]geometry.VertexID)
	links := make([][geometry.NColors][geometry.NColors]edgeLink, geometry.NFaces)

	for outside := 0; outside < geometry.NFaces; outside++ {
		of := geometry.ColorSet(outside)
		for p := 0; p < geometry.NColors; p++ {
			primary := geometry.Color(p)
			if of.Has(primary) {
				continue
			}
			for s := 0; s < geometry.NColors; s++ {
				secondary := geometry.Color(s)
				if p == s || of.Has(secondary) {
					continue
				}

				f00 := of.ToFaceID()
				f01 := of.With(secondary).ToFaceID()
				f10 := of.With(primary).ToFaceID()

				id := geometry.VertexID(len(vertices))
				v := geometry.Vertex{
					ID:          id,
					OutsideFace: of,
					Primary:     primary,
					Secondary:   secondary,
					Incoming: [4]geometry.EdgeRef{
						{Face: f00, Color: primary},
						{Face: f01, Color: primary},
						{Face: f00, Color: secondary},
						{Face: f10, Color: secondary},
					},
				}
				vertices = append(vertices, v)
				index[[3]int{outside, p, s}] = id

				// curve 'primary' continues from f00 to f01 across this
				// crossing with 'secondary'; candidate indexed by the
				// other color (secondary).
				setLink(links, f00, f01, primary, secondary, id)
				// curve 'secondary' continues from f00 to f10 across this
				// crossing with 'primary'; candidate indexed by the other
				// color (primary).
				setLink(links, f00, f10, secondary, primary, id)
			}
		}
	}

	return vertices, index, links
}

// setLink records, for the curve of color 'shared' crossing 'other' at
// vertex v, that its edge on fa may continue to its edge on fb and vice
// versa — the candidate to-link is keyed by the other color crossed, since
// that is what the search commits to when it resolves which curve crosses
// next.
func setLink(links [][geometry.NColors][geometry.NColors]edgeLink, fa, fb geometry.FaceID, shared, other geometry.Color, v geometry.VertexID) {
	links[fa][shared][other] = edgeLink{link: geometry.CurveLink{Next: geometry.EdgeRef{Face: fb, Color: shared}, Vertex: v}, ok: true}
	links[fb][shared][other] = edgeLink{link: geometry.CurveLink{Next: geometry.EdgeRef{Face: fa, Color: shared}, Vertex: v}, ok: true}
}
