// Package memo builds the immutable, precomputed tables the search engine
// reads from but never writes to: the canonical facial cycles, the face
// table (with its monotonicity-filtered initial possible-cycle sets and
// dual-ring pointers), the sparse crossing-vertex table, and the
// direction/omission CycleSet lookups propagation uses to restrict faces.
//
// Every table is sized for the single N the binary was built for
// (geometry.NColors); Build validates its argument against that constant
// rather than supporting multiple N in one process, since every other
// package's fixed-size arrays are already compiled for one N.
package memo

import (
	"log"

	"github.com/jeremycarroll/venntriangles/geometry"
)

// Memo bundles every immutable precomputed table the propagation engine
// consults. It is safe to share a single *Memo, by pointer, across any
// number of concurrently-running search contexts.
type Memo struct {
	Cycles   []geometry.Cycle
	Faces    []geometry.Face
	Vertices []geometry.Vertex

	ringLinks   [][]ringLink
	vertexIndex map[[3]int]geometry.VertexID
	edgeLinks   [][geometry.NColors][geometry.NColors]edgeLink
	lookup      *lookup
	binom       [binomSize][binomSize]int
}

// BuildOptions configures Build. The zero value is the default: silent.
type BuildOptions struct {
	// Verbose, when true, logs construction progress the way the reference
	// implementation's constructor does via eprintln! — here via the
	// standard library's log package, since nothing in the example pack
	// pulls in a structured-logging library (see DESIGN.md).
	Verbose bool
}

// Build constructs every MEMO table for n colors. n must equal
// geometry.NColors (the N this binary was built for); Build returns
// ErrUnsupportedN otherwise, rather than silently building tables for the
// wrong size.
func Build(n int, opts ...BuildOptions) (*Memo, error) {
	if n != geometry.NColors {
		return nil, ErrUnsupportedN
	}
	var o BuildOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	if o.Verbose {
		log.Printf("memo: building tables for N=%d", n)
	}

	cycles := buildCycles()
	if o.Verbose {
		log.Printf("memo: enumerated %d canonical cycles", len(cycles))
	}

	faces, ringLinks := buildFaces(cycles)
	if o.Verbose {
		log.Printf("memo: built %d faces", len(faces))
	}

	vertices, vertexIndex, edgeLinks := buildVertices()
	if o.Verbose {
		log.Printf("memo: built %d vertices (%.1f%% occupancy)", len(vertices),
			100*float64(len(vertices))/float64(geometry.NFaces*geometry.NColors*(geometry.NColors-1)))
	}

	lk := buildLookup(cycles)

	return &Memo{
		Cycles:      cycles,
		Faces:       faces,
		Vertices:    vertices,
		ringLinks:   ringLinks,
		vertexIndex: vertexIndex,
		edgeLinks:   edgeLinks,
		lookup:      lk,
		binom:       binomial(),
	}, nil
}

// Cycle returns the cycle with the given id.
func (m *Memo) Cycle(id geometry.CycleID) geometry.Cycle {
	return m.Cycles[id]
}

// Face returns the face with the given id.
func (m *Memo) Face(id geometry.FaceID) geometry.Face {
	return m.Faces[id]
}

// NextFace returns the same-degree neighbor face reached by leaving face's
// assigned cycle at its "next" monotonicity transition.
func (m *Memo) NextFace(face geometry.FaceID, cycle geometry.CycleID) geometry.FaceID {
	return m.ringLinks[face][cycle].next
}

// PrevFace returns the same-degree neighbor face reached by leaving face's
// assigned cycle at its "previous" monotonicity transition.
func (m *Memo) PrevFace(face geometry.FaceID, cycle geometry.CycleID) geometry.FaceID {
	return m.ringLinks[face][cycle].prev
}

// PossibleLink returns the candidate continuation of the edge (face, color)
// when the next curve it crosses is other, if that crossing is realizable.
func (m *Memo) PossibleLink(face geometry.FaceID, color, other geometry.Color) (geometry.CurveLink, bool) {
	e := m.edgeLinks[face][color][other]
	return e.link, e.ok
}

// VertexAt returns the vertex at (outsideFace, primary, secondary), if any.
func (m *Memo) VertexAt(outsideFace geometry.ColorSet, primary, secondary geometry.Color) (geometry.VertexID, bool) {
	id, ok := m.vertexIndex[[3]int{int(outsideFace), int(primary), int(secondary)}]
	return id, ok
}

// SameDirection returns the cycles sharing cycle c's directed edge at pos.
func (m *Memo) SameDirection(c geometry.CycleID, pos int) geometry.CycleSet {
	return m.lookup.SameDirection(c, pos)
}

// OppositeDirection returns the cycles with the reverse of cycle c's
// directed edge at pos.
func (m *Memo) OppositeDirection(c geometry.CycleID, pos int) geometry.CycleSet {
	return m.lookup.OppositeDirection(c, pos)
}

// CyclesOmitting returns the cycles that do not contain color c.
func (m *Memo) CyclesOmitting(c geometry.Color) geometry.CycleSet {
	return m.lookup.CyclesOmitting(c)
}

// CyclesOmittingPair returns the cycles containing neither directed edge
// i->j nor j->i.
func (m *Memo) CyclesOmittingPair(i, j geometry.Color) geometry.CycleSet {
	return m.lookup.CyclesOmittingPair(i, j)
}

// CyclesOfLength returns the cycles with exactly the given length.
func (m *Memo) CyclesOfLength(length int) geometry.CycleSet {
	return m.lookup.CyclesOfLength(length)
}

// Binomial returns C(n, k), or 0 if out of range.
func (m *Memo) Binomial(n, k int) int {
	if n < 0 || n >= binomSize || k < 0 || k > n {
		return 0
	}
	return m.binom[n][k]
}
