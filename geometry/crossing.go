package geometry

// MaxCrossings is the triangle constraint's upper bound on how many times
// any two curves may cross: 2*(NColors-1) crossings are geometrically
// possible between two triangles but monotone Venn diagrams of triangles
// never need more than 6 regardless of N.
const MaxCrossings = 6

// CrossingCounts is an NColors x NColors counter of how many times curve i
// crosses curve j in the current partial assignment. It is stored as a flat
// array rather than a nested one so that DynamicState can address individual
// counters by a single index for the trail, and rather than an upper-
// triangular packed array so that indexing is branch-free; only entries with
// i != j are ever used.
type CrossingCounts [NColors * NColors]uint8

// CrossingIndex returns the flat index of the (i, j) counter.
func CrossingIndex(i, j Color) int {
	return int(i)*NColors + int(j)
}

// Get returns the crossing count between colors i and j (symmetric).
func (c CrossingCounts) Get(i, j Color) uint8 {
	if i > j {
		i, j = j, i
	}
	return c[CrossingIndex(i, j)]
}
