package memo

import "github.com/jeremycarroll/venntriangles/geometry"

// directedEdge is an ordered pair of colors: the curve crossed leaving color
// a's position for color b's, within some cycle.
type directedEdge struct{ a, b geometry.Color }

// lookup holds the cycle-classification CycleSets used by propagation:
// same/opposite direction at a given cycle position, and the per-color and
// per-color-pair omission sets.
type lookup struct {
	// sameDirection[cycleID][pos] = cycles sharing the directed edge at pos.
	sameDirection [][]geometry.CycleSet
	// oppositeDirection[cycleID][pos] = cycles with the reversed directed edge.
	oppositeDirection [][]geometry.CycleSet
	// omittingColor[c] = cycles that do not contain color c.
	omittingColor []geometry.CycleSet
	// omittingPair[i][j] = cycles containing neither directed edge i->j nor j->i.
	omittingPair [][]geometry.CycleSet
	// byLength[len] = cycles of that length, len in [3, NColors].
	byLength []geometry.CycleSet
}

func buildLookup(cycles []geometry.Cycle) *lookup {
	all := allCycleSet(len(cycles))

	edgeCycles := make(map[directedEdge]geometry.CycleSet)
	for _, c := range cycles {
		for i := 0; i < c.Len(); i++ {
			a, b := c.At(i), c.At(i+1)
			key := directedEdge{a, b}
			edgeCycles[key] = edgeCycles[key].With(c.ID)
		}
	}

	l := &lookup{
		sameDirection:     make([][]geometry.CycleSet, len(cycles)),
		oppositeDirection: make([][]geometry.CycleSet, len(cycles)),
		omittingColor:     make([]geometry.CycleSet, geometry.NColors),
		omittingPair:      make([][]geometry.CycleSet, geometry.NColors),
	}

	for _, c := range cycles {
		l.sameDirection[c.ID] = make([]geometry.CycleSet, c.Len())
		l.oppositeDirection[c.ID] = make([]geometry.CycleSet, c.Len())
		for i := 0; i < c.Len(); i++ {
			a, b := c.At(i), c.At(i+1)
			l.sameDirection[c.ID][i] = edgeCycles[directedEdge{a, b}]
			l.oppositeDirection[c.ID][i] = edgeCycles[directedEdge{b, a}]
		}
	}

	for c := geometry.Color(0); int(c) < geometry.NColors; c++ {
		var omit geometry.CycleSet
		for _, cyc := range cycles {
			if !cyc.Set.Has(c) {
				omit = omit.With(cyc.ID)
			}
		}
		l.omittingColor[c] = omit
	}

	for i := geometry.Color(0); int(i) < geometry.NColors; i++ {
		l.omittingPair[i] = make([]geometry.CycleSet, geometry.NColors)
		for j := geometry.Color(0); int(j) < geometry.NColors; j++ {
			if i == j {
				continue
			}
			both := edgeCycles[directedEdge{i, j}].Union(edgeCycles[directedEdge{j, i}])
			l.omittingPair[i][j] = all.Diff(both)
		}
	}

	l.byLength = make([]geometry.CycleSet, geometry.NColors+1)
	for _, c := range cycles {
		l.byLength[c.Len()] = l.byLength[c.Len()].With(c.ID)
	}

	return l
}

func allCycleSet(n int) geometry.CycleSet {
	var s geometry.CycleSet
	for i := 0; i < n; i++ {
		s = s.With(geometry.CycleID(i))
	}
	return s
}

// SameDirection returns the cycles that traverse the same directed edge as
// cycle c at position pos.
func (l *lookup) SameDirection(c geometry.CycleID, pos int) geometry.CycleSet {
	return l.sameDirection[c][pos%len(l.sameDirection[c])]
}

// OppositeDirection returns the cycles that traverse the reverse of the
// directed edge cycle c has at position pos.
func (l *lookup) OppositeDirection(c geometry.CycleID, pos int) geometry.CycleSet {
	return l.oppositeDirection[c][pos%len(l.oppositeDirection[c])]
}

// CyclesOmitting returns the cycles that do not contain color c.
func (l *lookup) CyclesOmitting(c geometry.Color) geometry.CycleSet {
	return l.omittingColor[c]
}

// CyclesOmittingPair returns the cycles containing neither directed edge
// i->j nor j->i.
func (l *lookup) CyclesOmittingPair(i, j geometry.Color) geometry.CycleSet {
	return l.omittingPair[i][j]
}

// CyclesOfLength returns the cycles with exactly the given length.
func (l *lookup) CyclesOfLength(length int) geometry.CycleSet {
	if length < 0 || length >= len(l.byLength) {
		return geometry.CycleSet{}
	}
	return l.byLength[length]
}
