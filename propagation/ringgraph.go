package propagation

import "github.com/jeremycarroll/venntriangles/geometry"

// ringGraph is a minimal directed graph over geometry.FaceID used only by
// the final ring check. It is a purpose-built replacement for the
// teacher's generic core.Graph + dfs.DetectCycles pair: this module's only
// call site (validateLevel, below) ever adds one outgoing edge per vertex
// (a face's Next pointer) and asks whether the result is a single simple
// cycle, so the generic machinery's weighted/undirected/mixed-edge
// handling, vertex and edge CRUD, cloning, and topological sort had no
// Venn-domain caller and were dropped rather than carried as dead code
// (see DESIGN.md).
type ringGraph struct {
	vertices []geometry.FaceID
	next     map[geometry.FaceID]geometry.FaceID
}

func newRingGraph() *ringGraph {
	return &ringGraph{next: make(map[geometry.FaceID]geometry.FaceID)}
}

func (g *ringGraph) addVertex(id geometry.FaceID) {
	g.vertices = append(g.vertices, id)
}

func (g *ringGraph) addEdge(from, to geometry.FaceID) {
	g.next[from] = to
}

// ringColor tracks DFS visitation state, adapted from the teacher's
// white/gray/black marking scheme for cycle detection.
type ringColor int

const (
	ringWhite ringColor = iota
	ringGray
	ringBlack
)

// detectCycles enumerates the simple cycles in g via depth-first search
// with back-edge detection, the same idea as the teacher's
// dfs.DetectCycles trimmed to what a single-outgoing-edge-per-vertex graph
// needs: no neighbor list, no self-loop or undirected special-casing, no
// canonical-rotation dedup (every vertex belongs to at most one cycle here,
// so no duplicate discovery is possible).
func (g *ringGraph) detectCycles() [][]geometry.FaceID {
	state := make(map[geometry.FaceID]ringColor, len(g.vertices))
	var path []geometry.FaceID
	var cycles [][]geometry.FaceID

	var visit func(id geometry.FaceID)
	visit = func(id geometry.FaceID) {
		state[id] = ringGray
		path = append(path, id)

		if next, ok := g.next[id]; ok {
			switch state[next] {
			case ringWhite:
				visit(next)
			case ringGray:
				idx := indexOfFace(path, next)
				cycles = append(cycles, append([]geometry.FaceID(nil), path[idx:]...))
			}
		}

		path = path[:len(path)-1]
		state[id] = ringBlack
	}

	for _, v := range g.vertices {
		if state[v] == ringWhite {
			visit(v)
		}
	}

	return cycles
}

func indexOfFace(path []geometry.FaceID, id geometry.FaceID) int {
	for i, v := range path {
		if v == id {
			return i
		}
	}
	return -1
}
