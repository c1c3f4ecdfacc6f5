// Package symmetry classifies a degree tuple — one integer per face
// bordering the inner face, read in color order — under the dihedral group
// on N elements, so the search only explores one representative per
// symmetry class. Grounded directly on
// _examples/original_source/src/symmetry/s6.rs's check_symmetry, generalized
// from that file's hard-coded N=6 permutation table to a tuple built
// programmatically for any supported N (see DESIGN.md).
package symmetry

import (
	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/geometry"
)

// Kind classifies a degree tuple's canonicality.
type Kind int

const (
	// Canonical: this tuple is the unique lexicographically-maximal image
	// among its dihedral orbit.
	Canonical Kind = iota
	// Equivocal: this tuple ties for lexicographically-maximal (the orbit
	// has a nontrivial stabilizer); still explored, but the result may be
	// produced again by a different starting tuple in the same orbit.
	Equivocal
	// NonCanonical: some other image in the orbit is strictly larger;
	// reject.
	NonCanonical
)

func (k Kind) String() string {
	switch k {
	case Canonical:
		return "Canonical"
	case Equivocal:
		return "Equivocal"
	case NonCanonical:
		return "NonCanonical"
	default:
		return "Unknown"
	}
}

// Check classifies tuple (length NColors) by generating its 2*NColors
// dihedral images (NColors rotations, NColors reflections), sorting them
// descending lexicographically, and comparing tuple to the maximum and
// second-best image.
func Check(tuple [geometry.NColors]int) Kind {
	images := dihedralImages(tuple)
	sortDescLex(images)

	max := images[0]
	second := images[1]

	if !equal(tuple, max) {
		return NonCanonical
	}
	if lessLex(second, max) {
		return Canonical
	}
	return Equivocal
}

// CheckSolution classifies the degree tuple of a completed search state's
// inner-face neighbors — the cycle length assigned to each of the N faces
// missing exactly one color, in color order — by delegating to Check. No
// reference implementation of this routine survives in the retrieved
// source (see DESIGN.md); this is built by direct analogy since the
// invariant tested is identical whether the tuple is a proposed choice
// (InnerFace) or a realized solution (Venn's final check).
func CheckSolution(ctx *context.Context) Kind {
	var tuple [geometry.NColors]int
	for i := 0; i < geometry.NColors; i++ {
		color := geometry.Color(i)
		face := geometry.FullColorSet.Without(color).ToFaceID()
		cycle, ok := ctx.Face(face).CurrentCycle()
		if !ok {
			return NonCanonical
		}
		tuple[i] = ctx.Memo.Cycle(cycle).Len()
	}
	return Check(tuple)
}

func dihedralImages(tuple [geometry.NColors]int) [][geometry.NColors]int {
	n := geometry.NColors
	images := make([][geometry.NColors]int, 0, 2*n)
	for r := 0; r < n; r++ {
		var rot [geometry.NColors]int
		for i := 0; i < n; i++ {
			rot[i] = tuple[(i+r)%n]
		}
		images = append(images, rot)

		var rev [geometry.NColors]int
		for i := 0; i < n; i++ {
			rev[i] = tuple[((r-i)%n+n)%n]
		}
		images = append(images, rev)
	}
	return images
}

func sortDescLex(images [][geometry.NColors]int) {
	for i := 1; i < len(images); i++ {
		for j := i; j > 0 && lessLex(images[j], images[j-1]); j-- {
			images[j], images[j-1] = images[j-1], images[j]
		}
	}
}

func lessLex(a, b [geometry.NColors]int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func equal(a, b [geometry.NColors]int) bool {
	return a == b
}
