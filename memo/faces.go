package memo

import "github.com/jeremycarroll/venntriangles/geometry"

// ringLink records, for one (face, cycle) pairing, the two same-degree
// neighbor faces reached by leaving the cycle at its two monotonicity
// transitions. These feed the dual-ring pointers written during
// propagation (SPEC_FULL.md §4.3 step 5) and checked by the final ring
// validation (§6 RingCheck): faces of equal degree k, once each is
// assigned a cycle, chain into a single cycle of length C(NColors, k).
type ringLink struct {
	next geometry.FaceID
	prev geometry.FaceID
}

// buildFaces constructs the immutable Face table and, for every (face,
// cycle) pair consistent with the monotonicity filter, the ring pointers
// used later by propagation. ringLinks is indexed [faceID][cycleID].
func buildFaces(cycles []geometry.Cycle) ([]geometry.Face, [][]ringLink) {
	faces := make([]geometry.Face, geometry.NFaces)
	links := make([][]ringLink, geometry.NFaces)

	for id := 0; id < geometry.NFaces; id++ {
		fid := geometry.FaceID(id)
		fs := fid.ColorSet()

		var adjacent [geometry.NColors]geometry.FaceID
		for c := 0; c < geometry.NColors; c++ {
			adjacent[c] = fid.Adjacent(geometry.Color(c))
		}

		var possible geometry.CycleSet
		faceLinks := make([]ringLink, len(cycles))
		for _, cyc := range cycles {
			if fid == 0 || fid == geometry.FullColorSet.ToFaceID() {
				if cyc.Len() == geometry.NColors {
					possible = possible.With(cyc.ID)
				}
				continue
			}
			in, out, ok := monotoneTransitions(cyc, fs)
			if !ok {
				continue
			}
			possible = possible.With(cyc.ID)
			faceLinks[cyc.ID] = ringLink{
				next: fid.ColorSet().Without(in.last).With(out.first).ToFaceID(),
				prev: fid.ColorSet().Without(out.last).With(in.first).ToFaceID(),
			}
		}

		faces[id] = geometry.Face{
			ID:              fid,
			Adjacent:        adjacent,
			InitialPossible: possible,
		}
		links[id] = faceLinks
	}

	return faces, links
}

type arc struct {
	first, last geometry.Color
}

// monotoneTransitions classifies each color in cyc by membership in fs
// (IN if present, OUT otherwise) and verifies the cyclic label sequence
// changes label exactly twice, i.e. IN colors form one contiguous cyclic
// arc and OUT colors form the other. Returns the IN arc, the OUT arc, and
// whether the cycle qualifies at all (it must contain at least one IN and
// one OUT color — a cycle entirely IN or entirely OUT never borders fs
// except in the outer/inner-face special case handled by the caller).
func monotoneTransitions(cyc geometry.Cycle, fs geometry.ColorSet) (arc, arc, bool) {
	n := cyc.Len()
	label := make([]bool, n) // true = IN
	for i := 0; i < n; i++ {
		label[i] = fs.Has(cyc.At(i))
	}

	transitions := 0
	for i := 0; i < n; i++ {
		if label[i] != label[(i+1)%n] {
			transitions++
		}
	}
	if transitions != 2 {
		return arc{}, arc{}, false
	}

	// find the single IN-run and the single OUT-run.
	start := 0
	for i := 0; i < n; i++ {
		if label[i] != label[(i-1+n)%n] {
			start = i
			break
		}
	}
	var inArc, outArc arc
	haveIn, haveOut := false, false
	i := start
	for count := 0; count < n; {
		runLabel := label[i]
		runStart := i
		for label[i] == runLabel {
			i = (i + 1) % n
			count++
			if count == n {
				break
			}
		}
		runEnd := (i - 1 + n) % n
		a := arc{first: cyc.At(runStart), last: cyc.At(runEnd)}
		if runLabel {
			inArc, haveIn = a, true
		} else {
			outArc, haveOut = a, true
		}
	}
	if !haveIn || !haveOut {
		return arc{}, arc{}, false
	}
	return inArc, outArc, true
}
