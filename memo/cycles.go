package memo

import (
	"sort"

	"github.com/jeremycarroll/venntriangles/geometry"
)

// buildCycles enumerates every canonical facial cycle over NColors colors:
// for each length L in 3..NColors, for each subset of L colors, for each
// distinct cyclic arrangement of that subset (rotations identified, but not
// reflections — a curve has a direction), canonicalized to start at its
// smallest color. Cycles are ordered by (max color used, length, then
// lexicographic by color sequence), which keeps short, low-numbered cycles
// first and matches the table CycleID assignment the rest of the package
// assumes.
func buildCycles() []geometry.Cycle {
	var all [][]geometry.Color
	colors := make([]geometry.Color, geometry.NColors)
	for i := range colors {
		colors[i] = geometry.Color(i)
	}

	for length := 3; length <= geometry.NColors; length++ {
		for _, subset := range combinations(colors, length) {
			seen := make(map[string]bool)
			permute(subset, func(p []geometry.Color) {
				canon := geometry.CanonicalRotation(p)
				key := sigOf(canon)
				if seen[key] {
					return
				}
				seen[key] = true
				cp := append([]geometry.Color(nil), canon...)
				all = append(all, cp)
			})
		}
	}

	sort.Slice(all, func(i, j int) bool {
		return cycleLess(all[i], all[j])
	})

	cycles := make([]geometry.Cycle, len(all))
	for i, colors := range all {
		var set geometry.ColorSet
		for _, c := range colors {
			set = set.With(c)
		}
		cycles[i] = geometry.Cycle{
			ID:     geometry.CycleID(i),
			Colors: colors,
			Set:    set,
		}
	}
	return cycles
}

func cycleLess(a, b []geometry.Color) bool {
	maxA, maxB := maxColor(a), maxColor(b)
	if maxA != maxB {
		return maxA < maxB
	}
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func maxColor(colors []geometry.Color) geometry.Color {
	m := colors[0]
	for _, c := range colors[1:] {
		if c > m {
			m = c
		}
	}
	return m
}

func sigOf(colors []geometry.Color) string {
	b := make([]byte, len(colors))
	for i, c := range colors {
		b[i] = byte(c)
	}
	return string(b)
}

// combinations returns every length-k subset of items, preserving order.
func combinations(items []geometry.Color, k int) [][]geometry.Color {
	var out [][]geometry.Color
	n := len(items)
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		subset := make([]geometry.Color, k)
		for i, ix := range idx {
			subset[i] = items[ix]
		}
		out = append(out, subset)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}

// permute calls fn with every permutation of items, via Heap's algorithm.
func permute(items []geometry.Color, fn func([]geometry.Color)) {
	n := len(items)
	a := append([]geometry.Color(nil), items...)
	var helper func(k int)
	helper = func(k int) {
		if k == 1 {
			fn(a)
			return
		}
		for i := 0; i < k; i++ {
			helper(k - 1)
			if k%2 == 0 {
				a[i], a[k-1] = a[k-1], a[i]
			} else {
				a[0], a[k-1] = a[k-1], a[0]
			}
		}
	}
	helper(n)
}
