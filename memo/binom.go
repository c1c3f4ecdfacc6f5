package memo

import "github.com/jeremycarroll/venntriangles/geometry"

// binomSize is one more than NColors, so the Pascal's-triangle table can
// hold C(n, k) for n up to and including NColors.
const binomSize = geometry.NColors + 1

// binomial returns a binomSize x binomSize table of N-choose-K values, used
// to validate dual-graph ring lengths.
func binomial() [binomSize][binomSize]int {
	var c [binomSize][binomSize]int
	for n := 0; n < binomSize; n++ {
		c[n][0] = 1
		for k := 1; k <= n; k++ {
			c[n][k] = c[n-1][k-1]
			if k <= n-1 {
				c[n][k] += c[n-1][k]
			}
		}
	}
	return c
}
