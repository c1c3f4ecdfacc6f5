//go:build n3

package geometry

// NColors is the number of curves (and hence colors) the engine was built
// for. Selected at build time via the n3/n4/n5 tags; the untagged file
// (sizes_n6.go) is the default, matching the reference's "no feature flag
// means N=6" convention.
const NColors = 3

// NCycles is the number of canonical facial cycles over NColors colors:
// sum over length L=3..NColors of C(NColors,L)*(L-1)!. Pinned to the value
// the reference enumerates for this N rather than computed, since it is a
// build-time constant used to size CycleSet arrays.
const NCycles = 2

// NCycleWords is the number of uint64 words needed to hold a NCycles-bit set.
const NCycleWords = (NCycles + 63) / 64

// NFaces is the number of regions in the arrangement: one per subset of colors.
const NFaces = 1 << NColors

// NPoints is the number of distinct curve-crossing vertices:
// 2^(NColors-2) * NColors * (NColors-1).
const NPoints = (1 << (NColors - 2)) * NColors * (NColors - 1)

// NVertexWords is the number of uint64 words needed for a NPoints-bit set.
const NVertexWords = (NPoints + 63) / 64

// InnerRingDegreeSum is the required sum of facial-cycle lengths around the
// inner face: 2*C(NColors,NColors-1) + C(NColors,NColors-2).
const InnerRingDegreeSum = 9
