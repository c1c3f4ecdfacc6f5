//go:build !n3 && !n4 && !n5

package geometry

// Default build: no ncolors tag selected, matching the reference's default
// of N=6 when no ncolors_* feature is enabled.
// See sizes_n3.go for the meaning of each constant.
const NColors = 6
const NCycles = 394
const NCycleWords = (NCycles + 63) / 64
const NFaces = 1 << NColors
const NPoints = (1 << (NColors - 2)) * NColors * (NColors - 1)
const NVertexWords = (NPoints + 63) / 64
const InnerRingDegreeSum = 2*6 + 15 // 2*C(6,5) + C(6,4)
