//go:build n4

package geometry

// See sizes_n3.go for the meaning of each constant.
const NColors = 4
const NCycles = 14
const NCycleWords = (NCycles + 63) / 64
const NFaces = 1 << NColors
const NPoints = (1 << (NColors - 2)) * NColors * (NColors - 1)
const NVertexWords = (NPoints + 63) / 64
const InnerRingDegreeSum = 2*4 + 6 // 2*C(4,3) + C(4,2)
