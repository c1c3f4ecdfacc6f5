//go:build n5

package geometry

// See sizes_n3.go for the meaning of each constant.
const NColors = 5
const NCycles = 74
const NCycleWords = (NCycles + 63) / 64
const NFaces = 1 << NColors
const NPoints = (1 << (NColors - 2)) * NColors * (NColors - 1)
const NVertexWords = (NPoints + 63) / 64
const InnerRingDegreeSum = 2*5 + 10 // 2*C(5,4) + C(5,3)
