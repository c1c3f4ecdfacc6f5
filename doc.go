// Package venntriangles enumerates simple, monotone, symmetric Venn
// diagrams drawn with triangles for a fixed number of curves.
//
// A Venn diagram of N curves divides the plane into 2^N faces, one per
// subset of curves, such that the curve of color c bounds exactly the faces
// containing c. This module searches for triangle-curve arrangements: curves
// that cross each other at most six times and turn at most three times,
// matching the convex-hull constraint of an actual triangle.
//
// The search is organized as a cascading constraint solver over facial
// cycles (the cyclic order in which curves bound a face) rather than over
// raw coordinates: fixing one face's cycle propagates restrictions to every
// neighboring face, and a completed, internally consistent assignment of
// cycles to all 2^N faces is a diagram.
//
// Packages:
//
//	geometry/    — fixed-size types (Color, ColorSet, Cycle, Face, Vertex)
//	               and the per-N build-time constants
//	memo/        — immutable precomputed tables: canonical cycles, faces,
//	               the sparse crossing-vertex table, direction/omission sets
//	trail/       — O(1) undo log for backtracking search
//	state/       — the mutable per-search Dynamic arrays, trail-compatible
//	context/     — glues Memo, Dynamic and Trail into one search context
//	propagation/ — the cascading constraint engine (C4)
//	engine/      — the WAM-style predicate driver that walks the search tree
//	predicates/  — the concrete search steps (Initialize, InnerFace, Venn)
//	symmetry/    — dihedral canonicality checks
//	statistics/  — search counters
//	sink/        — where completed diagrams go
//	cmd/venn-search/ — the command-line entry point
//
//	go get github.com/jeremycarroll/venntriangles
package venntriangles
