// Package geometry holds the value types shared by the whole search engine:
// colors, cycles, faces, edges and vertices of the facial-cycle model used to
// enumerate monotone N-Venn diagrams.
//
// Every type here is immutable once built, and all but Cycle (which holds a
// slice of colors) are comparable by value; the package never
// allocates on behalf of the caller beyond returning plain slices. The
// mutable, per-search counterparts of Face and Edge live in package state;
// geometry only describes their fixed, precomputed shape.
package geometry
