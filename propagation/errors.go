// Package propagation implements the cascading constraint engine: fixing
// one face's cycle triggers restriction of its neighbors' possible-cycle
// sets, which, whenever a set collapses to a single cycle, recursively
// fixes that neighbor too. It also enforces the triangle constraint (vertex
// crossing limit, corner count, curve connectivity) and the final ring
// check that confirms a completed assignment is globally consistent.
package propagation

import "fmt"

// Kind classifies why a propagation call failed.
type Kind int

const (
	// NoMatchingCycles: intersecting a face's possible set with a new
	// restriction left it empty.
	NoMatchingCycles Kind = iota
	// ConflictingConstraints: a face already committed to a cycle that the
	// new restriction excludes.
	ConflictingConstraints
	// CrossingLimitExceeded: two curves would cross more than
	// geometry.MaxCrossings times.
	CrossingLimitExceeded
	// TooManyCorners: a curve would turn more than 3 times (N>=5 only).
	TooManyCorners
	// DisconnectedCurve: a color's curve closed into more than one
	// component, or a ring-check level did not form a single cycle.
	DisconnectedCurve
	// DepthExceeded: the recursion guard in PropagateCycleChoice tripped;
	// this indicates a programming error, not a rejectable assignment.
	DepthExceeded
)

func (k Kind) String() string {
	switch k {
	case NoMatchingCycles:
		return "NoMatchingCycles"
	case ConflictingConstraints:
		return "ConflictingConstraints"
	case CrossingLimitExceeded:
		return "CrossingLimitExceeded"
	case TooManyCorners:
		return "TooManyCorners"
	case DisconnectedCurve:
		return "DisconnectedCurve"
	case DepthExceeded:
		return "DepthExceeded"
	default:
		return "Unknown"
	}
}

// Failure is the error type every propagation entry point returns. Callers
// that only care whether propagation succeeded treat any non-nil Failure as
// "try the next choice"; callers diagnosing a specific scenario use Kind and
// the relevant context fields instead of string-matching Error().
type Failure struct {
	Kind  Kind
	Face  int
	Cycle int
	I, J  int
	Count uint64
	Color int
	Seen  uint64
	Total uint64
	Depth int
}

func (f *Failure) Error() string {
	return fmt.Sprintf("propagation: %s (face=%d cycle=%d i=%d j=%d color=%d count=%d seen=%d total=%d depth=%d)",
		f.Kind, f.Face, f.Cycle, f.I, f.J, f.Color, f.Count, f.Seen, f.Total, f.Depth)
}
