// Package statistics counts search events: completed solutions (by
// symmetry classification) and propagation failures (by kind). Grounded on
// _examples/original_source/src/state/statistics.rs's Counters enum and
// CountingPredicate; Rust's strum::EnumCount derive has no Go-ecosystem
// analogue in the example pack, so the count is a manually-maintained
// constant beside a plain iota enum, the conventional Go substitute (see
// DESIGN.md).
package statistics

import (
	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/engine"
	"github.com/jeremycarroll/venntriangles/propagation"
)

// Counter identifies one solution-level event.
type Counter int

const (
	VennSolutions Counter = iota
	EquivocalSolutions
	InnerFaceSolutions
	counterCount // not a real counter; marks the end of the enum
)

var counterNames = [counterCount]string{
	VennSolutions:      "VennSolutions",
	EquivocalSolutions: "EquivocalSolutions",
	InnerFaceSolutions: "InnerFaceSolutions",
}

func (c Counter) String() string { return counterNames[c] }

// failureKindCount mirrors propagation.Kind's six variants; there is no
// propagation.KindCount constant, so this is kept in sync by hand (the same
// tradeoff statistics.rs makes with strum's derive, just without the
// macro).
const failureKindCount = 6

// Statistics holds every counter: solution-level counters plus one per
// propagation.Kind.
type Statistics struct {
	counters [counterCount]uint64
	failures [failureKindCount]uint64
}

// New returns a zeroed Statistics.
func New() *Statistics { return &Statistics{} }

// Increment bumps a solution-level counter.
func (s *Statistics) Increment(c Counter) { s.counters[c]++ }

// Get returns a solution-level counter's current value.
func (s *Statistics) Get(c Counter) uint64 { return s.counters[c] }

// IncrementFailure bumps the counter for a propagation failure kind.
func (s *Statistics) IncrementFailure(k propagation.Kind) { s.failures[k]++ }

// GetFailure returns a propagation failure kind's current value.
func (s *Statistics) GetFailure(k propagation.Kind) uint64 { return s.failures[k] }

// Filter decides whether a counting predicate should increment its
// counter for the current context.
type Filter func(ctx *context.Context) bool

// AlwaysCount is the default Filter: every Try call counts.
func AlwaysCount(ctx *context.Context) bool { return true }

// CountingPredicate increments counter on every Try call for which filter
// reports true, then always reports Success — grounded directly on
// statistics.rs's CountingPredicate.
type CountingPredicate struct {
	Stats   *Statistics
	Counter Counter
	Filter  Filter
}

// NewCountingPredicate builds a CountingPredicate with AlwaysCount if
// filter is nil, mirroring Counters::counting_predicate's
// filter.unwrap_or(|_| true).
func NewCountingPredicate(stats *Statistics, counter Counter, filter Filter) *CountingPredicate {
	if filter == nil {
		filter = AlwaysCount
	}
	return &CountingPredicate{Stats: stats, Counter: counter, Filter: filter}
}

func (p *CountingPredicate) Try(ctx *context.Context, round int) engine.Result {
	if p.Filter(ctx) {
		p.Stats.Increment(p.Counter)
	}
	return engine.Result{Status: engine.Success}
}

func (p *CountingPredicate) Retry(ctx *context.Context, round int, choice int) engine.Result {
	panic("statistics: CountingPredicate never offers choices")
}
