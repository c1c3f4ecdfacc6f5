package engine

import (
	"github.com/jeremycarroll/venntriangles/context"
)

// Builder assembles a program fluently: Add(p).Add(q).Terminal(r).Build().
// This is ambient convenience around New, grounded on the reference's
// EngineBuilder and, for its chained With*-free Add/Terminal naming, on the
// teacher's functional-options style elsewhere in the pack (SPEC_FULL.md
// §4.4's "Ambient addition: builder convenience").
type Builder struct {
	predicates []Predicate
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a non-terminal predicate to the program.
func (b *Builder) Add(p Predicate) *Builder {
	b.predicates = append(b.predicates, p)
	return b
}

// Terminal appends the program-ending predicate and returns the Builder;
// Build still re-checks that it satisfies Terminal.
func (b *Builder) Terminal(p Terminal) *Builder {
	b.predicates = append(b.predicates, p)
	return b
}

// Build constructs the SearchEngine over ctx. It panics immediately (not on
// first Search call) if the assembled program does not end in a Terminal
// predicate.
func (b *Builder) Build(ctx *context.Context) *SearchEngine {
	return New(ctx, b.predicates)
}
