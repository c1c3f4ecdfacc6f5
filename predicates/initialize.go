// Package predicates implements the concrete search steps driven by
// engine.SearchEngine: Initialize, InnerFace, Venn, and the terminal
// predicates Fail and Suspend. See SPEC_FULL.md §4.5.
package predicates

import (
	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/engine"
)

// Initialize runs once at round 0 and freezes the trail, so the rest of the
// search can never roll back past MEMO population — ctx's Memo/Dynamic
// seeding already happened in context.New, so there is nothing left for
// this predicate to populate but the freeze itself.
type Initialize struct{}

func (Initialize) Try(ctx *context.Context, round int) engine.Result {
	ctx.Trail.Freeze()
	return engine.Result{Status: engine.Success}
}

func (Initialize) Retry(ctx *context.Context, round int, choice int) engine.Result {
	panic("predicates: Initialize never offers choices")
}
