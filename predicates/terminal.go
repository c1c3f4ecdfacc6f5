package predicates

import (
	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/engine"
)

// Fail unconditionally reports Failure, forcing the driver to backtrack
// through every remaining choice so the whole search space is enumerated.
// It is the terminal used by scenarios that count every solution (S1, S6).
type Fail struct{}

func (Fail) Try(ctx *context.Context, round int) engine.Result {
	return engine.Result{Status: engine.Failure}
}
func (Fail) Retry(ctx *context.Context, round int, choice int) engine.Result {
	return engine.Result{Status: engine.Failure}
}
func (Fail) EngineTerminal() {}

// Suspend unconditionally reports Suspend, pausing the search right after
// the first solution so the caller can inspect it and, if it wants more,
// call SearchEngine.Search again to resume exactly where Suspend left off.
type Suspend struct{}

func (Suspend) Try(ctx *context.Context, round int) engine.Result {
	return engine.Result{Status: engine.Suspend}
}
func (Suspend) Retry(ctx *context.Context, round int, choice int) engine.Result {
	return engine.Result{Status: engine.Suspend}
}
func (Suspend) EngineTerminal() {}

var (
	_ engine.Terminal = Fail{}
	_ engine.Terminal = Suspend{}
)
