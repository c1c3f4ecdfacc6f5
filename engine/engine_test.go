package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/geometry"
	"github.com/jeremycarroll/venntriangles/memo"
)

// countingTerminal is a minimal Terminal: it always fails, forcing the
// driver to backtrack through every choice (mirrors predicates.Fail).
type countingTerminal struct{ calls *int }

func (t countingTerminal) Try(ctx *context.Context, round int) Result {
	*t.calls++
	return Result{Status: Failure}
}
func (t countingTerminal) Retry(ctx *context.Context, round int, choice int) Result {
	*t.calls++
	return Result{Status: Failure}
}
func (t countingTerminal) EngineTerminal() {}

// fixedChoices offers exactly n choices once, then fails retries after the
// cursor exhausts them, recording which choice indices were tried.
type fixedChoices struct {
	n     int
	seen  *[]int
	tried bool
}

func (f *fixedChoices) Try(ctx *context.Context, round int) Result {
	if f.tried {
		return Result{Status: Failure}
	}
	f.tried = true
	return Result{Status: Choices, N: f.n}
}

func (f *fixedChoices) Retry(ctx *context.Context, round int, choice int) Result {
	*f.seen = append(*f.seen, choice)
	return Result{Status: Success}
}

func newTestContext(t *testing.T) *context.Context {
	t.Helper()
	m, err := memo.Build(geometry.NColors)
	require.NoError(t, err)
	return context.New(m)
}

func TestNewPanicsWithoutTerminal(t *testing.T) {
	ctx := newTestContext(t)
	calls := 0
	require.Panics(t, func() {
		New(ctx, []Predicate{&fixedChoices{n: 1, seen: &[]int{}}, &fixedChoices{n: 1, seen: &[]int{}}})
		_ = calls
	})
}

func TestSearchTriesEveryChoiceThenExhausts(t *testing.T) {
	ctx := newTestContext(t)
	var seen []int
	calls := 0
	program := []Predicate{&fixedChoices{n: 3, seen: &seen}, countingTerminal{calls: &calls}}

	e := New(ctx, program)
	status := e.Search()

	require.Equal(t, Failure, status)
	require.Equal(t, []int{0, 1, 2}, seen)
	require.Equal(t, 3, calls)
}

// suspendOnce succeeds immediately then the terminal suspends on its first
// call and fails on every subsequent one, verifying that a second Search()
// call resumes instead of restarting.
type suspendOnce struct{ used bool }

func (s *suspendOnce) Try(ctx *context.Context, round int) Result {
	if s.used {
		return Result{Status: Failure}
	}
	s.used = true
	return Result{Status: Suspend}
}
func (s *suspendOnce) Retry(ctx *context.Context, round int, choice int) Result {
	return Result{Status: Failure}
}
func (s *suspendOnce) EngineTerminal() {}

func TestSearchSuspendThenResume(t *testing.T) {
	ctx := newTestContext(t)
	term := &suspendOnce{}
	e := New(ctx, []Predicate{term})

	require.Equal(t, Suspend, e.Search())
	require.Equal(t, Failure, e.Search())
}
