package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderAssemblesProgramInOrder(t *testing.T) {
	ctx := newTestContext(t)
	var seen []int
	term := countingTerminal{calls: new(int)}

	e := NewBuilder().
		Add(&fixedChoices{n: 2, seen: &seen}).
		Terminal(term).
		Build(ctx)

	require.Equal(t, Failure, e.Search())
	require.Equal(t, []int{0, 1}, seen)
}

func TestBuilderBuildPanicsWithoutTerminal(t *testing.T) {
	ctx := newTestContext(t)
	b := NewBuilder().Add(&fixedChoices{n: 1, seen: &[]int{}})
	require.Panics(t, func() {
		b.Build(ctx)
	})
}

// TestBuilderBuildPanicMessageNamesPredicate is SPEC_FULL.md P9: the panic
// names the offending predicate, by its optional Name() if it implements
// Named, else by runtime type name.
func TestBuilderBuildPanicMessageNamesPredicate(t *testing.T) {
	ctx := newTestContext(t)
	b := NewBuilder().Add(&fixedChoices{n: 1, seen: &[]int{}})

	defer func() {
		r := recover()
		require.NotNil(t, r)
		require.Contains(t, fmt.Sprint(r), "fixedChoices")
	}()
	b.Build(ctx)
}

type namedChoices struct{ fixedChoices }

func (namedChoices) Name() string { return "custom-name" }

func TestBuilderBuildPanicMessageUsesNamedOverride(t *testing.T) {
	ctx := newTestContext(t)
	b := NewBuilder().Add(&namedChoices{fixedChoices{n: 1, seen: &[]int{}}})

	defer func() {
		r := recover()
		require.NotNil(t, r)
		require.Contains(t, fmt.Sprint(r), "custom-name")
	}()
	b.Build(ctx)
}

func TestBuilderTerminalAloneIsAValidProgram(t *testing.T) {
	ctx := newTestContext(t)
	term := countingTerminal{calls: new(int)}
	e := NewBuilder().Terminal(term).Build(ctx)
	require.Equal(t, Failure, e.Search())
	require.Equal(t, 1, *term.calls)
}
