// Package engine implements the WAM-style predicate driver: a small
// abstract machine that walks an ordered program of predicates, maintaining
// a frame stack and rewinding the trail to each frame's checkpoint before
// every call. See SPEC_FULL.md §4.4.
package engine

import (
	"fmt"

	"github.com/jeremycarroll/venntriangles/context"
	"github.com/jeremycarroll/venntriangles/trail"
)

// Status is the outcome a predicate's Try/Retry call reports to the driver.
type Status int

const (
	// Success: move to the next predicate in the program, at round 0.
	Success Status = iota
	// SuccessSameRound: re-enter the same predicate at round+1.
	SuccessSameRound
	// Failure: a call frame is popped; a choice frame moves on to its next
	// alternative.
	Failure
	// Choices: this frame becomes a choice-point with N alternatives.
	Choices
	// Suspend: pause the whole search, preserving driver state.
	Suspend
)

func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case SuccessSameRound:
		return "SuccessSameRound"
	case Failure:
		return "Failure"
	case Choices:
		return "Choices"
	case Suspend:
		return "Suspend"
	default:
		return "Unknown"
	}
}

// Result is what Try/Retry return. N is only meaningful when Status is
// Choices, and holds the number of alternatives offered.
type Result struct {
	Status Status
	N      int
}

// Predicate is one step of a search program.
type Predicate interface {
	// Try is called when a frame for this predicate is entered fresh, at
	// the given round.
	Try(ctx *context.Context, round int) Result
	// Retry is called when this frame is a choice point and its cursor has
	// not yet been exhausted; choice is the 0-based index of the
	// alternative being tried.
	Retry(ctx *context.Context, round int, choice int) Result
}

// Terminal marks a Predicate as valid program-ending. Builder.Build
// panics if the last predicate added does not implement Terminal, the way
// the reference's TerminalPredicate marker trait is enforced at assembly
// time rather than first Search() call.
type Terminal interface {
	Predicate
	EngineTerminal()
}

// Named is an optional interface a Predicate may implement to give itself a
// debugging name; the reference's Predicate trait gives every predicate a
// name() with a type-name default, but Go interfaces have no default method
// bodies, so this port keeps Name optional and falls back to the runtime
// type name, matching the reference default exactly.
type Named interface {
	Name() string
}

func predicateName(p Predicate) string {
	if n, ok := p.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", p)
}

func isTerminal(p Predicate) bool {
	_, ok := p.(Terminal)
	return ok
}

type mode int

const (
	modeCall mode = iota
	modeChoice
)

type frame struct {
	predicate  int
	round      int
	cursor     int
	choices    int
	mode       mode
	checkpoint trail.Checkpoint
}

// SearchEngine drives a fixed program of predicates over one Context.
type SearchEngine struct {
	ctx     *context.Context
	program []Predicate
	stack   []frame
}

// New constructs a SearchEngine for program over ctx. program's last element
// must implement Terminal; New panics otherwise, matching Builder.Build's
// construction-time check (SPEC_FULL.md §4.4).
func New(ctx *context.Context, program []Predicate) *SearchEngine {
	if len(program) == 0 {
		panic("engine: empty program")
	}
	if last := program[len(program)-1]; !isTerminal(last) {
		panic(fmt.Sprintf("engine: program must end in a Terminal predicate, got %s", predicateName(last)))
	}
	return &SearchEngine{
		ctx:     ctx,
		program: program,
		stack:   []frame{{predicate: 0, round: 0, mode: modeCall, checkpoint: ctx.Trail.Checkpoint()}},
	}
}

// Search runs the driver's main loop until it exhausts the program (returns
// Failure) or a predicate reports Suspend (returns Suspend, with driver
// state preserved so a subsequent Search call resumes exactly where it left
// off, per SPEC_FULL.md §4.4 step 3).
func (e *SearchEngine) Search() Status {
	for len(e.stack) > 0 {
		top := &e.stack[len(e.stack)-1]
		e.ctx.Trail.RewindTo(top.checkpoint)

		var result Result
		switch top.mode {
		case modeCall:
			result = e.program[top.predicate].Try(e.ctx, top.round)
		case modeChoice:
			if top.cursor >= top.choices {
				e.stack = e.stack[:len(e.stack)-1]
				continue
			}
			choice := top.cursor
			top.cursor++
			result = e.program[top.predicate].Retry(e.ctx, top.round, choice)
		}

		if top.mode == modeCall && (result.Status == Success || result.Status == SuccessSameRound) {
			// A deterministic call succeeds once: backtracking into it pops it.
			top.mode = modeChoice
			top.cursor, top.choices = 0, 0
		}

		switch result.Status {
		case Success:
			e.push(top.predicate+1, 0)
		case SuccessSameRound:
			e.push(top.predicate, top.round+1)
		case Failure:
			if top.mode == modeCall {
				e.stack = e.stack[:len(e.stack)-1]
			}
		case Choices:
			top.mode = modeChoice
			top.cursor = 0
			top.choices = result.N
			top.checkpoint = e.ctx.Trail.Checkpoint()
		case Suspend:
			return Suspend
		default:
			panic(fmt.Sprintf("engine: predicate %d returned unknown status %d", top.predicate, result.Status))
		}
	}
	return Failure
}

func (e *SearchEngine) push(predicate, round int) {
	if predicate >= len(e.program) {
		panic("engine: program ran past its last predicate without ending in Suspend/Failure")
	}
	e.stack = append(e.stack, frame{predicate: predicate, round: round, mode: modeCall, checkpoint: e.ctx.Trail.Checkpoint()})
}
