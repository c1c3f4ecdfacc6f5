// Package trail implements the O(1)-amortized undo log that makes the
// search engine's backtracking cheap: every mutation to the dynamic search
// state is recorded here before it is applied, so that abandoning a choice
// is just a matter of replaying the log backwards to a checkpoint.
package trail

import "errors"

// ErrOverflow is the value RecordAndSet panics with when the trail's fixed-size
// buffer is full. It indicates a bug (a search whose choice depth badly
// exceeds what was provisioned), not a recoverable runtime condition.
var ErrOverflow = errors.New("trail: buffer overflow")

// DefaultCapacity is the entry count Trail pre-allocates when constructed
// with New. It comfortably covers an N=6 search's worst-case nesting.
const DefaultCapacity = 16384

type entry struct {
	loc *uint64
	old uint64
}

// Trail is a flat, append-only log of (location, old value) pairs. It is
// not safe for concurrent use; each search Context owns exactly one Trail.
type Trail struct {
	entries []entry
	floor   int // RewindTo never goes below this index once Freeze is called
}

// New returns a Trail with DefaultCapacity pre-allocated entries.
func New() *Trail {
	return &Trail{entries: make([]entry, 0, DefaultCapacity)}
}

// Checkpoint is an opaque handle identifying a point in the trail's history.
type Checkpoint int

// Checkpoint returns a handle to the trail's current length, for later use
// with RewindTo.
func (t *Trail) Checkpoint() Checkpoint {
	return Checkpoint(len(t.entries))
}

// Len reports how many entries are currently recorded.
func (t *Trail) Len() int {
	return len(t.entries)
}

// RecordAndSet records the current value at loc onto the trail, then
// stores newValue at loc. It panics with ErrOverflow if the trail's
// capacity (len(entries) == cap(entries) and cap is DefaultCapacity) would
// be exceeded — growing the backing slice would defeat the fixed-cost
// guarantee the whole design relies on.
func (t *Trail) RecordAndSet(loc *uint64, newValue uint64) {
	if len(t.entries) == cap(t.entries) {
		panic(ErrOverflow)
	}
	old := *loc
	if old == newValue {
		return
	}
	t.entries = append(t.entries, entry{loc: loc, old: old})
	*loc = newValue
}

// RewindTo restores every word recorded since cp, in reverse order, and
// truncates the trail back to cp. If cp is below the frozen floor, RewindTo
// is a silent no-op — this is how the driver detects "no further choices
// remain above the frozen floor" without a distinguishable error.
func (t *Trail) RewindTo(cp Checkpoint) {
	target := int(cp)
	if target < t.floor {
		return
	}
	for i := len(t.entries) - 1; i >= target; i-- {
		*t.entries[i].loc = t.entries[i].old
	}
	t.entries = t.entries[:target]
}

// Freeze marks the trail's current length as a floor: no future RewindTo
// call may undo anything recorded before this point. Used once, after MEMO
// population and Initialize's setup, so the top-level search can never be
// unwound past its own starting state.
func (t *Trail) Freeze() {
	t.floor = len(t.entries)
}

// Floor returns the current frozen floor.
func (t *Trail) Floor() Checkpoint {
	return Checkpoint(t.floor)
}
