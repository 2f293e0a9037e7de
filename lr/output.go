package lr

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
	"github.com/cnf/structhash"
	"github.com/npillmayer/lrcore/grammar"
)

// Shifts lists the successor states of a state, in ascending order of their
// accessing symbols.
type Shifts struct {
	State  int
	Shifts []int
}

// Reductions lists the rules completed in a state, in item order.
type Reductions struct {
	State int
	Rules []int
}

// Output is the LR(0) automaton of a grammar.
//
// States are numbered by discovery. Shifts and Reductions are ordered by
// state number, and states without shifts or reductions have no entry.
type Output struct {
	States       []Core
	Shifts       []Shifts
	Reductions   []Reductions
	Nullable     *bitset.BitSet // indexed by symbol
	Derives      []int          // see function Derives
	DerivesRules []int
}

// NStates returns the number of states.
func (out *Output) NStates() int {
	return len(out.States)
}

// ShiftsOf returns the successor states of state, or nil.
func (out *Output) ShiftsOf(state int) []int {
	k := sort.Search(len(out.Shifts), func(k int) bool {
		return out.Shifts[k].State >= state
	})
	if k < len(out.Shifts) && out.Shifts[k].State == state {
		return out.Shifts[k].Shifts
	}
	return nil
}

// ReductionsOf returns the rules completed in state, or nil.
func (out *Output) ReductionsOf(state int) []int {
	k := sort.Search(len(out.Reductions), func(k int) bool {
		return out.Reductions[k].State >= state
	})
	if k < len(out.Reductions) && out.Reductions[k].State == state {
		return out.Reductions[k].Rules
	}
	return nil
}

// Transition is an edge of the automaton.
type Transition struct {
	Symbol int
	To     int
}

// Transitions returns the outgoing edges of state. The symbol of an edge is
// the accessing symbol of its target.
func (out *Output) Transitions(state int) []Transition {
	shifts := out.ShiftsOf(state)
	if len(shifts) == 0 {
		return nil
	}
	t := make([]Transition, len(shifts))
	for i, to := range shifts {
		t[i] = Transition{Symbol: out.States[to].AccessingSymbol, To: to}
	}
	return t
}

// Goto returns the state reached from state by shifting sym, or -1.
func (out *Output) Goto(state int, sym int) int {
	for _, to := range out.ShiftsOf(state) {
		if out.States[to].AccessingSymbol == sym {
			return to
		}
	}
	return -1
}

// Dump is a debugging helper. It traces all states at level Debug.
func (out *Output) Dump(g *grammar.Grammar) {
	for state := range out.States {
		traceCore(g, state, &out.States[state])
		if shifts := out.ShiftsOf(state); len(shifts) > 0 {
			tracer().Debugf("        shifts %v", shifts)
		}
		if reds := out.ReductionsOf(state); len(reds) > 0 {
			tracer().Debugf("        reduces %v", reds)
		}
	}
}

// fingerprinted is the part of the output covered by Fingerprint.
type fingerprinted struct {
	States     []Core
	Shifts     []Shifts
	Reductions []Reductions
	Nullable   []uint
}

// Fingerprint returns a hash of the automaton. Building the same grammar
// always yields the same fingerprint.
func (out *Output) Fingerprint() (string, error) {
	fp := fingerprinted{
		States:     out.States,
		Shifts:     out.Shifts,
		Reductions: out.Reductions,
	}
	if out.Nullable != nil {
		fp.Nullable = make([]uint, 0, out.Nullable.Count())
		for i, ok := out.Nullable.NextSet(0); ok; i, ok = out.Nullable.NextSet(i + 1) {
			fp.Nullable = append(fp.Nullable, i)
		}
	}
	h, err := structhash.Hash(fp, 1)
	if err != nil {
		return "", fmt.Errorf("cannot fingerprint automaton: %w", err)
	}
	return h, nil
}
