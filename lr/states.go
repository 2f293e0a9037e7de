package lr

import (
	"errors"
	"fmt"

	"github.com/npillmayer/lrcore/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// MaxStates is the maximum number of states of an automaton. State numbers
// have to fit into 15 bits.
const MaxStates = 0x7fff

// ErrTooManyStates is returned by Build if a grammar's automaton would exceed
// the state limit.
var ErrTooManyStates = errors.New("too many LR(0) states")

// Core is a state of the LR(0) automaton, identified by its kernel items.
type Core struct {
	AccessingSymbol int   // symbol shifted to reach this state; 0 for the initial state
	Items           []int // kernel items in ascending order
}

// stateTable is the growing list of states. States with the same first kernel
// item are chained in stateSet, which is indexed by item.
type stateTable struct {
	g         *grammar.Grammar
	states    []Core
	stateSet  [][]int
	maxStates int
}

func newStateTable(g *grammar.Grammar, maxStates int) *stateTable {
	return &stateTable{
		g:         g,
		stateSet:  make([][]int, g.NItems),
		maxStates: maxStates,
	}
}

// initial creates state 0 from the rules of the start symbol.
func (st *stateTable) initial(derives []int, derivesRules []int) {
	var items []int
	for sp := derives[st.g.StartSymbol]; derivesRules[sp] >= 0; sp++ {
		items = append(items, st.g.Rrhs[derivesRules[sp]])
	}
	st.states = append(st.states, Core{AccessingSymbol: 0, Items: items})
	if len(items) > 0 {
		st.stateSet[items[0]] = append(st.stateSet[items[0]], 0)
	}
	tracer().Debugf("initial state:")
	traceCore(st.g, 0, &st.states[0])
}

// getState returns the state with kernel items (reached by shifting sym),
// creating it if necessary. Kernels are compared positionally, as items are
// always staged in ascending order.
func (st *stateTable) getState(sym int, kernel []int) (int, error) {
	key := kernel[0]
	for _, state := range st.stateSet[key] {
		if sameItems(st.states[state].Items, kernel) {
			return state, nil
		}
	}
	if len(st.states) >= st.maxStates {
		return -1, fmt.Errorf("%w: grammar %s needs more than %d states",
			ErrTooManyStates, st.g.Name, st.maxStates)
	}
	n := len(st.states)
	st.states = append(st.states, Core{
		AccessingSymbol: sym,
		Items:           append([]int(nil), kernel...),
	})
	st.stateSet[key] = append(st.stateSet[key], n)
	tracer().Debugf("    created state s%d:", n)
	traceCore(st.g, n, &st.states[n])
	return n, nil
}

func sameItems(items []int, kernel []int) bool {
	if len(items) != len(kernel) {
		return false
	}
	for j := range items {
		if items[j] != kernel[j] {
			return false
		}
	}
	return true
}

func traceCore(g *grammar.Grammar, state int, core *Core) {
	if tracer().GetTraceLevel() != tracing.LevelDebug {
		return
	}
	tracer().Debugf("    s%d : accessing symbol = %s", state, g.Names[core.AccessingSymbol])
	for _, item := range core.Items {
		tracer().Debugf("        item %4d : %s", item, g.ItemString(item))
	}
}
