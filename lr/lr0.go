package lr

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/npillmayer/lrcore/grammar"
	"github.com/npillmayer/lrcore/lr/closure"
)

// Option configures the construction of an automaton.
type Option func(b *builder)

// WithStateLimit lowers the maximum number of states. n is clamped to
// [1, MaxStates].
func WithStateLimit(n int) Option {
	return func(b *builder) {
		if n < 1 {
			n = 1
		} else if n > MaxStates {
			n = MaxStates
		}
		b.maxStates = n
	}
}

type builder struct {
	g         *grammar.Grammar
	maxStates int
	states    *stateTable
	arena     *kernelArena
}

// Build constructs the LR(0) automaton of a grammar.
//
// States are discovered in a work-list fashion: the state table doubles as
// the queue, and new states are appended while earlier ones are processed.
// State numbering is deterministic, with successors of a state numbered in
// ascending order of their accessing symbols.
//
// Build fails with ErrTooManyStates if the automaton exceeds the state limit.
// No partial result is returned in that case.
func Build(g *grammar.Grammar, opts ...Option) (*Output, error) {
	b := &builder{g: g, maxStates: MaxStates}
	for _, opt := range opts {
		opt(b)
	}
	tracer().Debugf("=== build LR(0) automaton for %s ====================", g.Name)
	derives, derivesRules := Derives(g)
	b.states = newStateTable(g, b.maxStates)
	b.states.initial(derives, derivesRules)
	b.arena = newKernelArena(g)
	firstDerives := closure.FirstDerives(g, derives, derivesRules)
	//
	// scratch buffers, re-used for every state
	itemSet := make([]int, 0, g.NItems)
	ruleSet := bitset.New(uint(g.NRules))
	redSet := make([]int, 0, g.NRules)
	shiftSymbol := make([]int, 0, g.NSyms)
	shiftSet := make([]int, 0, g.NSyms)
	//
	var shifts []Shifts
	var reductions []Reductions
	for this := 0; this < len(b.states.states); this++ {
		tracer().Debugf("computing closure for state s%d:", this)
		traceCore(g, this, &b.states.states[this])
		itemSet = closure.Closure(g, b.states.states[this].Items, firstDerives, ruleSet, itemSet)
		//
		redSet = b.saveReductions(itemSet, redSet[:0])
		if len(redSet) > 0 {
			reductions = append(reductions, Reductions{
				State: this,
				Rules: append([]int(nil), redSet...),
			})
		} else {
			tracer().Debugf("    no reductions")
		}
		//
		shiftSymbol = b.newItemSets(itemSet, shiftSymbol[:0])
		sortShiftSymbols(shiftSymbol)
		var err error
		if shiftSet, err = b.appendStates(shiftSymbol, shiftSet[:0]); err != nil {
			tracer().Errorf("%v", err)
			return nil, err
		}
		if len(shiftSet) > 0 {
			tracer().Debugf("    shifts: %v", shiftSet)
			shifts = append(shifts, Shifts{
				State:  this,
				Shifts: append([]int(nil), shiftSet...),
			})
		}
	}
	out := &Output{
		States:       b.states.states,
		Shifts:       shifts,
		Reductions:   reductions,
		Nullable:     Nullable(g),
		Derives:      derives,
		DerivesRules: derivesRules,
	}
	tracer().Infof("LR(0) automaton for %s has %d states", g.Name, out.NStates())
	return out, nil
}

// saveReductions collects the rules completed in a closure, in item order.
func (b *builder) saveReductions(itemSet []int, redSet []int) []int {
	for _, item := range itemSet {
		if v := b.g.Ritem[item]; v < 0 {
			rule := grammar.RuleOfSentinel(v)
			tracer().Debugf("        reduction: r%d  %s", rule, b.g.RuleString(rule))
			redSet = append(redSet, rule)
		}
	}
	return redSet
}

// newItemSets stages the kernels of all successor states in the arena and
// collects the shift symbols in order of first occurrence. The end marker
// (symbol 0) is never shifted.
func (b *builder) newItemSets(itemSet []int, shiftSymbol []int) []int {
	b.arena.reset()
	for _, item := range itemSet {
		if sym := b.g.Ritem[item]; sym > 0 {
			if b.arena.push(sym, item+1) {
				shiftSymbol = append(shiftSymbol, sym)
			}
		}
	}
	return shiftSymbol
}

// appendStates resolves the successor state for every shift symbol, creating
// new states as needed.
func (b *builder) appendStates(shiftSymbol []int, shiftSet []int) ([]int, error) {
	for _, sym := range shiftSymbol {
		state, err := b.states.getState(sym, b.arena.kernel(sym))
		if err != nil {
			return shiftSet, err
		}
		shiftSet = append(shiftSet, state)
	}
	return shiftSet, nil
}

// sortShiftSymbols is an insertion sort; states have few shift symbols.
func sortShiftSymbols(symbols []int) {
	for i := 1; i < len(symbols); i++ {
		sym := symbols[i]
		j := i
		for j > 0 && symbols[j-1] > sym {
			symbols[j] = symbols[j-1]
			j--
		}
		symbols[j] = sym
	}
}
