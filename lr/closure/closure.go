/*
Package closure computes closures of LR(0) kernel item sets.

An item is an index into the packed right-hand sides of a grammar (see package
grammar). The closure of a set of kernel items adds, for every item with a
non-terminal A after the dot, the initial items of all rules derivable from A
at the leftmost position. These rules are precomputed once per grammar as the
first-derives relation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package closure

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/npillmayer/lrcore/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrcore.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lrcore.lr")
}

// Relation is the first-derives relation of a grammar: for every non-terminal A,
// the set of rules whose initial item belongs to the closure of any item with
// A after the dot.
type Relation struct {
	start int              // start symbol; rows are indexed by symbol - start
	rules []*bitset.BitSet // one rule set per non-terminal
}

// Rules returns the first-derives rule set of non-terminal sym. The set must
// not be modified.
func (fd *Relation) Rules(sym int) *bitset.BitSet {
	return fd.rules[sym-fd.start]
}

// FirstDerives computes the first-derives relation from the derivation table
// (derives, derivesRules), as produced by lr.Derives.
func FirstDerives(g *grammar.Grammar, derives []int, derivesRules []int) *Relation {
	eff := epsilonFreeFirsts(g, derives, derivesRules)
	fd := &Relation{
		start: g.StartSymbol,
		rules: make([]*bitset.BitSet, g.NVars),
	}
	for i := 0; i < g.NVars; i++ {
		set := bitset.New(uint(g.NRules))
		for j, ok := eff[i].NextSet(0); ok; j, ok = eff[i].NextSet(j + 1) {
			for sp := derives[int(j)+g.StartSymbol]; derivesRules[sp] >= 0; sp++ {
				set.Set(uint(derivesRules[sp]))
			}
		}
		fd.rules[i] = set
	}
	if tracer().GetTraceLevel() == tracing.LevelDebug {
		tracer().Debugf("FIRST DERIVES:")
		for i := 0; i < g.NVars; i++ {
			tracer().Debugf("    %s derives %v", g.Names[i+g.StartSymbol], fd.rules[i])
		}
	}
	return fd
}

// epsilonFreeFirsts computes, for every non-terminal A, the non-terminals B with
// A ⇒* B…, i.e. the reflexive transitive closure of "a rule of A starts with B".
func epsilonFreeFirsts(g *grammar.Grammar, derives []int, derivesRules []int) []*bitset.BitSet {
	eff := make([]*bitset.BitSet, g.NVars)
	for i := 0; i < g.NVars; i++ {
		set := bitset.New(uint(g.NVars))
		for sp := derives[i+g.StartSymbol]; derivesRules[sp] >= 0; sp++ {
			sym := g.Ritem[g.Rrhs[derivesRules[sp]]]
			if sym >= g.StartSymbol {
				set.Set(uint(sym - g.StartSymbol))
			}
		}
		eff[i] = set
	}
	reflexiveTransitiveClosure(eff)
	return eff
}

// reflexiveTransitiveClosure is Warshall's algorithm on a square bit matrix.
func reflexiveTransitiveClosure(m []*bitset.BitSet) {
	n := uint(len(m))
	for k := uint(0); k < n; k++ {
		for i := uint(0); i < n; i++ {
			if m[i].Test(k) {
				m[i].InPlaceUnion(m[k])
			}
		}
	}
	for i := uint(0); i < n; i++ {
		m[i].Set(i)
	}
}

// Closure computes the closure of nucleus, a kernel item list in ascending
// order. The result is ascending and free of duplicates. ruleSet is scratch
// space of at least g.NRules bits and is cleared on entry; itemSet is reused
// for the result, which is returned.
func Closure(g *grammar.Grammar, nucleus []int, fd *Relation, ruleSet *bitset.BitSet, itemSet []int) []int {
	ruleSet.ClearAll()
	for _, item := range nucleus {
		if sym := g.Ritem[item]; sym >= g.StartSymbol {
			ruleSet.InPlaceUnion(fd.Rules(sym))
		}
	}
	itemSet = itemSet[:0]
	csp := 0
	for r, ok := ruleSet.NextSet(0); ok; r, ok = ruleSet.NextSet(r + 1) {
		itemno := g.Rrhs[r] // ascending with r
		for csp < len(nucleus) && nucleus[csp] < itemno {
			itemSet = append(itemSet, nucleus[csp])
			csp++
		}
		if csp < len(nucleus) && nucleus[csp] == itemno {
			continue // will be copied from the nucleus
		}
		itemSet = append(itemSet, itemno)
	}
	itemSet = append(itemSet, nucleus[csp:]...)
	return itemSet
}
