package closure_test

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/npillmayer/lrcore/grammar"
	"github.com/npillmayer/lrcore/lr"
	"github.com/npillmayer/lrcore/lr/closure"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// Items of the expression grammar:
//
//    0: S' ::= . E         1: S' ::= E .
//    2: E  ::= . E + T     6: E  ::= . T
//    8: T  ::= . T * F    12: T  ::= . F
//   14: F  ::= . ( E )    18: F  ::= . id
func exprGrammar() *grammar.Grammar {
	return grammar.MustRead("Expr", `
		E : E '+' T | T ;
		T : T '*' F | F ;
		F : '(' E ')' | id ;
	`)
}

func TestFirstDerives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.lr")
	defer teardown()
	//
	assert := assert.New(t)
	g := exprGrammar()
	derives, derivesRules := lr.Derives(g)
	fd := closure.FirstDerives(g, derives, derivesRules)
	E, _ := g.SymbolByName("E")
	T, _ := g.SymbolByName("T")
	F, _ := g.SymbolByName("F")
	assert.Equal("{1,2,3,4,5,6}", fd.Rules(E).String())
	assert.Equal("{3,4,5,6}", fd.Rules(T).String())
	assert.Equal("{5,6}", fd.Rules(F).String())
	assert.Equal("{0,1,2,3,4,5,6}", fd.Rules(g.StartSymbol).String())
}

func TestClosure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.lr")
	defer teardown()
	//
	g := exprGrammar()
	derives, derivesRules := lr.Derives(g)
	fd := closure.FirstDerives(g, derives, derivesRules)
	ruleSet := bitset.New(uint(g.NRules))
	itemSet := make([]int, 0, g.NItems)
	testCases := []struct {
		name    string
		nucleus []int
		expect  []int
	}{
		{"initial state", []int{0}, []int{0, 2, 6, 8, 12, 14, 18}},
		{"after T *", []int{10}, []int{10, 14, 18}},
		{"no non-terminal after dot", []int{1, 3}, []int{1, 3}},
		{"after (", []int{15}, []int{2, 6, 8, 12, 14, 15, 18}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			itemSet = closure.Closure(g, tc.nucleus, fd, ruleSet, itemSet)
			assert.Equal(t, tc.expect, itemSet)
		})
	}
}

func TestClosureDoesNotDuplicateNucleus(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.lr")
	defer teardown()
	//
	g := exprGrammar()
	derives, derivesRules := lr.Derives(g)
	fd := closure.FirstDerives(g, derives, derivesRules)
	// a nucleus containing initial items, as state 0 of a grammar with several goal rules has
	items := closure.Closure(g, []int{0, 2, 6}, fd, bitset.New(uint(g.NRules)), nil)
	assert.Equal(t, []int{0, 2, 6, 8, 12, 14, 18}, items)
}
