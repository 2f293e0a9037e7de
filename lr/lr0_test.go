package lr

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/lrcore/grammar"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// S -> a | ε
func makeSmallGrammar(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("Small")
	b.LHS("S").T("a").End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// Classic expression grammar, which is not LR(0):
//
//     E -> E + T | T
//     T -> T * F | F
//     F -> ( E ) | id
//
func makeExprGrammar(t *testing.T) *grammar.Grammar {
	g, err := grammar.Read("Expr", strings.NewReader(`
		E : E '+' T | T ;
		T : T '*' F | F ;
		F : '(' E ')' | id ;
	`))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// S -> a #eof
func makeEOFGrammar(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("EOF")
	b.LHS("S").T("a").EOF()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func sym(t *testing.T, g *grammar.Grammar, name string) int {
	s, ok := g.SymbolByName(name)
	if !ok {
		t.Fatalf("no symbol %q in grammar %s", name, g.Name)
	}
	return s
}

// --- the Tests -------------------------------------------------------------

func TestDerives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.lr")
	defer teardown()
	//
	g := makeSmallGrammar(t)
	derives, derivesRules := Derives(g)
	assert.Equal(t, []int{0, -1, 1, 2, -1}, derivesRules)
	assert.Equal(t, 0, derives[g.StartSymbol])
	assert.Equal(t, 2, derives[sym(t, g, "S")])
}

func TestDerivesCoversEveryRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	derives, derivesRules := Derives(g)
	seen := make([]int, g.NRules)
	for lhs := g.StartSymbol; lhs < g.NSyms; lhs++ {
		prev := -1
		for sp := derives[lhs]; derivesRules[sp] >= 0; sp++ {
			r := derivesRules[sp]
			if g.Rlhs[r] != lhs {
				t.Errorf("rule %d listed for %s", r, g.Names[lhs])
			}
			if r <= prev {
				t.Errorf("rules of %s not in ascending order", g.Names[lhs])
			}
			prev = r
			seen[r]++
		}
	}
	for r, cnt := range seen {
		if cnt != 1 {
			t.Errorf("rule %d listed %d times", r, cnt)
		}
	}
}

func TestNullable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.lr")
	defer teardown()
	//
	g := makeSmallGrammar(t)
	nullable := Nullable(g)
	assert.Equal(t, uint(2), nullable.Count())
	assert.True(t, nullable.Test(uint(g.StartSymbol)))
	assert.True(t, nullable.Test(uint(sym(t, g, "S"))))
	assert.False(t, nullable.Test(uint(sym(t, g, "a"))))
	//
	g = makeExprGrammar(t)
	assert.Equal(t, uint(0), Nullable(g).Count())
}

func TestNullableChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.lr")
	defer teardown()
	//
	// rules in an order which needs more than one pass
	g := grammar.MustRead("Chain", `
		S : A B ;
		A : B C ;
		B : C | b ;
		C : ;
	`)
	nullable := Nullable(g)
	for _, name := range []string{"S'", "S", "A", "B", "C"} {
		if !nullable.Test(uint(sym(t, g, name))) {
			t.Errorf("expected %s to be nullable", name)
		}
	}
	assert.False(t, nullable.Test(uint(sym(t, g, "b"))))
}

func TestArena(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	a := newKernelArena(g)
	E, T := sym(t, g, "E"), sym(t, g, "T")
	// E occurs 3 times on right-hand sides (including rule 0), T 3 times
	assert.Equal(t, 3, a.base[T]-a.base[E])
	assert.Nil(t, a.kernel(E))
	assert.True(t, a.push(E, 1))
	assert.False(t, a.push(E, 3))
	assert.True(t, a.push(T, 7))
	assert.Equal(t, []int{1, 3}, a.kernel(E))
	assert.Equal(t, []int{7}, a.kernel(T))
	a.reset()
	assert.Nil(t, a.kernel(E))
	assert.True(t, a.push(E, 16))
	assert.Equal(t, []int{16}, a.kernel(E))
}

func TestStateTableDedup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	st := newStateTable(g, MaxStates)
	st.initial(Derives(g))
	E := sym(t, g, "E")
	s1, err := st.getState(E, []int{1, 3})
	assert.NoError(t, err)
	assert.Equal(t, 1, s1)
	s2, _ := st.getState(E, []int{3, 16})
	assert.Equal(t, 2, s2)
	s, _ := st.getState(E, []int{1, 3})
	assert.Equal(t, s1, s)
	s, _ = st.getState(E, []int{1})
	assert.Equal(t, 3, s, "kernels sharing the first item are different states")
	assert.Equal(t, 4, len(st.states))
}

func TestSmallAutomaton(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.lr")
	defer teardown()
	//
	g := makeSmallGrammar(t)
	out, err := Build(g)
	if err != nil {
		t.Fatal(err)
	}
	a, S := sym(t, g, "a"), sym(t, g, "S")
	assert.Equal(t, []Core{
		{AccessingSymbol: 0, Items: []int{0}},
		{AccessingSymbol: a, Items: []int{3}},
		{AccessingSymbol: S, Items: []int{1}},
	}, out.States)
	assert.Equal(t, []Shifts{{State: 0, Shifts: []int{1, 2}}}, out.Shifts)
	assert.Equal(t, []Reductions{
		{State: 0, Rules: []int{2}},
		{State: 1, Rules: []int{1}},
		{State: 2, Rules: []int{0}},
	}, out.Reductions)
	assert.Equal(t, uint(2), out.Nullable.Count())
	assert.Equal(t, []int{0, -1, 1, 2, -1}, out.DerivesRules)
}

func TestExpressionAutomaton(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.lr")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelDebug)
	g := makeExprGrammar(t)
	out, err := Build(g)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 12, out.NStates())
	assert.Equal(t, []Shifts{
		{State: 0, Shifts: []int{1, 2, 3, 4, 5}},
		{State: 1, Shifts: []int{1, 2, 6, 4, 5}},
		{State: 3, Shifts: []int{7}},
		{State: 4, Shifts: []int{8}},
		{State: 6, Shifts: []int{7, 9}},
		{State: 7, Shifts: []int{1, 2, 10, 5}},
		{State: 8, Shifts: []int{1, 2, 11}},
		{State: 10, Shifts: []int{8}},
	}, out.Shifts)
	assert.Equal(t, []Reductions{
		{State: 2, Rules: []int{6}},
		{State: 3, Rules: []int{0}},
		{State: 4, Rules: []int{2}},
		{State: 5, Rules: []int{4}},
		{State: 9, Rules: []int{5}},
		{State: 10, Rules: []int{1}},
		{State: 11, Rules: []int{3}},
	}, out.Reductions)
	assert.Equal(t, []int{3, 16}, out.States[6].Items)
	assert.Equal(t, []int{5, 9}, out.States[10].Items)
	assert.Equal(t, uint(0), out.Nullable.Count()) // no ε-rules
}

func TestEndMarkerIsNotShifted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.lr")
	defer teardown()
	//
	g := makeEOFGrammar(t)
	out, err := Build(g)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 3, out.NStates())
	assert.Equal(t, []Shifts{{State: 0, Shifts: []int{1, 2}}}, out.Shifts)
	assert.Equal(t, []Reductions{{State: 2, Rules: []int{0}}}, out.Reductions)
	assert.Nil(t, out.ShiftsOf(1))
	assert.Nil(t, out.ReductionsOf(1))
}

func TestStateLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.lr")
	defer teardown()
	//
	g := makeSmallGrammar(t)
	out, err := Build(g, WithStateLimit(2))
	assert.Nil(t, out)
	if !errors.Is(err, ErrTooManyStates) {
		t.Errorf("expected ErrTooManyStates, got %v", err)
	}
	_, err = Build(g, WithStateLimit(0))
	assert.True(t, errors.Is(err, ErrTooManyStates))
	out, err = Build(g, WithStateLimit(3))
	assert.NoError(t, err)
	assert.Equal(t, 3, out.NStates())
	out, err = Build(g, WithStateLimit(MaxStates+100))
	assert.NoError(t, err)
	assert.Equal(t, 3, out.NStates())
}

func TestDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.lr")
	defer teardown()
	//
	out1, err := Build(makeExprGrammar(t))
	assert.NoError(t, err)
	out2, err := Build(makeExprGrammar(t))
	assert.NoError(t, err)
	assert.Equal(t, out1.States, out2.States)
	h1, err := out1.Fingerprint()
	assert.NoError(t, err)
	h2, _ := out2.Fingerprint()
	assert.Equal(t, h1, h2)
	out3, _ := Build(makeSmallGrammar(t))
	h3, _ := out3.Fingerprint()
	assert.NotEqual(t, h1, h3)
}

func TestOutputNavigation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	out, _ := Build(g)
	id, E := sym(t, g, "id"), sym(t, g, "E")
	assert.Equal(t, 2, out.Goto(0, id))
	assert.Equal(t, 3, out.Goto(0, E))
	assert.Equal(t, 6, out.Goto(1, E))
	assert.Equal(t, -1, out.Goto(2, E))
	tr := out.Transitions(6)
	assert.Equal(t, []Transition{
		{Symbol: sym(t, g, "+"), To: 7},
		{Symbol: sym(t, g, ")"), To: 9},
	}, tr)
	assert.Nil(t, out.Transitions(11))
	assert.Equal(t, []int{6}, out.ReductionsOf(2))
	assert.Nil(t, out.ShiftsOf(12))
}
