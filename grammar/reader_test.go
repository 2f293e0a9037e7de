package grammar

import (
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReadMatchesBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.grammar")
	defer teardown()
	//
	src := `
// S -> a | ε
S : 'a'
  |
  ;
`
	g, err := Read("G", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	b := NewBuilder("G")
	b.LHS("S").T("a").End()
	b.LHS("S").Epsilon()
	h, _ := b.Grammar()
	if !reflect.DeepEqual(g, h) {
		t.Errorf("expected grammar read to equal built grammar:\n%#v\n%#v", g, h)
	}
}

func TestReadExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.grammar")
	defer teardown()
	//
	g := MustRead("Expr", `
		E : E '+' T | T ;
		T : T '*' F | F ;
		F : '(' E ')' | id ;
	`)
	g.Dump()
	if g.NRules != 7 {
		t.Errorf("expected 7 rules, have %d", g.NRules)
	}
	if g.NTokens != 6 || g.NVars != 4 {
		t.Errorf("expected 6 terminals and 4 non-terminals, have %d and %d", g.NTokens, g.NVars)
	}
	if s := g.RuleString(5); s != "F ::= ( E )" {
		t.Errorf("unexpected rule 5: %s", s)
	}
	if sym, _ := g.SymbolByName("id"); !g.IsTerminal(sym) {
		t.Errorf("expected id to be a terminal")
	}
}

func TestReadStartDirective(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.grammar")
	defer teardown()
	//
	g := MustRead("G", `
		%start S
		A : x ;
		S : A #eof ;
	`)
	if g.RuleString(0) != "S' ::= S" {
		t.Errorf("expected S to be the goal, rule 0 is %s", g.RuleString(0))
	}
	if g.RuleString(1) != "S ::= A #eof" {
		t.Errorf("expected goal rule to come first, rule 1 is %s", g.RuleString(1))
	}
}

func TestReadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrcore.grammar")
	defer teardown()
	//
	inputs := map[string]string{
		"S : a\n  b\n":          "G:3: expected '|' or ';', found end of input",
		"S : a ;\n: b ;":         "G:2: expected rule name",
		"S a ;":                  "G:1: expected ':'",
		"%start X\nS : a ;":      "X has no rules",
		"":                       "no rules",
		"S : a ;\n%start S %start S": "duplicate",
	}
	for src, msg := range inputs {
		_, err := Read("G", strings.NewReader(src))
		if err == nil {
			t.Errorf("expected error for %q", src)
			continue
		}
		if !strings.Contains(err.Error(), msg) {
			t.Errorf("expected error for %q to contain %q, is %q", src, msg, err.Error())
		}
	}
}
