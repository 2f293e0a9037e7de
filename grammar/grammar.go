package grammar

import (
	"bytes"
	"fmt"
)

// EOFName is the name of the end marker, which is always symbol 0.
const EOFName = "#eof"

// Grammar is a context-free grammar in flattened form. It is created by a
// Builder (or one of the readers) and never mutated afterwards.
type Grammar struct {
	Name        string
	NSyms       int      // number of symbols, terminals and non-terminals
	NTokens     int      // number of terminals, including #eof
	NVars       int      // number of non-terminals, including S'
	NRules      int      // number of rules, including rule 0
	NItems      int      // length of Ritem
	StartSymbol int      // augmented start symbol S'; all symbols below are terminals
	Ritem       []int    // right-hand sides, each terminated by ^rule
	Rlhs        []int    // left-hand symbol per rule
	Rrhs        []int    // start of right-hand side in Ritem per rule
	Names       []string // symbol names
}

// RuleOfSentinel returns the rule number encoded in an end-of-rule entry of Ritem.
func RuleOfSentinel(v int) int {
	return ^v
}

// Sentinel returns the end-of-rule entry of Ritem for rule r.
func Sentinel(r int) int {
	return ^r
}

// IsTerminal is true for symbols below the start symbol.
func (g *Grammar) IsTerminal(sym int) bool {
	return sym < g.StartSymbol
}

// SymbolByName looks up a symbol by name.
func (g *Grammar) SymbolByName(name string) (int, bool) {
	for sym, n := range g.Names {
		if n == name {
			return sym, true
		}
	}
	return -1, false
}

// RHS returns the right-hand side symbols of rule r.
func (g *Grammar) RHS(r int) []int {
	i := g.Rrhs[r]
	j := i
	for g.Ritem[j] >= 0 {
		j++
	}
	return g.Ritem[i:j]
}

// RuleOfItem returns the rule an item belongs to.
func (g *Grammar) RuleOfItem(item int) int {
	for g.Ritem[item] >= 0 {
		item++
	}
	return RuleOfSentinel(g.Ritem[item])
}

// RuleString returns a rule in the form "A ::= x y".
func (g *Grammar) RuleString(r int) string {
	var b bytes.Buffer
	b.WriteString(g.Names[g.Rlhs[r]])
	b.WriteString(" ::=")
	for _, sym := range g.RHS(r) {
		b.WriteByte(' ')
		b.WriteString(g.Names[sym])
	}
	return b.String()
}

// ItemString returns an item in dotted form, e.g. "A ::= x . y".
func (g *Grammar) ItemString(item int) string {
	first := item // back up to start of the rule
	for first > 0 && g.Ritem[first-1] >= 0 {
		first--
	}
	var b bytes.Buffer
	j := first
	for ; g.Ritem[j] >= 0; j++ {
		if j == item {
			b.WriteString(" .")
		}
		b.WriteByte(' ')
		b.WriteString(g.Names[g.Ritem[j]])
	}
	if j == item {
		b.WriteString(" .")
	}
	r := RuleOfSentinel(g.Ritem[j])
	return g.Names[g.Rlhs[r]] + " ::=" + b.String()
}

// Dump is a debugging helper, tracing all rules at level Debug.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s ----------------------------------------", g.Name)
	for r := 0; r < g.NRules; r++ {
		tracer().Debugf("%3d: %s", r, g.RuleString(r))
	}
	tracer().Debugf("-------------------------------------------------")
}

func (g *Grammar) String() string {
	return fmt.Sprintf("(grammar %s | %d symbols, %d rules)", g.Name, g.NSyms, g.NRules)
}
