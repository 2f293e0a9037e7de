package lr

import (
	"bufio"
	"fmt"
	"io"

	"github.com/npillmayer/lrcore/grammar"
)

// WriteReport writes a listing of an automaton in the manner of y.output:
// for every state its kernel items, its transitions and its reductions,
// followed by the state's conflicts, if any.
//
//    state 1
//        S ::= a .
//
//        reduce 1  (S ::= a)
//
func WriteReport(w io.Writer, g *grammar.Grammar, out *Output) error {
	bw := bufio.NewWriter(w)
	conflicts := Conflicts(g, out)
	c := 0
	for state := range out.States {
		fmt.Fprintf(bw, "state %d\n", state)
		for _, item := range out.States[state].Items {
			fmt.Fprintf(bw, "    %s\n", g.ItemString(item))
		}
		bw.WriteByte('\n')
		trans := out.Transitions(state)
		for _, t := range trans {
			verb := "goto"
			if g.IsTerminal(t.Symbol) {
				verb = "shift"
			}
			fmt.Fprintf(bw, "    %-12s %s %d\n", g.Names[t.Symbol], verb, t.To)
		}
		reds := out.ReductionsOf(state)
		for _, r := range reds {
			if r == 0 {
				fmt.Fprintf(bw, "    accept    (%s)\n", g.RuleString(r))
				continue
			}
			fmt.Fprintf(bw, "    reduce %d  (%s)\n", r, g.RuleString(r))
		}
		for ; c < len(conflicts) && conflicts[c].State == state; c++ {
			fmt.Fprintf(bw, "    %s conflict\n", conflicts[c].Kind)
		}
		if len(trans)+len(reds) > 0 {
			bw.WriteByte('\n')
		}
	}
	fmt.Fprintf(bw, "%d terminals, %d non-terminals\n", g.NTokens, g.NVars)
	fmt.Fprintf(bw, "%d grammar rules, %d states\n", g.NRules, out.NStates())
	if len(conflicts) > 0 {
		fmt.Fprintf(bw, "%d conflicts\n", len(conflicts))
	}
	return bw.Flush()
}
