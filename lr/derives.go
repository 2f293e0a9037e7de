package lr

import (
	"github.com/npillmayer/lrcore/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// Derives computes the derivation table of a grammar. For every non-terminal A,
// derives[A] is the start index into derivesRules of the list of rules with
// left-hand side A. Each list is terminated by -1.
//
// derives is indexed by symbol; entries for terminals are unused.
func Derives(g *grammar.Grammar) (derives []int, derivesRules []int) {
	derives = make([]int, g.NSyms)
	derivesRules = make([]int, 0, g.NVars+g.NRules)
	for lhs := g.StartSymbol; lhs < g.NSyms; lhs++ {
		derives[lhs] = len(derivesRules)
		for r := 0; r < g.NRules; r++ {
			if g.Rlhs[r] == lhs {
				derivesRules = append(derivesRules, r)
			}
		}
		derivesRules = append(derivesRules, -1)
	}
	if tracer().GetTraceLevel() == tracing.LevelDebug {
		traceDerives(g, derives, derivesRules)
	}
	return derives, derivesRules
}

func traceDerives(g *grammar.Grammar, derives []int, derivesRules []int) {
	tracer().Debugf("DERIVES:")
	for lhs := g.StartSymbol; lhs < g.NSyms; lhs++ {
		tracer().Debugf("    %s derives rules:", g.Names[lhs])
		for sp := derives[lhs]; derivesRules[sp] >= 0; sp++ {
			tracer().Debugf("        %s", g.RuleString(derivesRules[sp]))
		}
	}
}
