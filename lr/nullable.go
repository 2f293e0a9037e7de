package lr

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/npillmayer/lrcore/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// Nullable computes the set of symbols deriving the empty string.
//
// We iterate over the packed right-hand sides until a full pass does not
// change the set: a rule with all of its right-hand side symbols nullable
// makes its left-hand side nullable.
func Nullable(g *grammar.Grammar) *bitset.BitSet {
	nullable := bitset.New(uint(g.NSyms))
	for done := false; !done; {
		done = true
		for i := 0; i < g.NItems; i++ {
			empty := true
			for ; g.Ritem[i] >= 0; i++ {
				if !nullable.Test(uint(g.Ritem[i])) {
					empty = false
				}
			}
			if !empty {
				continue
			}
			lhs := uint(g.Rlhs[grammar.RuleOfSentinel(g.Ritem[i])])
			if !nullable.Test(lhs) {
				nullable.Set(lhs)
				done = false
			}
		}
	}
	if tracer().GetTraceLevel() == tracing.LevelDebug {
		for sym := g.StartSymbol; sym < g.NSyms; sym++ {
			if nullable.Test(uint(sym)) {
				tracer().Debugf("%s is nullable", g.Names[sym])
			} else {
				tracer().Debugf("%s is not nullable", g.Names[sym])
			}
		}
	}
	return nullable
}
