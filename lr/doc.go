/*
Package lr constructs LR(0) automata.

Grammars are created with package grammar, either with a builder or read
from a text file. Build computes the automaton in a single pass:

    g, err := grammar.Read("G", strings.NewReader(`
        S : a | ;
    `))
    out, err := lr.Build(g)

This results in the following states:

    state 0  S' ::= . S     shift a => 1, goto S => 2, reduce S ::=
    state 1  S  ::= a .     reduce S ::= a
    state 2  S' ::= S .     accept

States are identified by their kernel items, i.e. the items of a state which
are not initial items of a rule (plus the initial items of the start rules in
state 0). Closure and successor kernels are computed on the fly for every state
in order of creation, and new states are appended at the end. This makes the
numbering of states deterministic for a given grammar.

Besides states, shifts and reductions, the output contains the derivation
table (rules per non-terminal) and the set of nullable symbols, as needed by
subsequent lookahead computations.

Diagnostics

WriteReport lists an automaton in the manner of yacc's y.output. A CFSM object
graph may be created from an Output for debugging purposes and exported to
Graphviz's Dot-format. GOTO tables are stored as sparse matrices and may be
exported to HTML.

If the trace level for key 'lrcore.lr' is set to Debug, Build narrates each
step of the construction.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrcore.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lrcore.lr")
}
