/*
Package lrcore is the automaton-construction core of an LR parser generator.

Given a context-free grammar in flattened form, lrcore builds the canonical
LR(0) state machine: the parser states, the shift (goto) transitions between
them and the reductions valid in each state. Downstream stages (lookahead
computation, conflict resolution, table emission) consume this skeleton.
Package structure is as follows:

■ grammar: Package grammar holds the flattened grammar representation, together
with a fluent builder, a yacc-like text reader and an EBNF importer.

■ lr: Package lr constructs the LR(0) automaton and provides reports, a CFSM view,
a GOTO table and Graphviz/HTML exports.

■ lr/closure: Package closure computes item closures over a precomputed
first-derives relation.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lrcore
