/*
Package grammar implements the flattened grammar representation consumed by
the LR(0) construction of package lr.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Grammars may
contain epsilon-productions.

Example:

    b := grammar.NewBuilder("G")
    b.LHS("S").N("A").T("a").EOF()    // S  ->  A a #eof
    b.LHS("A").N("B").N("D").End()    // A  ->  B D
    b.LHS("B").T("b").End()           // B  ->  b
    b.LHS("B").Epsilon()              // B  ->
    b.LHS("D").T("d").End()           // D  ->  d
    b.LHS("D").Epsilon()              // D  ->
    g, err := b.Grammar()

This results in the following grammar, augmented by rule 0:

   g.Dump()

   0: S' ::= S
   1: S  ::= A a #eof
   2: A  ::= B D
   3: B  ::= b
   4: B  ::=
   5: D  ::= d
   6: D  ::=

Flattened Form

Symbols are small integers. Symbol 0 is the end marker #eof, followed by the
terminals in order of first appearance. The augmented start symbol S' comes
next (Grammar.StartSymbol), followed by the remaining non-terminals. Every
symbol below StartSymbol is a terminal.

All right-hand sides are packed into one sequence Ritem. Each rule's symbols
are followed by a negative sentinel ^r (i.e., -r-1), marking the end of rule r.
An item, i.e. a dotted rule, is an index into Ritem: the dot sits immediately
before Ritem[item].

Reading Grammars

Besides the builder, grammars may be read from a yacc-like text format with
Read, or be imported from EBNF (golang.org/x/exp/ebnf) with FromEBNF.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrcore.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("lrcore.grammar")
}
