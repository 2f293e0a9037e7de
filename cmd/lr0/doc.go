/*
Command lr0 builds the LR(0) automaton of a grammar and prints it.

Usage:

    lr0 [flags] grammar-file

Grammar files are read in yacc-like notation (see package grammar), or in
EBNF if flag -ebnf names the start production. Without further flags a
listing of all states is printed, in the manner of yacc's y.output.

Flags:

    -trace level   trace level [Debug|Info|Error]
    -ebnf start    read an EBNF grammar with the given start production
    -dot file      export the state diagram in Graphviz Dot format
    -html file     export the GOTO table in HTML format
    -tree          display states as a tree instead of a listing
    -hash          print a fingerprint of the automaton
    -i             explore the automaton interactively

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrcore.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("lrcore.cmd")
}
