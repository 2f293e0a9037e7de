package grammar

import (
	"fmt"
)

// Symbol table for grammar symbols, used while a grammar is under construction.
// Symbols are referenced by name; their kind is fixed by their first usage.

// --- Tags -------------------------------------------------------

type symKind int8

const (
	undefinedKind symKind = iota
	terminalKind
	nonTerminalKind
)

func (k symKind) String() string {
	switch k {
	case terminalKind:
		return "terminal"
	case nonTerminalKind:
		return "non-terminal"
	}
	return "undefined"
}

// symTag is a symbol as seen by the builder. Serial numbers are assigned later,
// when the grammar is flattened.
type symTag struct {
	name    string
	kind    symKind
	defined bool // non-terminal has at least one rule
	serial  int
}

func (s *symTag) String() string {
	return fmt.Sprintf("<sym '%s':%s>", s.name, s.kind)
}

// === Symbol Tables =========================================================

// symbolTable stores tags (map-like semantics) and remembers the order of
// first appearance per kind.
type symbolTable struct {
	table        map[string]*symTag
	terminals    []*symTag
	nonterminals []*symTag // ordered by first definition as a left-hand side
	clashes      []string
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		table: make(map[string]*symTag),
	}
}

// resolve checks for a tag in the symbol table. Returns a tag or nil.
func (t *symbolTable) resolve(name string) *symTag {
	return t.table[name]
}

// resolveOrDefine finds a tag in the table, inserts a new one if not found.
// A tag used with conflicting kinds is recorded as a clash.
func (t *symbolTable) resolveOrDefine(name string, kind symKind) *symTag {
	tag := t.resolve(name)
	if tag == nil {
		tag = &symTag{name: name, kind: kind}
		t.table[name] = tag
		if kind == terminalKind {
			t.terminals = append(t.terminals, tag)
		}
		return tag
	}
	if tag.kind != kind {
		t.clashes = append(t.clashes, name)
	}
	return tag
}

// define marks a non-terminal as having rules.
func (t *symbolTable) define(tag *symTag) {
	if !tag.defined {
		tag.defined = true
		t.nonterminals = append(t.nonterminals, tag)
	}
}

// undefined returns all non-terminals which are referenced but have no rules.
func (t *symbolTable) undefined() []string {
	var names []string
	for _, tag := range t.table {
		if tag.kind == nonTerminalKind && !tag.defined {
			names = append(names, tag.name)
		}
	}
	return names
}

func (t *symbolTable) size() int {
	return len(t.table)
}
