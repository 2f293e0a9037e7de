package grammar

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Builder is a fluent interface to construct grammars. Create one with
// NewBuilder, add rules with LHS(…) and finally call Grammar().
//
//    b := grammar.NewBuilder("G")
//    b.LHS("S").N("A").T("a").End()   // S -> A a
//    b.LHS("A").Epsilon()             // A ->
//    g, err := b.Grammar()
//
// The left-hand side of the first rule is the goal of the grammar. The builder
// augments the grammar with rule 0: S' -> goal.
type Builder struct {
	name    string
	symbols *symbolTable
	rules   []*draftRule
}

type draftRule struct {
	lhs *symTag
	rhs []*symTag
}

// NewBuilder creates an empty grammar builder.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:    name,
		symbols: newSymbolTable(),
	}
}

// RuleBuilder collects the right-hand side of a single rule.
type RuleBuilder struct {
	b    *Builder
	rule *draftRule
}

// LHS starts a new rule for non-terminal name.
func (b *Builder) LHS(name string) *RuleBuilder {
	tag := b.symbols.resolveOrDefine(name, nonTerminalKind)
	return &RuleBuilder{b: b, rule: &draftRule{lhs: tag}}
}

// N appends a non-terminal to the right-hand side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	tag := rb.b.symbols.resolveOrDefine(name, nonTerminalKind)
	rb.rule.rhs = append(rb.rule.rhs, tag)
	return rb
}

// T appends a terminal to the right-hand side.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	if name == EOFName {
		return rb.eof()
	}
	tag := rb.b.symbols.resolveOrDefine(name, terminalKind)
	rb.rule.rhs = append(rb.rule.rhs, tag)
	return rb
}

// End completes the rule. It returns the number the rule will have in the
// finished grammar.
func (rb *RuleBuilder) End() int {
	rb.b.symbols.define(rb.rule.lhs)
	rb.b.rules = append(rb.b.rules, rb.rule)
	tracer().Debugf("rule %d for %s with %d symbols", len(rb.b.rules), rb.rule.lhs.name, len(rb.rule.rhs))
	return len(rb.b.rules)
}

// Epsilon completes the rule with an empty right-hand side. Symbols appended
// before are discarded.
func (rb *RuleBuilder) Epsilon() int {
	rb.rule.rhs = nil
	return rb.End()
}

// EOF appends the end marker #eof and completes the rule.
func (rb *RuleBuilder) EOF() int {
	return rb.eof().End()
}

var eofTag = &symTag{name: EOFName, kind: terminalKind, serial: 0}

func (rb *RuleBuilder) eof() *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, eofTag)
	return rb
}

// Grammar flattens the rules into a Grammar. It returns an error if no rules
// have been added, if a name is used both as a terminal and a non-terminal, or
// if a non-terminal has no rules.
func (b *Builder) Grammar() (*Grammar, error) {
	if len(b.rules) == 0 {
		return nil, fmt.Errorf("grammar %s has no rules", b.name)
	}
	if len(b.symbols.clashes) > 0 {
		return nil, fmt.Errorf("grammar %s uses symbols as terminal and non-terminal: %s",
			b.name, strings.Join(b.symbols.clashes, ", "))
	}
	if undef := b.symbols.undefined(); len(undef) > 0 {
		sort.Strings(undef)
		return nil, fmt.Errorf("grammar %s has non-terminals without rules: %s",
			b.name, strings.Join(undef, ", "))
	}
	if b.symbols.resolve(EOFName) != nil {
		return nil, errors.New("name " + EOFName + " is reserved for the end marker")
	}
	g := &Grammar{Name: b.name}
	g.NTokens = len(b.symbols.terminals) + 1
	g.NVars = len(b.symbols.nonterminals) + 1
	g.NSyms = g.NTokens + g.NVars
	g.StartSymbol = g.NTokens
	g.Names = make([]string, 0, g.NSyms)
	g.Names = append(g.Names, EOFName)
	for i, tag := range b.symbols.terminals {
		tag.serial = i + 1
		g.Names = append(g.Names, tag.name)
	}
	goal := b.rules[0].lhs
	g.Names = append(g.Names, b.startName(goal.name))
	for i, tag := range b.symbols.nonterminals {
		tag.serial = g.StartSymbol + 1 + i
		g.Names = append(g.Names, tag.name)
	}
	g.NRules = len(b.rules) + 1
	g.Rlhs = make([]int, 0, g.NRules)
	g.Rrhs = make([]int, 0, g.NRules)
	g.Ritem = append(g.Ritem, goal.serial, Sentinel(0)) // rule 0: S' -> goal
	g.Rlhs = append(g.Rlhs, g.StartSymbol)
	g.Rrhs = append(g.Rrhs, 0)
	for i, rule := range b.rules {
		r := i + 1
		g.Rlhs = append(g.Rlhs, rule.lhs.serial)
		g.Rrhs = append(g.Rrhs, len(g.Ritem))
		for _, sym := range rule.rhs {
			g.Ritem = append(g.Ritem, sym.serial)
		}
		g.Ritem = append(g.Ritem, Sentinel(r))
	}
	g.NItems = len(g.Ritem)
	tracer().Infof("grammar %s: %d terminals, %d non-terminals, %d rules, %d items",
		g.Name, g.NTokens, g.NVars, g.NRules, g.NItems)
	return g, nil
}

// startName derives the name of the augmented start symbol from the goal.
func (b *Builder) startName(goal string) string {
	name := goal + "'"
	for b.symbols.resolve(name) != nil {
		name += "'"
	}
	return name
}
