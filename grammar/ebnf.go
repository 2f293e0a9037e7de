package grammar

import (
	"fmt"
	"io"
	"sort"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// FromEBNF imports a grammar written in the EBNF dialect of package
// golang.org/x/exp/ebnf, e.g.
//
//    Expr   = Term { "+" Term } .
//    Term   = number | "(" Expr ")" .
//    number = "0" … "9" .
//
// The grammar is verified for start before conversion. Productions with an
// upper-case name become non-terminals; tokens and lexical (lower-case)
// productions become terminals, the latter named after the production.
// Groups, options and repetitions are replaced by auxiliary non-terminals
// Name_1, Name_2, …:
//
//    ( body )   =>   X -> body
//    [ body ]   =>   X -> body | ε
//    { body }   =>   X -> X body | ε
//
// Character ranges are only allowed within lexical productions.
func FromEBNF(name string, r io.Reader, start string) (*Grammar, error) {
	eg, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, err
	}
	if err = ebnf.Verify(eg, start); err != nil {
		return nil, err
	}
	if isLexical(start) {
		return nil, fmt.Errorf("%s: start production %s is lexical", name, start)
	}
	conv := &ebnfConverter{
		eg:  eg,
		b:   NewBuilder(name),
		aux: make(map[string]int),
	}
	conv.production(eg[start])
	var names []string
	for n := range eg {
		if n != start && !isLexical(n) {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	for _, n := range names {
		conv.production(eg[n])
	}
	if conv.err != nil {
		return nil, conv.err
	}
	g, err := conv.b.Grammar()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("imported EBNF grammar %s with %d rules", name, g.NRules)
	return g, nil
}

type ebnfConverter struct {
	eg    ebnf.Grammar
	b     *Builder
	aux   map[string]int // counter of auxiliary non-terminals per production
	queue []auxRule
	err   error
}

type auxRule struct {
	lhs  string
	expr ebnf.Expression
	kind auxKind
}

type auxKind int8

const (
	auxGroup auxKind = iota
	auxOption
	auxRepetition
)

func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}

// production emits all rules for a non-lexical production, followed by the
// rules of the auxiliary non-terminals it introduced.
func (c *ebnfConverter) production(p *ebnf.Production) {
	lhs := p.Name.String
	c.alternatives(lhs, p.Expr)
	for len(c.queue) > 0 {
		a := c.queue[0]
		c.queue = c.queue[1:]
		switch a.kind {
		case auxGroup:
			c.alternatives(a.lhs, a.expr)
		case auxOption:
			c.alternatives(a.lhs, a.expr)
			c.b.LHS(a.lhs).Epsilon()
		case auxRepetition:
			c.repetition(a.lhs, a.expr)
		}
	}
}

func (c *ebnfConverter) alternatives(lhs string, x ebnf.Expression) {
	if alt, ok := x.(ebnf.Alternative); ok {
		for _, e := range alt {
			c.sequence(c.b.LHS(lhs), lhs, e).End()
		}
		return
	}
	c.sequence(c.b.LHS(lhs), lhs, x).End()
}

// repetition emits X -> X body for every alternative of body, and X -> ε.
func (c *ebnfConverter) repetition(lhs string, x ebnf.Expression) {
	if alt, ok := x.(ebnf.Alternative); ok {
		for _, e := range alt {
			c.sequence(c.b.LHS(lhs).N(lhs), lhs, e).End()
		}
	} else {
		c.sequence(c.b.LHS(lhs).N(lhs), lhs, x).End()
	}
	c.b.LHS(lhs).Epsilon()
}

func (c *ebnfConverter) sequence(rb *RuleBuilder, owner string, x ebnf.Expression) *RuleBuilder {
	switch e := x.(type) {
	case nil:
		// ε
	case ebnf.Sequence:
		for _, sub := range e {
			c.sequence(rb, owner, sub)
		}
	case *ebnf.Name:
		if isLexical(e.String) {
			rb.T(e.String)
		} else {
			rb.N(e.String)
		}
	case *ebnf.Token:
		rb.T(e.String)
	case *ebnf.Group:
		rb.N(c.auxiliary(owner, e.Body, auxGroup))
	case *ebnf.Option:
		rb.N(c.auxiliary(owner, e.Body, auxOption))
	case *ebnf.Repetition:
		rb.N(c.auxiliary(owner, e.Body, auxRepetition))
	case ebnf.Alternative:
		rb.N(c.auxiliary(owner, e, auxGroup))
	case *ebnf.Range:
		c.fail(fmt.Errorf("%s: range %s … %s outside of lexical production in %s",
			c.b.name, e.Begin.String, e.End.String, owner))
	default:
		c.fail(fmt.Errorf("%s: unsupported EBNF expression %T in %s", c.b.name, x, owner))
	}
	return rb
}

// auxiliary creates a fresh non-terminal for a sub-expression of production owner.
func (c *ebnfConverter) auxiliary(owner string, body ebnf.Expression, kind auxKind) string {
	var name string
	for name == "" || c.eg[name] != nil { // skip names taken by real productions
		c.aux[owner]++
		name = fmt.Sprintf("%s_%d", owner, c.aux[owner])
	}
	c.queue = append(c.queue, auxRule{lhs: name, expr: body, kind: kind})
	return name
}

func (c *ebnfConverter) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}
