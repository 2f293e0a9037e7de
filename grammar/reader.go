package grammar

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"sync"

	"github.com/npillmayer/lrcore"
	"github.com/npillmayer/lrcore/lr/scanner"
	"github.com/npillmayer/lrcore/lr/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// Read reads a grammar in a yacc-like notation:
//
//    // comments run to the end of the line
//    %start Expr
//    Expr   : Expr '+' Term
//           | Term
//           ;
//    Term   : id
//           | '(' Expr ')'
//           ;
//
// Identifiers appearing on the left-hand side of a rule are non-terminals,
// all other identifiers and all quoted literals are terminals. An empty
// alternative is an epsilon-production, #eof denotes the end marker.
// Without a %start directive the first rule defines the goal.
func Read(name string, r io.Reader) (*Grammar, error) {
	input, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read grammar %s: %w", name, err)
	}
	lm, err := grammarLexer()
	if err != nil {
		return nil, err
	}
	scan, err := lm.Scanner(string(input))
	if err != nil {
		return nil, err
	}
	p := &reader{name: name, input: input, scan: scan}
	scan.SetErrorHandler(func(e error) {
		if p.err == nil {
			p.err = fmt.Errorf("%s: %w", name, e)
		}
	})
	p.next()
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.build()
}

// --- Tokenizer -------------------------------------------------------------

const (
	tokID int = iota + 1
	tokLiteral
	tokStart
	tokEOF
	tokColon
	tokBar
	tokSemicolon
)

var tokenIds = map[string]int{
	"ID":      tokID,
	"LITERAL": tokLiteral,
	"%start":  tokStart,
	EOFName:   tokEOF,
	":":       tokColon,
	"|":       tokBar,
	";":       tokSemicolon,
}

var lexer struct {
	once sync.Once
	lm   *lexmach.LMAdapter
	err  error
}

func grammarLexer() (*lexmach.LMAdapter, error) {
	lexer.once.Do(func() {
		init := func(l *lexmachine.Lexer) {
			l.Add([]byte(`//[^\n]*\n?`), lexmach.Skip)
			l.Add([]byte(`'[^']+'`), lexmach.MakeToken("LITERAL", tokLiteral))
			l.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_|\.)*`), lexmach.MakeToken("ID", tokID))
			l.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		}
		literals := []string{":", "|", ";"}
		keywords := []string{"%start", EOFName}
		lexer.lm, lexer.err = lexmach.NewLMAdapter(init, literals, keywords, tokenIds)
	})
	return lexer.lm, lexer.err
}

// --- Recursive descent -----------------------------------------------------

type symRef struct {
	name    string
	literal bool
}

type ruleText struct {
	lhs  string
	alts [][]symRef
}

type reader struct {
	name   string
	input  []byte
	scan   scanner.Tokenizer
	token  lrcore.Token
	start  string
	rules  []*ruleText
	byName map[string]*ruleText
	err    error
}

func (p *reader) next() {
	p.token = p.scan.NextToken()
}

func (p *reader) is(typ int) bool {
	return p.token.TokType() == lrcore.TokType(typ)
}

func (p *reader) errorf(format string, args ...interface{}) error {
	line := p.token.Span().Line(p.input)
	return fmt.Errorf("%s:%d: %s", p.name, line, fmt.Sprintf(format, args...))
}

func (p *reader) found() string {
	if p.token.TokType() == scanner.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", p.token.Lexeme())
}

func (p *reader) expect(typ int, what string) (string, error) {
	if !p.is(typ) {
		return "", p.errorf("expected %s, found %s", what, p.found())
	}
	lexeme := p.token.Lexeme()
	p.next()
	return lexeme, nil
}

// file = { "%start" ID | rule } .
func (p *reader) parse() error {
	p.byName = make(map[string]*ruleText)
	for p.token.TokType() != scanner.EOF {
		if p.err != nil {
			return p.err
		}
		if p.is(tokStart) {
			p.next()
			goal, err := p.expect(tokID, "goal symbol after %start")
			if err != nil {
				return err
			}
			if p.start != "" {
				return p.errorf("duplicate %%start directive")
			}
			p.start = goal
			continue
		}
		if err := p.rule(); err != nil {
			return err
		}
	}
	return p.err
}

// rule = ID ":" alt { "|" alt } ";" .
func (p *reader) rule() error {
	lhs, err := p.expect(tokID, "rule name")
	if err != nil {
		return err
	}
	if _, err = p.expect(tokColon, "':'"); err != nil {
		return err
	}
	rt := p.byName[lhs]
	if rt == nil {
		rt = &ruleText{lhs: lhs}
		p.byName[lhs] = rt
		p.rules = append(p.rules, rt)
	}
	for {
		rt.alts = append(rt.alts, p.alternative())
		if !p.is(tokBar) {
			break
		}
		p.next()
	}
	_, err = p.expect(tokSemicolon, "'|' or ';'")
	return err
}

// alt = { ID | LITERAL | "#eof" } .
func (p *reader) alternative() []symRef {
	var alt []symRef
	for {
		switch {
		case p.is(tokID):
			alt = append(alt, symRef{name: p.token.Lexeme()})
		case p.is(tokLiteral):
			lexeme := p.token.Lexeme()
			alt = append(alt, symRef{name: lexeme[1 : len(lexeme)-1], literal: true})
		case p.is(tokEOF):
			alt = append(alt, symRef{name: EOFName, literal: true})
		default:
			return alt
		}
		p.next()
	}
}

// build feeds the parsed rules into a Builder, goal rules first.
func (p *reader) build() (*Grammar, error) {
	if len(p.rules) == 0 {
		return nil, fmt.Errorf("%s: grammar has no rules", p.name)
	}
	ordered := p.rules
	if p.start != "" {
		goal, ok := p.byName[p.start]
		if !ok {
			return nil, fmt.Errorf("%s: %%start symbol %s has no rules", p.name, p.start)
		}
		ordered = append([]*ruleText{goal}, without(p.rules, goal)...)
	}
	b := NewBuilder(p.name)
	for _, rt := range ordered {
		for _, alt := range rt.alts {
			rb := b.LHS(rt.lhs)
			for _, sym := range alt {
				if _, isNT := p.byName[sym.name]; isNT && !sym.literal {
					rb.N(sym.name)
				} else {
					rb.T(sym.name)
				}
			}
			rb.End()
		}
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}
	tracer().Debugf("read grammar %s with %d rules", p.name, g.NRules)
	return g, nil
}

func without(rules []*ruleText, skip *ruleText) []*ruleText {
	r := make([]*ruleText, 0, len(rules))
	for _, rt := range rules {
		if rt != skip {
			r = append(r, rt)
		}
	}
	return r
}

// MustRead is like Read, but panics on error. Intended for tests and examples.
func MustRead(name, src string) *Grammar {
	g, err := Read(name, strings.NewReader(src))
	if err != nil {
		panic(err)
	}
	return g
}
