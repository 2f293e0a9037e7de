/*
Package scanner defines an interface for scanners reading grammar sources.

The default implementation is an adapter for lexmachine, living in sub-package
`lexmach`. Package grammar uses it to tokenize yacc-like grammar files.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/lrcore"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrcore.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lrcore.scanner")
}

// EOF is the token type every Tokenizer returns at the end of input.
// It has the same value as text/scanner.EOF.
const EOF lrcore.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() lrcore.Token
	SetErrorHandler(func(error))
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the lexmachine adapter.
type DefaultToken struct {
	kind   lrcore.TokType
	lexeme string
	span   lrcore.Span
}

var _ lrcore.Token = DefaultToken{}

// MakeDefaultToken creates a token from its parts.
func MakeDefaultToken(typ lrcore.TokType, lexeme string, span lrcore.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() lrcore.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() lrcore.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == EOF {
		return "<EOF>"
	}
	return fmt.Sprintf("%q%v", t.lexeme, t.span)
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}
