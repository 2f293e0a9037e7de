package lrcore

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to scanners to define them.
type TokType int

// Tokens represent input tokens of grammar sources. They are produced by a scanner
// and carry the position where they occurred.
//
// An example would be a token for a quoted terminal in a grammar file:
//
//    TokType = Literal     // identifier for this kind of tokens (scanner specific)
//    Lexeme  = "'+'"       // lexeme how it appeared in the input stream
//    Span    = 67…70       // occured from byte position 67 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// Line returns the 1-based line number of the span's start position within input.
func (s Span) Line(input []byte) int {
	line := 1
	for i := uint64(0); i < s[0] && i < uint64(len(input)); i++ {
		if input[i] == '\n' {
			line++
		}
	}
	return line
}
