// Package lexer provides lexical analysis (tokenization) for laika source lines.
// It turns one line of text into an ordered sequence of typed tokens and knows
// nothing about grammar or symbol state.
package lexer

import "strconv"

// Position is a location inside a single source line.
//
// Line is the 1-based line number of the statement; Column is the 0-based
// offset of the first character of the token inside that line. Diagnostics
// shown to users print Column+1 (see Pos).
type Position struct {
	Line   int
	Column int
}

// String returns "line:column" with the 0-based column.
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Pos is the 1-based position within the line used in diagnostic messages.
func (p Position) Pos() int {
	return p.Column + 1
}

// Span is the range [Start, End) covered by a token.
type Span struct {
	Start Position
	End   Position
}
