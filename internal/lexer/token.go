package lexer

import (
	"math"
	"strconv"
	"strings"
)

// TokenType represents the kind of a token.
type TokenType int

// Token kinds of the expression language.
const (
	// TokenEOF marks the end of a line. Tokenize never returns it; the parser
	// synthesizes one after the last token.
	TokenEOF TokenType = iota

	// TokenInvalid is a run of characters outside the language alphabet.
	// It is not fatal to the lexer; the parser rejects it.
	TokenInvalid

	// Literals
	TokenInt  // 42
	TokenReal // 3.14, .5, 3., 2e10

	// Identifiers and keywords
	TokenIdent // x, _tmp1
	TokenList  // list

	// Arithmetic
	TokenPlus          // +
	TokenMinus         // -
	TokenTimes         // *
	TokenDivide        // /
	TokenIntegerDivide // //
	TokenPow           // ^

	// Comparison
	TokenEqual        // ==
	TokenNotEqual     // !=
	TokenGreater      // >
	TokenGreaterEqual // >=
	TokenLess         // <
	TokenLessEqual    // <=

	TokenAssign // =

	// Delimiters
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenLeftBracket  // [
	TokenRightBracket // ]
)

// Token is a single lexical token. Tokens are values and are never mutated
// after the lexer creates them.
type Token struct {
	Type TokenType

	// Lexeme is the source text of the token.
	Lexeme string

	// Int and Real hold the numeric value of TokenInt and TokenReal.
	Int  int64
	Real float64

	Position Position
}

// String returns "TYPE(lexeme) at line:column", used in traces.
func (t Token) String() string {
	return t.Type.String() + "(" + t.Lexeme + ") at " + t.Position.String()
}

// Value renders the token value the way it appears in dumps and immediates:
// integers in decimal, reals via FormatReal, everything else as its lexeme.
func (t Token) Value() string {
	switch t.Type {
	case TokenInt:
		return strconv.FormatInt(t.Int, 10)
	case TokenReal:
		return FormatReal(t.Real)
	default:
		return t.Lexeme
	}
}

// Dump renders the token as "value/KIND".
func (t Token) Dump() string {
	return t.Value() + "/" + t.Type.String()
}

// Span returns the source span covered by the token.
func (t Token) Span() Span {
	return Span{
		Start: t.Position,
		End: Position{
			Line:   t.Position.Line,
			Column: t.Position.Column + len(t.Lexeme),
		},
	}
}

// String returns the kind name used in token dumps.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenInvalid:
		return "INVALID"
	case TokenInt:
		return "INT"
	case TokenReal:
		return "REAL"
	case TokenIdent:
		return "IDENT"
	case TokenList:
		return "LIST_KEYWORD"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenTimes:
		return "TIMES"
	case TokenDivide:
		return "DIVIDE"
	case TokenIntegerDivide:
		return "INTEGER_DIVIDE"
	case TokenPow:
		return "POW"
	case TokenEqual:
		return "EQ"
	case TokenNotEqual:
		return "NEQ"
	case TokenGreater:
		return "GT"
	case TokenGreaterEqual:
		return "GE"
	case TokenLess:
		return "LT"
	case TokenLessEqual:
		return "LE"
	case TokenAssign:
		return "ASSIGN"
	case TokenLeftParen:
		return "LPAREN"
	case TokenRightParen:
		return "RPAREN"
	case TokenLeftBracket:
		return "LBRACKET"
	case TokenRightBracket:
		return "RBRACKET"
	default:
		return "UNKNOWN"
	}
}

var keywords = map[string]TokenType{
	"list": TokenList,
}

// LookupKeyword returns the keyword kind for identifier, or TokenIdent.
func LookupKeyword(identifier string) TokenType {
	if tokenType, ok := keywords[identifier]; ok {
		return tokenType
	}
	return TokenIdent
}

// IsOperator reports whether the token is a binary operator.
func (tt TokenType) IsOperator() bool {
	return tt >= TokenPlus && tt <= TokenLessEqual
}

// IsComparison reports whether the token is a comparison operator.
func (tt TokenType) IsComparison() bool {
	return tt >= TokenEqual && tt <= TokenLessEqual
}

// IsLiteral reports whether the token is a numeric literal.
func (tt TokenType) IsLiteral() bool {
	return tt == TokenInt || tt == TokenReal
}

// FormatReal renders a float for dumps and immediates: always with a
// fractional part or an exponent, so 3 prints as "3.0" and 1e20 as "1e+20".
func FormatReal(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	if f != 0 {
		exp := math.Floor(math.Log10(math.Abs(f)))
		if exp < -4 || exp >= 16 {
			return strconv.FormatFloat(f, 'e', -1, 64)
		}
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
