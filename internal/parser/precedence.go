package parser

import (
	"github.com/hassan/laika/internal/lexer"
)

// Precedence is the binding power of a binary operator.
//
// The grammar has two binary levels:
//
//	expression := expression (+ - == != > >= < <=) term | term
//	term       := term (* / // ^) factor | factor
//
// Both levels are left-associative, including ^. Assignment is not a
// binary operator; parseExpression handles it after the chain.
type Precedence int

const (
	PrecNone Precedence = iota
	PrecExpression // + - == != > >= < <=
	PrecTerm       // * / // ^
	PrecPrimary    // literals, names, list forms, grouping
)

func getPrecedence(tokenType lexer.TokenType) Precedence {
	switch tokenType {
	case lexer.TokenPlus,
		lexer.TokenMinus,
		lexer.TokenEqual,
		lexer.TokenNotEqual,
		lexer.TokenGreater,
		lexer.TokenGreaterEqual,
		lexer.TokenLess,
		lexer.TokenLessEqual:
		return PrecExpression
	case lexer.TokenTimes,
		lexer.TokenDivide,
		lexer.TokenIntegerDivide,
		lexer.TokenPow:
		return PrecTerm
	default:
		return PrecNone
	}
}
