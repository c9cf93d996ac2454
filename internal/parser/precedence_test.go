package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hassan/laika/internal/lexer"
)

func TestGetPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		token    lexer.TokenType
		expected Precedence
	}{
		{"plus", lexer.TokenPlus, PrecExpression},
		{"minus", lexer.TokenMinus, PrecExpression},
		{"equal", lexer.TokenEqual, PrecExpression},
		{"not equal", lexer.TokenNotEqual, PrecExpression},
		{"greater", lexer.TokenGreater, PrecExpression},
		{"greater equal", lexer.TokenGreaterEqual, PrecExpression},
		{"less", lexer.TokenLess, PrecExpression},
		{"less equal", lexer.TokenLessEqual, PrecExpression},

		{"times", lexer.TokenTimes, PrecTerm},
		{"divide", lexer.TokenDivide, PrecTerm},
		{"integer divide", lexer.TokenIntegerDivide, PrecTerm},
		{"pow", lexer.TokenPow, PrecTerm},

		{"assign", lexer.TokenAssign, PrecNone},
		{"left bracket", lexer.TokenLeftBracket, PrecNone},
		{"right paren", lexer.TokenRightParen, PrecNone},
		{"invalid", lexer.TokenInvalid, PrecNone},
		{"eof", lexer.TokenEOF, PrecNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getPrecedence(tt.token))
		})
	}
}

func TestPrecedenceOrdering(t *testing.T) {
	assert.Less(t, PrecNone, PrecExpression)
	assert.Less(t, PrecExpression, PrecTerm)
	assert.Less(t, PrecTerm, PrecPrimary)
}
