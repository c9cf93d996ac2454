package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dump(toks []Token) string {
	parts := make([]string, len(toks))
	for i, tok := range toks {
		parts[i] = tok.Dump()
	}
	return strings.Join(parts, " ")
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"3+4", "3/INT +/PLUS 4/INT"},
		{"x = 5", "x/IDENT =/ASSIGN 5/INT"},
		{"a // b ^ c", "a/IDENT ///INTEGER_DIVIDE b/IDENT ^/POW c/IDENT"},
		{"a/b*c-d", "a/IDENT //DIVIDE b/IDENT */TIMES c/IDENT -/MINUS d/IDENT"},
		{"1 == 2 != 3", "1/INT ==/EQ 2/INT !=/NEQ 3/INT"},
		{"1 > 2 >= 3 < 4 <= 5", "1/INT >/GT 2/INT >=/GE 3/INT </LT 4/INT <=/LE 5/INT"},
		{"x = list[3]", "x/IDENT =/ASSIGN list/LIST_KEYWORD [/LBRACKET 3/INT ]/RBRACKET"},
		{"(x[1])", "(/LPAREN x/IDENT [/LBRACKET 1/INT ]/RBRACKET )/RPAREN"},
		{"listing", "listing/IDENT"},
		{"_tmp1", "_tmp1/IDENT"},
		{"", ""},
		{"  \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, dump(Tokenize(tt.source, 1)))
		})
	}
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		source string
		typ    TokenType
		want   string
	}{
		{"42", TokenInt, "42"},
		{"0", TokenInt, "0"},
		{"3.14", TokenReal, "3.14"},
		{".5", TokenReal, "0.5"},
		{"3.", TokenReal, "3.0"},
		{"2e10", TokenReal, "20000000000.0"},
		{"2.5e-3", TokenReal, "0.0025"},
		{"1E20", TokenReal, "1e+20"},
		{"1e-5", TokenReal, "1e-05"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			toks := Tokenize(tt.source, 1)
			require.Len(t, toks, 1)
			assert.Equal(t, tt.typ, toks[0].Type)
			assert.Equal(t, tt.want, toks[0].Value())
			assert.Equal(t, tt.source, toks[0].Lexeme)
		})
	}
}

func TestTokenizeExponentBacktrack(t *testing.T) {
	toks := Tokenize("2e", 1)

	require.Len(t, toks, 2)
	assert.Equal(t, TokenInt, toks[0].Type)
	assert.Equal(t, int64(2), toks[0].Int)
	assert.Equal(t, TokenIdent, toks[1].Type)
	assert.Equal(t, "e", toks[1].Lexeme)
}

func TestTokenizeInvalid(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"x = $#", "x/IDENT =/ASSIGN $#/INVALID"},
		{"!x", "!/INVALID x/IDENT"},
		{"a . b", "a/IDENT ./INVALID b/IDENT"},
		{"1 @ 2", "1/INT @/INVALID 2/INT"},
		{"a,b", "a/IDENT ,/INVALID b/IDENT"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, dump(Tokenize(tt.source, 1)))
		})
	}
}

func TestTokenizePositions(t *testing.T) {
	toks := Tokenize("  ab = 12 + .5", 7)

	want := []Position{
		{Line: 7, Column: 2},
		{Line: 7, Column: 5},
		{Line: 7, Column: 7},
		{Line: 7, Column: 10},
		{Line: 7, Column: 12},
	}

	require.Len(t, toks, len(want))

	for i, tok := range toks {
		assert.Equal(t, want[i], tok.Position, "token %d %v", i, tok)
	}
}

func TestNextTokenEOF(t *testing.T) {
	l := New("x", 1)

	tok := l.NextToken()
	require.Equal(t, TokenIdent, tok.Type)

	tok = l.NextToken()
	assert.Equal(t, TokenEOF, tok.Type)
	assert.Equal(t, 1, tok.Position.Column)

	tok = l.NextToken()
	assert.Equal(t, TokenEOF, tok.Type)
}
