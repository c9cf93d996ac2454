package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tlog.app/go/errors"

	"github.com/hassan/laika/internal/lexer"
)

func TestErrorMessages(t *testing.T) {
	pos := lexer.Position{Line: 3, Column: 4}

	tests := []struct {
		err  *Error
		want string
	}{
		{Syntax(lexer.Token{Lexeme: ")", Position: pos}), "SyntaxError at line 3, pos 5"},
		{Undefined("y", pos), "Undefined variable 'y' at line 3, pos 5"},
		{NotList("x", pos), "Variable 'x' is not a list at line 3, pos 5"},
		{OutOfRange("x", 4, 2, pos), "Index 4 out of range for list 'x' of size 2 at line 3, pos 5"},
		{OutOfRange("x", -1, 2, pos), "Index -1 out of range for list 'x' of size 2 at line 3, pos 5"},
		{New(NonIntegerIndex, "1.5", pos), "List index must be an integer, got 1.5 at line 3, pos 5"},
		{New(NonIntegerListElement, "2.5", pos), "List elements must be integers, got 2.5 at line 3, pos 5"},
		{New(InvalidListSize, "0", pos), "List size must be a positive integer, got 0 at line 3, pos 5"},
		{TooLarge(1<<40, 65536, pos), "List size 1099511627776 exceeds the limit of 65536 at line 3, pos 5"},
		{Mismatch("list declaration outside assignment"), "list declaration outside assignment"},
		{Internal(3, "boom"), "Internal error at line 3: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKindOf(t *testing.T) {
	err := errors.Wrap(Undefined("y", lexer.Position{Line: 1}), "line 1")

	d, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "y", d.Name)
	assert.Equal(t, UndefinedVariable, KindOf(err))

	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
