// Package diag defines the per-line diagnostics reported by the parser,
// the semantic pass and the generator.
package diag

import (
	"fmt"

	"tlog.app/go/errors"

	"github.com/hassan/laika/internal/lexer"
)

// Kind classifies a diagnostic.
type Kind int

const (
	SyntaxError Kind = iota + 1
	UndefinedVariable
	NotAList
	IndexOutOfRange
	NonIntegerIndex
	NonIntegerListElement
	InvalidListSize
	GenerationMismatch

	// InternalError is a failure of the translator itself on one line.
	InternalError
)

// Error is a diagnostic attached to one source line.
//
// Error() renders the text written to the parse dump, for example
// "Undefined variable 'y' at line 3, pos 1".
type Error struct {
	Kind Kind
	Pos  lexer.Position

	// Name is the variable involved, if any.
	Name string

	// Value is the offending index, size or element rendered as text.
	Value string

	// Size is the list length for IndexOutOfRange, or the size limit
	// exceeded for InvalidListSize.
	Size int

	// Msg is the text of GenerationMismatch and InternalError.
	Msg string
}

func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case UndefinedVariable:
		return "UndefinedVariable"
	case NotAList:
		return "NotAList"
	case IndexOutOfRange:
		return "IndexOutOfRange"
	case NonIntegerIndex:
		return "NonIntegerIndex"
	case NonIntegerListElement:
		return "NonIntegerListElement"
	case InvalidListSize:
		return "InvalidListSize"
	case GenerationMismatch:
		return "GenerationMismatch"
	case InternalError:
		return "InternalError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (e *Error) Error() string {
	at := fmt.Sprintf("at line %d, pos %d", e.Pos.Line, e.Pos.Pos())

	switch e.Kind {
	case SyntaxError:
		return "SyntaxError " + at
	case UndefinedVariable:
		return fmt.Sprintf("Undefined variable '%s' %s", e.Name, at)
	case NotAList:
		return fmt.Sprintf("Variable '%s' is not a list %s", e.Name, at)
	case IndexOutOfRange:
		return fmt.Sprintf("Index %s out of range for list '%s' of size %d %s", e.Value, e.Name, e.Size, at)
	case NonIntegerIndex:
		return fmt.Sprintf("List index must be an integer, got %s %s", e.Value, at)
	case NonIntegerListElement:
		return fmt.Sprintf("List elements must be integers, got %s %s", e.Value, at)
	case InvalidListSize:
		if e.Size > 0 {
			return fmt.Sprintf("List size %s exceeds the limit of %d %s", e.Value, e.Size, at)
		}
		return fmt.Sprintf("List size must be a positive integer, got %s %s", e.Value, at)
	case GenerationMismatch:
		return e.Msg
	case InternalError:
		return fmt.Sprintf("Internal error at line %d: %s", e.Pos.Line, e.Msg)
	default:
		return e.Kind.String() + " " + at
	}
}

// Syntax reports a grammar mismatch at the offending token.
func Syntax(tok lexer.Token) *Error {
	return &Error{Kind: SyntaxError, Pos: tok.Position, Value: tok.Lexeme}
}

// Undefined reports a read of a name missing from the symbol table.
func Undefined(name string, pos lexer.Position) *Error {
	return &Error{Kind: UndefinedVariable, Pos: pos, Name: name}
}

// NotList reports indexing of a scalar.
func NotList(name string, pos lexer.Position) *Error {
	return &Error{Kind: NotAList, Pos: pos, Name: name}
}

// OutOfRange reports an index outside [0, size).
func OutOfRange(name string, index int64, size int, pos lexer.Position) *Error {
	return &Error{Kind: IndexOutOfRange, Pos: pos, Name: name, Value: fmt.Sprint(index), Size: size}
}

// Mismatch reports an AST shape the generator has no rule for.
func Mismatch(format string, args ...interface{}) *Error {
	return &Error{Kind: GenerationMismatch, Msg: fmt.Sprintf(format, args...)}
}

// TooLarge reports a list size above limit.
func TooLarge(size int64, limit int, pos lexer.Position) *Error {
	return &Error{Kind: InvalidListSize, Pos: pos, Value: fmt.Sprint(size), Size: limit}
}

// Internal reports an unexpected failure while translating line.
func Internal(line int, format string, args ...interface{}) *Error {
	return &Error{Kind: InternalError, Pos: lexer.Position{Line: line}, Msg: fmt.Sprintf(format, args...)}
}

// New creates a diagnostic of kind k carrying a rendered value.
func New(k Kind, value string, pos lexer.Position) *Error {
	return &Error{Kind: k, Pos: pos, Value: value}
}

// As returns the diagnostic wrapped in err, if any.
func As(err error) (*Error, bool) {
	var d *Error
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

// KindOf returns the kind of the diagnostic wrapped in err, or 0.
func KindOf(err error) Kind {
	if d, ok := As(err); ok {
		return d.Kind
	}
	return 0
}
