// Package symtab implements the symbol table shared by the semantic pass
// and the generator for the lifetime of one translation run.
//
// The table is flat: the language has no blocks or functions, so every
// name lives in a single namespace. Entries are created on first
// assignment, overwritten on re-assignment (the kind may change) and keep
// the slot of their first insertion in dumps.
package symtab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hassan/laika/internal/lexer"
	"github.com/hassan/laika/internal/semantic/types"
)

// Kind is the kind of a symbol.
type Kind int

const (
	// Scalar holds a single numeric value, or no value when the assigned
	// expression could not be folded.
	Scalar Kind = iota

	// List holds a fixed-size sequence of integers.
	List
)

// String returns the type column of the symbol dump.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "VAR"
	case List:
		return "LIST"
	default:
		return "UNKNOWN"
	}
}

// Symbol is one entry of the table.
type Symbol struct {
	Name string
	Kind Kind

	// Pos is where the name was (last) assigned.
	Pos lexer.Position

	// Value is nil, int64 or float64 for Scalar entries.
	Value interface{}

	// Elements backs List entries; its length is the declared size.
	Elements []int64
}

// String returns a human-readable representation for traces.
func (s *Symbol) String() string {
	return fmt.Sprintf("%v %s = %s at %v", s.Kind, s.Name, s.ValueString(), s.Pos)
}

// Len returns the number of list elements, 0 for scalars.
func (s *Symbol) Len() int {
	return len(s.Elements)
}

// Type returns the operand type of the symbol.
// A scalar with no known value is treated as INT.
func (s *Symbol) Type() types.Type {
	if s.Kind == List {
		return types.NewList(len(s.Elements))
	}
	if t := types.Of(s.Value); types.IsNumeric(t) {
		return t
	}
	return types.Int
}

// ValueString renders the value column of the symbol dump.
func (s *Symbol) ValueString() string {
	if s.Kind == List {
		var b strings.Builder

		b.WriteByte('[')
		for i, e := range s.Elements {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatInt(e, 10))
		}
		b.WriteByte(']')

		return b.String()
	}

	return FormatValue(s.Value)
}

func (s *Symbol) clone() *Symbol {
	c := *s
	if s.Elements != nil {
		c.Elements = append([]int64(nil), s.Elements...)
	}
	return &c
}

// FormatValue renders a folded value: ints in decimal, reals the way the
// token dump does, and nothing for no value.
func FormatValue(v interface{}) string {
	switch v := v.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return lexer.FormatReal(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
