// Package types implements the operand types of the expression language.
//
// There are two numeric types, INT and REAL, plus fixed-size integer
// lists. Mixing INT and REAL promotes to REAL; the generator turns that
// promotion into an FL.i conversion and selects the .f opcode variant.
package types

import "fmt"

// Type is the interface all operand types implement.
type Type interface {
	String() string
	Equals(other Type) bool

	kind() TypeKind
}

// TypeKind is used internally for quick type checks.
type TypeKind int

const (
	KindInvalid TypeKind = iota
	KindInt
	KindReal
	KindList
)

// InvalidType is the type of an expression that failed to check.
type InvalidType struct{}

func (i *InvalidType) String() string         { return "<invalid>" }
func (i *InvalidType) Equals(other Type) bool { return false }
func (i *InvalidType) kind() TypeKind         { return KindInvalid }

// IntType is the type of INT literals, integer variables and list elements.
type IntType struct{}

func (i *IntType) String() string         { return "INT" }
func (i *IntType) Equals(other Type) bool { _, ok := other.(*IntType); return ok }
func (i *IntType) kind() TypeKind         { return KindInt }

// RealType is the type of REAL literals and anything promoted from them.
type RealType struct{}

func (r *RealType) String() string         { return "REAL" }
func (r *RealType) Equals(other Type) bool { _, ok := other.(*RealType); return ok }
func (r *RealType) kind() TypeKind         { return KindReal }

// ListType is a fixed-size list of integers.
type ListType struct {
	Size int
}

func (l *ListType) String() string {
	return fmt.Sprintf("LIST[%d]", l.Size)
}

func (l *ListType) Equals(other Type) bool {
	if o, ok := other.(*ListType); ok {
		return l.Size == o.Size
	}
	return false
}

func (l *ListType) kind() TypeKind { return KindList }

var (
	Invalid = &InvalidType{}
	Int     = &IntType{}
	Real    = &RealType{}
)

// NewList creates a list type of the given size.
func NewList(size int) *ListType {
	return &ListType{Size: size}
}

// IsNumeric reports whether t is INT or REAL.
func IsNumeric(t Type) bool {
	switch t.(type) {
	case *IntType, *RealType:
		return true
	default:
		return false
	}
}

// IsReal reports whether t is REAL.
func IsReal(t Type) bool {
	_, ok := t.(*RealType)
	return ok
}

// IsList reports whether t is a list type.
func IsList(t Type) bool {
	_, ok := t.(*ListType)
	return ok
}

// Promote returns the common type of a binary arithmetic operation:
// REAL if either side is REAL, INT otherwise.
func Promote(a, b Type) Type {
	if !IsNumeric(a) || !IsNumeric(b) {
		return Invalid
	}
	if IsReal(a) || IsReal(b) {
		return Real
	}
	return Int
}

// Suffix returns the opcode variant selected by t: "f" for REAL, "i" otherwise.
func Suffix(t Type) string {
	if IsReal(t) {
		return "f"
	}
	return "i"
}

// Of returns the type of a folded constant value.
func Of(v interface{}) Type {
	switch v.(type) {
	case int64:
		return Int
	case float64:
		return Real
	default:
		return Invalid
	}
}
