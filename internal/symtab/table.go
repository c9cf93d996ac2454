package symtab

import (
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/hassan/laika/internal/lexer"
	"github.com/hassan/laika/internal/semantic/types"
)

// Table maps names to symbols and remembers insertion order.
//
// It is not safe for concurrent use; a translation run owns exactly one.
type Table struct {
	symbols map[string]*Symbol
	order   []string
}

// Record is one row of the symbol dump.
type Record struct {
	Lexeme string
	Line   int
	Column int
	Length int
	Type   string
	Value  string
}

// New creates an empty table.
func New() *Table {
	return &Table{
		symbols: make(map[string]*Symbol),
	}
}

// Insert creates or overwrites the entry for name. An overwritten entry
// keeps its position in Serialize order.
//
// value must be nil, int64 or float64 for Scalar, and []int64 for List.
func (t *Table) Insert(name string, kind Kind, pos lexer.Position, value interface{}) (*Symbol, error) {
	s := &Symbol{
		Name: name,
		Kind: kind,
		Pos:  pos,
	}

	switch kind {
	case Scalar:
		switch value.(type) {
		case nil, int64, float64:
			s.Value = value
		default:
			return nil, errors.New("scalar %v: unsupported value %T", name, value)
		}
	case List:
		elems, ok := value.([]int64)
		if !ok {
			return nil, errors.New("list %v: unsupported value %T", name, value)
		}

		s.Elements = elems
	default:
		return nil, errors.New("%v: unsupported kind %v", name, kind)
	}

	if _, ok := t.symbols[name]; !ok {
		t.order = append(t.order, name)
	}

	t.symbols[name] = s

	tlog.V("symtab").Printw("insert", "symbol", s)

	return s, nil
}

// Lookup returns the entry for name, or nil.
func (t *Table) Lookup(name string) *Symbol {
	return t.symbols[name]
}

// Remove deletes the entry for name if present.
func (t *Table) Remove(name string) {
	if _, ok := t.symbols[name]; !ok {
		return
	}

	delete(t.symbols, name)

	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.order)
}

// Export returns a snapshot of name to kind.
func (t *Table) Export() map[string]Kind {
	m := make(map[string]Kind, len(t.symbols))

	for name, s := range t.symbols {
		m[name] = s.Kind
	}

	return m
}

// Serialize returns the dump records in insertion order.
func (t *Table) Serialize() []Record {
	recs := make([]Record, 0, len(t.order))

	for _, name := range t.order {
		s := t.symbols[name]

		recs = append(recs, Record{
			Lexeme: s.Name,
			Line:   s.Pos.Line,
			Column: s.Pos.Column,
			Length: len(s.Name),
			Type:   s.Kind.String(),
			Value:  s.ValueString(),
		})
	}

	return recs
}

// Snapshot returns a deep copy of the table.
func (t *Table) Snapshot() *Table {
	c := &Table{
		symbols: make(map[string]*Symbol, len(t.symbols)),
		order:   append([]string(nil), t.order...),
	}

	for name, s := range t.symbols {
		c.symbols[name] = s.clone()
	}

	return c
}

// Restore replaces the table contents with a snapshot taken earlier.
func (t *Table) Restore(snap *Table) {
	c := snap.Snapshot()

	t.symbols = c.symbols
	t.order = c.order
}

// TypeOf returns the operand type of name, or types.Invalid if undefined.
func (t *Table) TypeOf(name string) types.Type {
	s := t.symbols[name]
	if s == nil {
		return types.Invalid
	}

	return s.Type()
}

// ListLen returns the size of list name. ok is false if name is not a list.
func (t *Table) ListLen(name string) (n int, ok bool) {
	s := t.symbols[name]
	if s == nil || s.Kind != List {
		return 0, false
	}

	return len(s.Elements), true
}
