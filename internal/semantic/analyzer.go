// Package semantic implements the post-parse analysis of one line.
//
// The Analyzer walks the AST in the order an LR parser would reduce it
// (operands before the node that consumes them), checks names and list
// accesses against the symbol table, folds constant values, and commits
// assignments to the table as it goes.
//
// Writes committed before a later failure on the same line stay in the
// table unless the analyzer runs with rollback enabled.
package semantic

import (
	"tlog.app/go/tlog"

	"github.com/hassan/laika/internal/parser/ast"
	"github.com/hassan/laika/internal/semantic/types"
	"github.com/hassan/laika/internal/symtab"
)

// Analyzer checks lines against a symbol table shared across a run.
type Analyzer struct {
	table *symtab.Table

	// rollback restores the table when a line fails.
	rollback bool

	maxListSize int

	// exprTypes records the type of every expression of the last line.
	exprTypes map[ast.Expr]types.Type
}

// Option configures an Analyzer.
type Option func(a *Analyzer)

// WithRollback makes a failed line leave the table untouched.
func WithRollback(on bool) Option {
	return func(a *Analyzer) {
		a.rollback = on
	}
}

// WithMaxListSize sets the largest list a declaration may create.
func WithMaxListSize(n int) Option {
	return func(a *Analyzer) {
		a.maxListSize = n
	}
}

// DefaultMaxListSize is the list size limit of a new Analyzer.
const DefaultMaxListSize = 1 << 16

// New creates an analyzer over table.
func New(table *symtab.Table, opts ...Option) *Analyzer {
	a := &Analyzer{
		table:       table,
		maxListSize: DefaultMaxListSize,
		exprTypes:   make(map[ast.Expr]types.Type),
	}

	for _, o := range opts {
		o(a)
	}

	return a
}

// Analyze checks one line and applies its assignments. It returns the
// folded value of the root expression (nil, int64 or float64) and a
// *diag.Error on failure.
func (a *Analyzer) Analyze(root ast.Expr) (val interface{}, err error) {
	a.exprTypes = make(map[ast.Expr]types.Type)

	var snap *symtab.Table
	if a.rollback {
		snap = a.table.Snapshot()
	}

	val, err = root.Accept(a)
	if err != nil {
		if snap != nil {
			a.table.Restore(snap)
		}

		tlog.V("semantic").Printw("line rejected", "err", err, "rollback", a.rollback)

		return nil, err
	}

	return val, nil
}

// Table returns the symbol table the analyzer works on.
func (a *Analyzer) Table() *symtab.Table {
	return a.table
}

// GetExprType returns the type recorded for expr during the last Analyze.
func (a *Analyzer) GetExprType(expr ast.Expr) types.Type {
	if t, ok := a.exprTypes[expr]; ok {
		return t
	}
	return types.Invalid
}

func (a *Analyzer) record(expr ast.Expr, t types.Type) {
	a.exprTypes[expr] = t
}
