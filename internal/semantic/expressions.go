package semantic

import (
	"tlog.app/go/tlog"

	"github.com/hassan/laika/internal/diag"
	"github.com/hassan/laika/internal/lexer"
	"github.com/hassan/laika/internal/parser/ast"
	"github.com/hassan/laika/internal/semantic/types"
	"github.com/hassan/laika/internal/symtab"
)

func (a *Analyzer) VisitIntLiteral(expr *ast.IntLiteral) (interface{}, error) {
	a.record(expr, types.Int)
	return expr.Value, nil
}

func (a *Analyzer) VisitRealLiteral(expr *ast.RealLiteral) (interface{}, error) {
	a.record(expr, types.Real)
	return expr.Value, nil
}

func (a *Analyzer) VisitVarRef(expr *ast.VarRef) (interface{}, error) {
	s := a.table.Lookup(expr.Name)
	if s == nil {
		return nil, diag.Undefined(expr.Name, expr.Pos())
	}

	a.record(expr, s.Type())

	if s.Kind == symtab.List {
		return nil, nil
	}

	return s.Value, nil
}

func (a *Analyzer) VisitBinaryOp(expr *ast.BinaryOp) (interface{}, error) {
	l, err := expr.Left.Accept(a)
	if err != nil {
		return nil, err
	}

	r, err := expr.Right.Accept(a)
	if err != nil {
		return nil, err
	}

	if expr.Op().IsComparison() {
		a.record(expr, types.Int)
	} else {
		a.record(expr, types.Promote(a.GetExprType(expr.Left), a.GetExprType(expr.Right)))
	}

	return fold(expr.Op(), l, r), nil
}

// VisitListDecl checks the size. The list itself is created by the
// enclosing assignment.
func (a *Analyzer) VisitListDecl(expr *ast.ListDecl) (interface{}, error) {
	v, err := expr.Size.Accept(a)
	if err != nil {
		return nil, err
	}

	n, ok := v.(int64)
	if !ok || n <= 0 {
		return nil, diag.New(diag.InvalidListSize, valueText(v, expr.Size), expr.Pos())
	}

	if n > int64(a.maxListSize) {
		return nil, diag.TooLarge(n, a.maxListSize, expr.Pos())
	}

	a.record(expr, types.NewList(int(n)))

	return nil, nil
}

func (a *Analyzer) VisitListAccess(expr *ast.ListAccess) (interface{}, error) {
	iv, err := expr.Index.Accept(a)
	if err != nil {
		return nil, err
	}

	s, idx, err := a.element(expr.Name, expr.Pos(), iv, expr.Index)
	if err != nil {
		return nil, err
	}

	a.record(expr, types.Int)

	return s.Elements[idx], nil
}

func (a *Analyzer) VisitListAssign(expr *ast.ListAssign) (interface{}, error) {
	iv, err := expr.Index.Accept(a)
	if err != nil {
		return nil, err
	}

	v, err := expr.Value.Accept(a)
	if err != nil {
		return nil, err
	}

	s, idx, err := a.element(expr.Name, expr.Pos(), iv, expr.Index)
	if err != nil {
		return nil, err
	}

	elem, ok := v.(int64)
	if !ok {
		return nil, diag.New(diag.NonIntegerListElement, valueText(v, expr.Value), expr.Pos())
	}

	s.Elements[idx] = elem

	tlog.V("semantic").Printw("list element set", "name", s.Name, "index", idx, "value", elem)

	a.record(expr, types.Int)

	return elem, nil
}

func (a *Analyzer) VisitAssign(expr *ast.Assign) (interface{}, error) {
	v, err := expr.Value.Accept(a)
	if err != nil {
		return nil, err
	}

	kind, value := symtab.Scalar, v

	switch rhs := expr.Value.(type) {
	case *ast.ListDecl:
		lt := a.GetExprType(rhs).(*types.ListType)
		kind, value = symtab.List, make([]int64, lt.Size)
	case *ast.VarRef:
		if src := a.table.Lookup(rhs.Name); src != nil && src.Kind == symtab.List {
			kind, value = symtab.List, append([]int64{}, src.Elements...)
		}
	}

	s, err := a.table.Insert(expr.Name, kind, expr.Pos(), value)
	if err != nil {
		return nil, err
	}

	a.record(expr, s.Type())

	if kind == symtab.List {
		return nil, nil
	}

	return v, nil
}

// element resolves name[iv] for reading or writing.
func (a *Analyzer) element(name string, pos lexer.Position, iv interface{}, index ast.Expr) (*symtab.Symbol, int, error) {
	s := a.table.Lookup(name)
	if s == nil {
		return nil, 0, diag.Undefined(name, pos)
	}

	if s.Kind != symtab.List {
		return nil, 0, diag.NotList(name, pos)
	}

	i, ok := iv.(int64)
	if !ok {
		return nil, 0, diag.New(diag.NonIntegerIndex, valueText(iv, index), pos)
	}

	if i < 0 || i >= int64(s.Len()) {
		return nil, 0, diag.OutOfRange(name, i, s.Len(), pos)
	}

	return s, int(i), nil
}

// valueText renders an offending value for a diagnostic, falling back to
// the expression itself when it has no constant value.
func valueText(v interface{}, expr ast.Expr) string {
	if v == nil {
		return ast.Format(expr)
	}

	return symtab.FormatValue(v)
}
