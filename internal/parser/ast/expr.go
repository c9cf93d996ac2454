package ast

import (
	"github.com/hassan/laika/internal/lexer"
)

// IntLiteral is an INT token.
type IntLiteral struct {
	Token lexer.Token
	Value int64
}

func (l *IntLiteral) Pos() lexer.Position { return l.Token.Position }
func (l *IntLiteral) End() lexer.Position { return endOf(l.Token) }
func (l *IntLiteral) exprNode()           {}
func (l *IntLiteral) Accept(v Visitor) (interface{}, error) {
	return v.VisitIntLiteral(l)
}

// RealLiteral is a REAL token.
type RealLiteral struct {
	Token lexer.Token
	Value float64
}

func (l *RealLiteral) Pos() lexer.Position { return l.Token.Position }
func (l *RealLiteral) End() lexer.Position { return endOf(l.Token) }
func (l *RealLiteral) exprNode()           {}
func (l *RealLiteral) Accept(v Visitor) (interface{}, error) {
	return v.VisitRealLiteral(l)
}

// VarRef reads a scalar or list variable.
type VarRef struct {
	Token lexer.Token
	Name  string
}

func (r *VarRef) Pos() lexer.Position { return r.Token.Position }
func (r *VarRef) End() lexer.Position { return endOf(r.Token) }
func (r *VarRef) exprNode()           {}
func (r *VarRef) Accept(v Visitor) (interface{}, error) {
	return v.VisitVarRef(r)
}

// BinaryOp is a left-associative arithmetic or comparison operation.
type BinaryOp struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (b *BinaryOp) Pos() lexer.Position { return b.Left.Pos() }
func (b *BinaryOp) End() lexer.Position { return b.Right.End() }
func (b *BinaryOp) exprNode()           {}
func (b *BinaryOp) Accept(v Visitor) (interface{}, error) {
	return v.VisitBinaryOp(b)
}

// Op returns the operator kind.
func (b *BinaryOp) Op() lexer.TokenType { return b.Operator.Type }

// ListDecl is "list[size]". It is only meaningful as the right-hand side
// of an Assign.
type ListDecl struct {
	Keyword lexer.Token
	Size    Expr
	Rbrack  lexer.Position
}

func (d *ListDecl) Pos() lexer.Position { return d.Keyword.Position }
func (d *ListDecl) End() lexer.Position {
	return lexer.Position{Line: d.Rbrack.Line, Column: d.Rbrack.Column + 1}
}
func (d *ListDecl) exprNode() {}
func (d *ListDecl) Accept(v Visitor) (interface{}, error) {
	return v.VisitListDecl(d)
}

// ListAccess reads one list element: "name[index]".
type ListAccess struct {
	Token  lexer.Token
	Name   string
	Index  Expr
	Rbrack lexer.Position
}

func (a *ListAccess) Pos() lexer.Position { return a.Token.Position }
func (a *ListAccess) End() lexer.Position {
	return lexer.Position{Line: a.Rbrack.Line, Column: a.Rbrack.Column + 1}
}
func (a *ListAccess) exprNode() {}
func (a *ListAccess) Accept(v Visitor) (interface{}, error) {
	return v.VisitListAccess(a)
}

// Assign binds a name to a scalar value or a fresh list: "name = value".
type Assign struct {
	Token lexer.Token
	Name  string
	Value Expr
}

func (a *Assign) Pos() lexer.Position { return a.Token.Position }
func (a *Assign) End() lexer.Position { return a.Value.End() }
func (a *Assign) exprNode()           {}
func (a *Assign) Accept(v Visitor) (interface{}, error) {
	return v.VisitAssign(a)
}

// ListAssign writes one list element: "name[index] = value".
type ListAssign struct {
	Token lexer.Token
	Name  string
	Index Expr
	Value Expr
}

func (a *ListAssign) Pos() lexer.Position { return a.Token.Position }
func (a *ListAssign) End() lexer.Position { return a.Value.End() }
func (a *ListAssign) exprNode()           {}
func (a *ListAssign) Accept(v Visitor) (interface{}, error) {
	return v.VisitListAssign(a)
}
