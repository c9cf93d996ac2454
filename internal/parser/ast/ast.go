// Package ast defines the abstract syntax tree of one source line.
//
// A line is a single expression: the tree has no statements, and every
// successfully parsed line yields exactly one root Expr. Parentheses are
// not represented; grouping is implied by the tree shape and restored by
// Format.
package ast

import (
	"github.com/hassan/laika/internal/lexer"
)

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Pos returns the position of the first character of the node.
	Pos() lexer.Position

	// End returns the position just past the node.
	End() lexer.Position
}

// Expr is an expression node.
type Expr interface {
	Node
	Accept(v Visitor) (interface{}, error)
	exprNode()
}

// Visitor dispatches over the expression variants.
//
// Every pass over the tree (semantic analysis, code generation, printing)
// implements it, so adding a variant breaks every pass until handled.
type Visitor interface {
	VisitIntLiteral(expr *IntLiteral) (interface{}, error)
	VisitRealLiteral(expr *RealLiteral) (interface{}, error)
	VisitVarRef(expr *VarRef) (interface{}, error)
	VisitBinaryOp(expr *BinaryOp) (interface{}, error)
	VisitListDecl(expr *ListDecl) (interface{}, error)
	VisitListAccess(expr *ListAccess) (interface{}, error)
	VisitAssign(expr *Assign) (interface{}, error)
	VisitListAssign(expr *ListAssign) (interface{}, error)
}

func endOf(tok lexer.Token) lexer.Position {
	return lexer.Position{
		Line:   tok.Position.Line,
		Column: tok.Position.Column + len(tok.Lexeme),
	}
}
