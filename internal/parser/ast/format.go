package ast

import (
	"strconv"
	"strings"

	"github.com/hassan/laika/internal/lexer"
)

// Format renders e in the canonical bracketed form used by the parse dump:
//
//	(x=(3+2))            assignment
//	(x=(list[(3)]))      list declaration
//	(x[(1)])             list element read
//	((x[(1)])=2)         list element write
//
// The output lexes and parses back to an equivalent tree.
func Format(e Expr) string {
	var p printer

	_, _ = e.Accept(&p)

	return p.b.String()
}

// OpText returns the source spelling of a binary operator.
func OpText(tt lexer.TokenType) string {
	switch tt {
	case lexer.TokenPlus:
		return "+"
	case lexer.TokenMinus:
		return "-"
	case lexer.TokenTimes:
		return "*"
	case lexer.TokenDivide:
		return "/"
	case lexer.TokenIntegerDivide:
		return "//"
	case lexer.TokenPow:
		return "^"
	case lexer.TokenEqual:
		return "=="
	case lexer.TokenNotEqual:
		return "!="
	case lexer.TokenGreater:
		return ">"
	case lexer.TokenGreaterEqual:
		return ">="
	case lexer.TokenLess:
		return "<"
	case lexer.TokenLessEqual:
		return "<="
	default:
		return "?"
	}
}

type printer struct {
	b strings.Builder
}

func (p *printer) VisitIntLiteral(e *IntLiteral) (interface{}, error) {
	p.b.WriteString(strconv.FormatInt(e.Value, 10))
	return nil, nil
}

func (p *printer) VisitRealLiteral(e *RealLiteral) (interface{}, error) {
	p.b.WriteString(lexer.FormatReal(e.Value))
	return nil, nil
}

func (p *printer) VisitVarRef(e *VarRef) (interface{}, error) {
	p.b.WriteString(e.Name)
	return nil, nil
}

func (p *printer) VisitBinaryOp(e *BinaryOp) (interface{}, error) {
	p.b.WriteByte('(')
	_, _ = e.Left.Accept(p)
	p.b.WriteString(OpText(e.Op()))
	_, _ = e.Right.Accept(p)
	p.b.WriteByte(')')
	return nil, nil
}

func (p *printer) VisitListDecl(e *ListDecl) (interface{}, error) {
	p.b.WriteString("(list[(")
	_, _ = e.Size.Accept(p)
	p.b.WriteString(")])")
	return nil, nil
}

func (p *printer) VisitListAccess(e *ListAccess) (interface{}, error) {
	p.element(e.Name, e.Index)
	return nil, nil
}

func (p *printer) VisitAssign(e *Assign) (interface{}, error) {
	p.b.WriteByte('(')
	p.b.WriteString(e.Name)
	p.b.WriteByte('=')
	_, _ = e.Value.Accept(p)
	p.b.WriteByte(')')
	return nil, nil
}

func (p *printer) VisitListAssign(e *ListAssign) (interface{}, error) {
	p.b.WriteByte('(')
	p.element(e.Name, e.Index)
	p.b.WriteByte('=')
	_, _ = e.Value.Accept(p)
	p.b.WriteByte(')')
	return nil, nil
}

func (p *printer) element(name string, idx Expr) {
	p.b.WriteByte('(')
	p.b.WriteString(name)
	p.b.WriteString("[(")
	_, _ = idx.Accept(p)
	p.b.WriteString(")])")
}
