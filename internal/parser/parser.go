// Package parser builds the AST of one source line.
//
// It is a precedence-climbing recursive descent parser over the token
// slice produced by the lexer. Parsing is purely syntactic: names are not
// resolved and the symbol table is not touched, so a line that parses can
// still fail the semantic pass.
//
// The first syntax error aborts the line. Internally the parser unwinds
// with a panic carrying the offending token and converts it to a
// diag.SyntaxError at the Parse boundary.
package parser

import (
	"tlog.app/go/tlog"

	"github.com/hassan/laika/internal/diag"
	"github.com/hassan/laika/internal/lexer"
	"github.com/hassan/laika/internal/parser/ast"
)

// Parser parses a single line.
type Parser struct {
	tokens []lexer.Token
	next   int

	// current is the token being examined, previous the last consumed one.
	current  lexer.Token
	previous lexer.Token

	// eof is returned once tokens are exhausted. It sits just past the
	// last token so a premature end is reported there.
	eof lexer.Token
}

// bailout is the panic value used to abort the line.
type bailout struct {
	tok lexer.Token
}

// New creates a parser for the tokens of line.
func New(tokens []lexer.Token, line int) *Parser {
	eof := lexer.Token{
		Type:     lexer.TokenEOF,
		Position: lexer.Position{Line: line},
	}

	if n := len(tokens); n != 0 {
		eof.Position = tokens[n-1].Span().End
	}

	p := &Parser{
		tokens: tokens,
		eof:    eof,
	}

	p.advance()

	return p
}

// Parse parses the tokens of one line into a single expression.
func Parse(tokens []lexer.Token, line int) (ast.Expr, error) {
	return New(tokens, line).Parse()
}

// Parse parses the whole line. The returned error is a *diag.Error of kind
// diag.SyntaxError.
func (p *Parser) Parse() (root ast.Expr, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		b, ok := r.(bailout)
		if !ok {
			panic(r)
		}

		tlog.V("parser").Printw("syntax error", "token", b.tok)

		root = nil
		err = diag.Syntax(b.tok)
	}()

	root = p.parseExpression()

	if !p.isAtEnd() {
		p.fail()
	}

	return root, nil
}

// parseExpression parses a binary chain, then an optional assignment
// when the chain is a bare name or list element.
//
//	expression := name = expression
//	            | name [ expression ] = expression
//	            | chain
func (p *Parser) parseExpression() ast.Expr {
	left := p.parsePrecedence(PrecExpression)

	if !p.check(lexer.TokenAssign) {
		return left
	}

	switch target := left.(type) {
	case *ast.VarRef:
		p.advance()

		return &ast.Assign{
			Token: target.Token,
			Name:  target.Name,
			Value: p.parseExpression(),
		}
	case *ast.ListAccess:
		p.advance()

		return &ast.ListAssign{
			Token: target.Token,
			Name:  target.Name,
			Index: target.Index,
			Value: p.parseExpression(),
		}
	}

	p.fail()

	return nil
}

// parsePrecedence parses operands joined by operators binding at least
// as tight as precedence.
func (p *Parser) parsePrecedence(precedence Precedence) ast.Expr {
	left := p.parsePrefix()

	for precedence <= getPrecedence(p.current.Type) {
		left = p.parseBinary(left)
	}

	return left
}

func (p *Parser) parseBinary(left ast.Expr) ast.Expr {
	operator := p.current
	p.advance()

	// left-associative: the right operand binds one level tighter
	right := p.parsePrecedence(getPrecedence(operator.Type) + 1)

	return &ast.BinaryOp{
		Left:     left,
		Operator: operator,
		Right:    right,
	}
}

// parsePrefix parses a factor.
//
//	factor := INT | REAL | name | name [ expression ]
//	        | list [ expression ] | ( expression )
func (p *Parser) parsePrefix() ast.Expr {
	tok := p.current

	switch tok.Type {
	case lexer.TokenInt:
		p.advance()
		return &ast.IntLiteral{Token: tok, Value: tok.Int}
	case lexer.TokenReal:
		p.advance()
		return &ast.RealLiteral{Token: tok, Value: tok.Real}
	case lexer.TokenIdent:
		p.advance()

		if !p.match(lexer.TokenLeftBracket) {
			return &ast.VarRef{Token: tok, Name: tok.Lexeme}
		}

		index := p.parseExpression()
		p.consume(lexer.TokenRightBracket)

		return &ast.ListAccess{
			Token:  tok,
			Name:   tok.Lexeme,
			Index:  index,
			Rbrack: p.previous.Position,
		}
	case lexer.TokenList:
		p.advance()
		p.consume(lexer.TokenLeftBracket)

		size := p.parseExpression()
		p.consume(lexer.TokenRightBracket)

		return &ast.ListDecl{
			Keyword: tok,
			Size:    size,
			Rbrack:  p.previous.Position,
		}
	case lexer.TokenLeftParen:
		p.advance()

		inner := p.parseExpression()
		p.consume(lexer.TokenRightParen)

		return inner
	}

	p.fail()

	return nil
}

func (p *Parser) advance() {
	p.previous = p.current

	if p.next < len(p.tokens) {
		p.current = p.tokens[p.next]
		p.next++
	} else {
		p.current = p.eof
	}
}

func (p *Parser) check(tokenType lexer.TokenType) bool {
	return p.current.Type == tokenType
}

func (p *Parser) match(tokenType lexer.TokenType) bool {
	if !p.check(tokenType) {
		return false
	}

	p.advance()

	return true
}

func (p *Parser) consume(tokenType lexer.TokenType) {
	if !p.match(tokenType) {
		p.fail()
	}
}

func (p *Parser) isAtEnd() bool {
	return p.current.Type == lexer.TokenEOF
}

// fail aborts the line at the current token.
func (p *Parser) fail() {
	panic(bailout{tok: p.current})
}
