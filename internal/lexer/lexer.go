package lexer

import (
	"strconv"

	"tlog.app/go/tlog"
)

// Lexer converts one source line into tokens.
//
// It keeps only the cursor state; it never consults or updates the
// symbol table.
type Lexer struct {
	source string

	// line is the 1-based number of the line being scanned.
	line int

	// start is the byte offset of the token being scanned,
	// current is the offset being examined.
	start   int
	current int
}

// New creates a Lexer for a single line of source text.
func New(source string, line int) *Lexer {
	return &Lexer{
		source: source,
		line:   line,
	}
}

// Tokenize scans the whole line and returns its tokens in order.
// The trailing EOF token is not included.
func Tokenize(source string, line int) []Token {
	l := New(source, line)

	var toks []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokenEOF {
			break
		}

		toks = append(toks, tok)
	}

	if tlog.If("lexer") {
		tlog.V("lexer").Printw("tokenized", "line", line, "tokens", len(toks))
	}

	return toks
}

// NextToken returns the next token of the line, or TokenEOF at the end.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	l.start = l.current

	if l.isAtEnd() {
		return l.makeToken(TokenEOF)
	}

	ch := l.advance()

	switch {
	case isLetter(ch):
		return l.scanIdentifier()
	case isDigit(ch):
		return l.scanNumber()
	case ch == '.' && isDigit(l.peek()):
		return l.scanNumber()
	}

	switch ch {
	case '(':
		return l.makeToken(TokenLeftParen)
	case ')':
		return l.makeToken(TokenRightParen)
	case '[':
		return l.makeToken(TokenLeftBracket)
	case ']':
		return l.makeToken(TokenRightBracket)
	case '+':
		return l.makeToken(TokenPlus)
	case '-':
		return l.makeToken(TokenMinus)
	case '*':
		return l.makeToken(TokenTimes)
	case '^':
		return l.makeToken(TokenPow)
	case '/':
		if l.match('/') {
			return l.makeToken(TokenIntegerDivide)
		}
		return l.makeToken(TokenDivide)
	case '=':
		if l.match('=') {
			return l.makeToken(TokenEqual)
		}
		return l.makeToken(TokenAssign)
	case '!':
		if l.match('=') {
			return l.makeToken(TokenNotEqual)
		}
		return l.makeToken(TokenInvalid)
	case '<':
		if l.match('=') {
			return l.makeToken(TokenLessEqual)
		}
		return l.makeToken(TokenLess)
	case '>':
		if l.match('=') {
			return l.makeToken(TokenGreaterEqual)
		}
		return l.makeToken(TokenGreater)
	case '.':
		return l.makeToken(TokenInvalid)
	}

	// a run of characters outside the alphabet is one invalid token
	for !l.isAtEnd() && !inAlphabet(l.peek()) {
		l.advance()
	}

	return l.makeToken(TokenInvalid)
}

func (l *Lexer) advance() byte {
	ch := l.source[l.current]
	l.current++
	return ch
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) match(expected byte) bool {
	if l.isAtEnd() || l.source[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.current++
		default:
			return
		}
	}
}

func (l *Lexer) scanIdentifier() Token {
	for !l.isAtEnd() && (isLetter(l.peek()) || isDigit(l.peek())) {
		l.advance()
	}

	return l.makeToken(LookupKeyword(l.source[l.start:l.current]))
}

// scanNumber scans INT and REAL literals. The first character (a digit or
// a dot followed by a digit) is already consumed.
//
//	INT:  [0-9]+
//	REAL: [0-9]* . [0-9]* exp? | [0-9]+ exp,  exp = [Ee][+-]?[0-9]+
func (l *Lexer) scanNumber() Token {
	isReal := l.source[l.start] == '.'

	for isDigit(l.peek()) {
		l.advance()
	}

	if !isReal && l.peek() == '.' {
		isReal = true
		l.advance()

		for isDigit(l.peek()) {
			l.advance()
		}
	}

	if ch := l.peek(); ch == 'e' || ch == 'E' {
		save := l.current
		l.advance()

		if ch := l.peek(); ch == '+' || ch == '-' {
			l.advance()
		}

		if isDigit(l.peek()) {
			isReal = true

			for isDigit(l.peek()) {
				l.advance()
			}
		} else {
			l.current = save
		}
	}

	text := l.source[l.start:l.current]

	if isReal {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return l.makeToken(TokenInvalid)
		}

		tok := l.makeToken(TokenReal)
		tok.Real = f
		return tok
	}

	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return l.makeToken(TokenInvalid)
	}

	tok := l.makeToken(TokenInt)
	tok.Int = n
	return tok
}

func (l *Lexer) makeToken(tokenType TokenType) Token {
	return Token{
		Type:   tokenType,
		Lexeme: l.source[l.start:l.current],
		Position: Position{
			Line:   l.line,
			Column: l.start,
		},
	}
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// inAlphabet reports whether ch can start or continue a valid token,
// or is whitespace.
func inAlphabet(ch byte) bool {
	if isLetter(ch) || isDigit(ch) {
		return true
	}

	switch ch {
	case '+', '-', '*', '/', '^', '=', '!', '<', '>', '(', ')', '[', ']', '.', ' ', '\t', '\r', '\n':
		return true
	}

	return false
}
