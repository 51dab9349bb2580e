package parser

import (
	"fmt"

	"github.com/kievzenit/ylox/internal/ast"
	"github.com/kievzenit/ylox/internal/compiler_errors"
	"github.com/kievzenit/ylox/internal/lexer"
)

type ParseError struct {
	Token   *lexer.Token
	Message string
}

func newParseError(token *lexer.Token, message string) *ParseError {
	return &ParseError{
		Token:   token,
		Message: message,
	}
}

func (e *ParseError) GetMessage() string { return e.Message }
func (e *ParseError) GetLine() int       { return e.Token.Line }

func (e *ParseError) Error() string {
	where := fmt.Sprintf("at '%s'", e.Token.Lexeme)
	if e.Token.Kind == lexer.EOF {
		where = "at end"
	}

	return fmt.Sprintf("[line %d] Error %s: %s", e.Token.Line, where, e.Message)
}

type Option func(*Parser)

// WithTrailingTokens makes Parse stop after the first complete expression
// and ignore whatever follows it.
func WithTrailingTokens() Option {
	return func(p *Parser) {
		p.allowTrailing = true
	}
}

// Binary operators, loosest first. Every level is left-associative.
var precedenceLevels = [][]lexer.TokenKind{
	{lexer.BANG_EQUAL, lexer.EQUAL_EQUAL},
	{lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL},
	{lexer.MINUS, lexer.PLUS},
	{lexer.SLASH, lexer.STAR},
}

const equalityLevel = 0

// Parser is a recursive-descent parser for the expression grammar:
//
//	equality   → comparison (("!=" | "==") comparison)*
//	comparison → term ((">" | ">=" | "<" | "<=") term)*
//	term       → factor (("-" | "+") factor)*
//	factor     → unary (("*" | "/") unary)*
//	unary      → ("!" | "-") unary | primary
//	primary    → NUMBER | STRING | "true" | "false" | "nil" | "(" equality ")"
type Parser struct {
	scanner lexer.TokenScanner
	eh      compiler_errors.ErrorHandler

	allowTrailing bool
}

func NewParser(scanner lexer.TokenScanner, eh compiler_errors.ErrorHandler, opts ...Option) *Parser {
	p := &Parser{
		scanner: scanner,
		eh:      eh,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse builds a tree from tokens with a fresh error handler and returns
// whatever it collected alongside the tree.
func Parse(tokens []lexer.Token, opts ...Option) (ast.Expr, compiler_errors.Errors) {
	eh := compiler_errors.NewErrorHandler()
	expr := NewParser(lexer.NewTokenScanner(tokens), eh, opts...).Parse()
	return expr, eh.Errors()
}

// Parse returns nil after reporting a syntax error. Panics that are not
// syntax errors are bugs and propagate.
func (p *Parser) Parse() (expr ast.Expr) {
	p.scanner.Reset()

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*ParseError); !ok {
				panic(r)
			}
			expr = nil
		}
	}()

	expr = p.parseExpr()

	if !p.allowTrailing && !p.scanner.IsAtEnd() {
		p.fail(p.scanner.Peek(), "Expect end of expression.")
	}

	return expr
}

func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinaryExpr(equalityLevel)
}

func (p *Parser) parseBinaryExpr(level int) ast.Expr {
	if level == len(precedenceLevels) {
		return p.parseUnaryExpr()
	}

	left := p.parseBinaryExpr(level + 1)

	for p.match(precedenceLevels[level]...) {
		op := p.scanner.Previous()
		right := p.parseBinaryExpr(level + 1)

		left = &ast.BinaryExpr{
			Left:  left,
			Op:    op,
			Right: right,
		}
	}

	return left
}

func (p *Parser) parseUnaryExpr() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.scanner.Previous()
		operand := p.parseUnaryExpr()

		return &ast.UnaryExpr{
			Op:      op,
			Operand: operand,
		}
	}

	return p.parsePrimaryExpr()
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	switch {
	case p.match(lexer.FALSE):
		return p.literal(false)
	case p.match(lexer.TRUE):
		return p.literal(true)
	case p.match(lexer.NIL):
		return p.literal(nil)
	case p.match(lexer.NUMBER, lexer.STRING):
		return p.literal(p.scanner.Previous().Literal)
	case p.match(lexer.LEFT_PAREN):
		return p.parseGroupingExpr()
	}

	p.fail(p.scanner.Peek(), "Expect expression.")
	panic("unreachable")
}

func (p *Parser) parseGroupingExpr() *ast.GroupingExpr {
	startToken := p.scanner.Previous()

	inner := p.parseExpr()
	p.expect(lexer.RIGHT_PAREN, "Expect ')' after expression.")

	return &ast.GroupingExpr{
		StartToken: startToken,

		Inner: inner,
	}
}

func (p *Parser) literal(value any) *ast.LiteralExpr {
	return &ast.LiteralExpr{
		StartToken: p.scanner.Previous(),

		Value: value,
	}
}

// synchronize discards tokens up to the next statement boundary. Parse does
// not call it: a single expression has nowhere to resume.
func (p *Parser) synchronize() {
	p.scanner.Advance()

	for !p.scanner.IsAtEnd() {
		if p.scanner.Previous().Kind == lexer.SEMICOLON {
			return
		}

		switch p.scanner.Peek().Kind {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}

		p.scanner.Advance()
	}
}

func (p *Parser) expect(kind lexer.TokenKind, message string) *lexer.Token {
	if p.check(kind) {
		return p.scanner.Advance()
	}

	p.fail(p.scanner.Peek(), message)
	panic("unreachable")
}

func (p *Parser) match(kinds ...lexer.TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.scanner.Advance()
			return true
		}
	}

	return false
}

func (p *Parser) check(kind lexer.TokenKind) bool {
	if p.scanner.IsAtEnd() {
		return false
	}

	return p.scanner.Peek().Kind == kind
}

func (p *Parser) fail(token *lexer.Token, message string) {
	err := newParseError(token, message)
	p.eh.AddError(err)
	panic(err)
}
