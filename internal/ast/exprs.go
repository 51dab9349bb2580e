package ast

import "github.com/kievzenit/ylox/internal/lexer"

// LiteralExpr holds a float64, string, bool or nil.
type LiteralExpr struct {
	StartToken *lexer.Token

	Value any
}

type GroupingExpr struct {
	StartToken *lexer.Token

	Inner Expr
}

type UnaryExpr struct {
	Op      *lexer.Token
	Operand Expr
}

type BinaryExpr struct {
	Left  Expr
	Op    *lexer.Token
	Right Expr
}

func NewLiteral(value any) *LiteralExpr {
	return &LiteralExpr{Value: value}
}

func NewGrouping(inner Expr) *GroupingExpr {
	return &GroupingExpr{Inner: inner}
}

func NewUnary(op *lexer.Token, operand Expr) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: operand}
}

func NewBinary(left Expr, op *lexer.Token, right Expr) *BinaryExpr {
	return &BinaryExpr{Left: left, Op: op, Right: right}
}

func (l *LiteralExpr) AstNode()  {}
func (g *GroupingExpr) AstNode() {}
func (u *UnaryExpr) AstNode()    {}
func (b *BinaryExpr) AstNode()   {}

func (l *LiteralExpr) ExprNode()  {}
func (g *GroupingExpr) ExprNode() {}
func (u *UnaryExpr) ExprNode()    {}
func (b *BinaryExpr) ExprNode()   {}

// FirstToken is nil for literals and groupings built without a token.
func (l *LiteralExpr) FirstToken() *lexer.Token {
	return l.StartToken
}

func (g *GroupingExpr) FirstToken() *lexer.Token {
	return g.StartToken
}

func (u *UnaryExpr) FirstToken() *lexer.Token {
	return u.Op
}

func (b *BinaryExpr) FirstToken() *lexer.Token {
	return b.Left.FirstToken()
}
