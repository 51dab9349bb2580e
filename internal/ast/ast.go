package ast

import (
	"fmt"

	"github.com/kievzenit/ylox/internal/lexer"
)

type AstNode interface {
	AstNode()
	FirstToken() *lexer.Token
}

// Expr is closed: LiteralExpr, GroupingExpr, UnaryExpr and BinaryExpr are
// the only implementations, and consumers switch over exactly those four.
type Expr interface {
	AstNode
	ExprNode()
}

// Depth is the nesting depth of expr; a lone literal has depth 1.
func Depth(expr Expr) int {
	switch e := expr.(type) {
	case *LiteralExpr:
		return 1
	case *GroupingExpr:
		return 1 + Depth(e.Inner)
	case *UnaryExpr:
		return 1 + Depth(e.Operand)
	case *BinaryExpr:
		return 1 + max(Depth(e.Left), Depth(e.Right))
	default:
		panic(fmt.Sprintf("ast.Depth(): unexpected expression %T", expr))
	}
}
