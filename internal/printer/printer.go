// Package printer renders expression trees as fully parenthesized prefix
// text, e.g. "(* (- 123) (group 45.67))". The output is for diagnostics and
// golden tests; the parser cannot read it back.
package printer

import (
	"fmt"
	"strings"

	"github.com/kievzenit/ylox/internal/ast"
	"github.com/kievzenit/ylox/internal/value"
)

func Print(expr ast.Expr) string {
	var sb strings.Builder
	write(&sb, expr)
	return sb.String()
}

func write(sb *strings.Builder, expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		sb.WriteString(value.Stringify(e.Value))
	case *ast.GroupingExpr:
		parenthesize(sb, "group", e.Inner)
	case *ast.UnaryExpr:
		parenthesize(sb, e.Op.Lexeme, e.Operand)
	case *ast.BinaryExpr:
		parenthesize(sb, e.Op.Lexeme, e.Left, e.Right)
	default:
		panic(fmt.Sprintf("printer: unexpected expression %T", expr))
	}
}

func parenthesize(sb *strings.Builder, name string, exprs ...ast.Expr) {
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, expr := range exprs {
		sb.WriteByte(' ')
		write(sb, expr)
	}
	sb.WriteByte(')')
}
