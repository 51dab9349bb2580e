package semantic_analyzer

import (
	"fmt"

	"github.com/kievzenit/ylox/internal/ast"
	"github.com/kievzenit/ylox/internal/compiler_errors"
	"github.com/kievzenit/ylox/internal/hir"
	types "github.com/kievzenit/ylox/internal/hir/types"
	"github.com/kievzenit/ylox/internal/lexer"
)

type SemanticError struct {
	Token   *lexer.Token
	Message string
}

func newSemanticError(token *lexer.Token, message string) *SemanticError {
	return &SemanticError{
		Token:   token,
		Message: message,
	}
}

func (se *SemanticError) GetMessage() string { return se.Message }
func (se *SemanticError) GetLine() int       { return se.Token.Line }

func (se *SemanticError) Error() string {
	return fmt.Sprintf("[line %d] Error at '%s': %s", se.Token.Line, se.Token.Lexeme, se.Message)
}

// SemanticAnalyzer checks operand types ahead of time and lowers the tree
// to HIR. It reports the same violations the interpreter would hit at run
// time, but all of them, and without evaluating anything.
type SemanticAnalyzer struct {
	eh   compiler_errors.ErrorHandler
	expr ast.Expr

	typeResolver *TypeResolver

	externs []hir.Extern
	failed  bool
}

func NewSemanticAnalyzer(eh compiler_errors.ErrorHandler, expr ast.Expr) *SemanticAnalyzer {
	return &SemanticAnalyzer{
		eh:   eh,
		expr: expr,

		typeResolver: NewTypeResolver(),
	}
}

// Analyze checks expr with a fresh error handler.
func Analyze(expr ast.Expr) (*hir.ProgramHir, compiler_errors.Errors) {
	eh := compiler_errors.NewErrorHandler()
	program := NewSemanticAnalyzer(eh, expr).Analyze()
	return program, eh.Errors()
}

// Analyze returns nil when any type error was reported.
func (sa *SemanticAnalyzer) Analyze() *hir.ProgramHir {
	sa.externs = nil
	sa.failed = false

	exprHir := sa.analyzeExpr(sa.expr)
	if sa.failed {
		return nil
	}

	return &hir.ProgramHir{
		Expr:    exprHir,
		Externs: sa.externs,
	}
}

func (sa *SemanticAnalyzer) analyzeExpr(expr ast.Expr) hir.ExprHir {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return sa.analyzeLiteralExpr(e)
	case *ast.GroupingExpr:
		return sa.analyzeExpr(e.Inner)
	case *ast.UnaryExpr:
		return sa.analyzeUnaryExpr(e)
	case *ast.BinaryExpr:
		return sa.analyzeBinaryExpr(e)
	default:
		panic("not implemented")
	}
}

func (sa *SemanticAnalyzer) analyzeLiteralExpr(literalExpr *ast.LiteralExpr) hir.ExprHir {
	switch v := literalExpr.Value.(type) {
	case nil:
		return &hir.NilExprHir{Type: sa.typeResolver.NilType()}
	case float64:
		return &hir.NumberExprHir{Type: sa.typeResolver.NumberType(), Value: v}
	case string:
		return &hir.StringExprHir{Type: sa.typeResolver.StringType(), Value: v}
	case bool:
		return &hir.BoolExprHir{Type: sa.typeResolver.BoolType(), Value: v}
	default:
		panic(fmt.Sprintf("unexpected literal value %T", v))
	}
}

// analyzeUnaryExpr returns nil when the operand or the operator failed to
// type-check. Only the innermost failure is reported.
func (sa *SemanticAnalyzer) analyzeUnaryExpr(unaryExpr *ast.UnaryExpr) hir.ExprHir {
	operand := sa.analyzeExpr(unaryExpr.Operand)
	if operand == nil {
		return nil
	}

	op := hir.UnaryOpFromTokenKind(unaryExpr.Op.Kind)
	resultType, ok := sa.typeResolver.ResolveUnary(op, operand.ExprType())
	if !ok {
		sa.addError(unaryExpr.Op, "Operand must be a number.")
		return nil
	}

	return &hir.UnaryExprHir{
		Type:    resultType,
		Op:      op,
		Operand: operand,
	}
}

func (sa *SemanticAnalyzer) analyzeBinaryExpr(binaryExpr *ast.BinaryExpr) hir.ExprHir {
	left := sa.analyzeExpr(binaryExpr.Left)
	right := sa.analyzeExpr(binaryExpr.Right)

	if left == nil || right == nil {
		return nil
	}

	op := hir.BinOpFromTokenKind(binaryExpr.Op.Kind)
	resultType, ok := sa.typeResolver.ResolveBinary(op, left.ExprType(), right.ExprType())
	if !ok {
		if op == hir.Add {
			sa.addError(binaryExpr.Op, "Operands must be two numbers or two strings.")
		} else {
			sa.addError(binaryExpr.Op, "Operands must be numbers.")
		}
		return nil
	}

	sa.recordExterns(op, left.ExprType(), right.ExprType())

	return &hir.BinaryExprHir{
		Type:  resultType,
		Left:  left,
		Op:    op,
		Right: right,
	}
}

func (sa *SemanticAnalyzer) recordExterns(op hir.BinaryOp, left, right types.Type) {
	stringType := sa.typeResolver.StringType()
	if !left.SameAs(stringType) || !right.SameAs(stringType) {
		return
	}

	switch op {
	case hir.Add:
		sa.useExtern(hir.StringConcat)
	case hir.Eq, hir.Ne:
		sa.useExtern(hir.StringEqual)
	}
}

func (sa *SemanticAnalyzer) useExtern(extern hir.Extern) {
	for _, e := range sa.externs {
		if e == extern {
			return
		}
	}
	sa.externs = append(sa.externs, extern)
}

func (sa *SemanticAnalyzer) addError(token *lexer.Token, message string) {
	sa.failed = true
	sa.eh.AddError(newSemanticError(token, message))
}
