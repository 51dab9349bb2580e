package interpreter

import (
	"fmt"

	"github.com/kievzenit/ylox/internal/ast"
	"github.com/kievzenit/ylox/internal/compiler_errors"
	"github.com/kievzenit/ylox/internal/lexer"
	"github.com/kievzenit/ylox/internal/value"
)

type RuntimeError struct {
	Operator *lexer.Token
	Message  string
}

func newRuntimeError(operator *lexer.Token, message string) *RuntimeError {
	return &RuntimeError{
		Operator: operator,
		Message:  message,
	}
}

func (e *RuntimeError) GetMessage() string { return e.Message }
func (e *RuntimeError) GetLine() int       { return e.Operator.Line }

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Operator.Line)
}

// Interpreter evaluates expression trees. It holds no state between calls
// besides the error handler it reports to.
type Interpreter struct {
	eh compiler_errors.ErrorHandler
}

func NewInterpreter(eh compiler_errors.ErrorHandler) *Interpreter {
	return &Interpreter{
		eh: eh,
	}
}

// Interpret evaluates expr with a fresh error handler. ok is false when a
// runtime error was reported.
func Interpret(expr ast.Expr) (result string, ok bool, errs compiler_errors.Errors) {
	eh := compiler_errors.NewErrorHandler()
	result, ok = NewInterpreter(eh).Interpret(expr)
	return result, ok, eh.Errors()
}

// Interpret evaluates expr and stringifies the result. A runtime error is
// reported to the error handler and yields ("", false).
func (i *Interpreter) Interpret(expr ast.Expr) (string, bool) {
	v, err := i.Evaluate(expr)
	if err != nil {
		i.eh.AddError(err.(*RuntimeError))
		return "", false
	}

	return value.Stringify(v), true
}

// Evaluate returns the runtime value of expr. The only error it returns is
// a *RuntimeError.
func (i *Interpreter) Evaluate(expr ast.Expr) (any, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return e.Value, nil
	case *ast.GroupingExpr:
		return i.Evaluate(e.Inner)
	case *ast.UnaryExpr:
		return i.evaluateUnaryExpr(e)
	case *ast.BinaryExpr:
		return i.evaluateBinaryExpr(e)
	default:
		panic(fmt.Sprintf("interpreter: unexpected expression %T", expr))
	}
}

func (i *Interpreter) evaluateUnaryExpr(e *ast.UnaryExpr) (any, error) {
	operand, err := i.Evaluate(e.Operand)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case lexer.MINUS:
		n, ok := operand.(float64)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operand must be a number.")
		}
		return -n, nil
	case lexer.BANG:
		return !value.IsTruthy(operand), nil
	}

	panic("unreachable")
}

func (i *Interpreter) evaluateBinaryExpr(e *ast.BinaryExpr) (any, error) {
	left, err := i.Evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.Evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case lexer.EQUAL_EQUAL:
		return value.IsEqual(left, right), nil
	case lexer.BANG_EQUAL:
		return !value.IsEqual(left, right), nil
	case lexer.PLUS:
		return i.add(e.Op, left, right)
	}

	l, r, err := numberOperands(e.Op, left, right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case lexer.MINUS:
		return l - r, nil
	case lexer.STAR:
		return l * r, nil
	case lexer.SLASH:
		return l / r, nil
	case lexer.GREATER:
		return l > r, nil
	case lexer.GREATER_EQUAL:
		return l >= r, nil
	case lexer.LESS:
		return l < r, nil
	case lexer.LESS_EQUAL:
		return l <= r, nil
	}

	panic("unreachable")
}

func (i *Interpreter) add(op *lexer.Token, left, right any) (any, error) {
	switch l := left.(type) {
	case float64:
		if r, ok := right.(float64); ok {
			return l + r, nil
		}
	case string:
		if r, ok := right.(string); ok {
			return l + r, nil
		}
	}

	return nil, newRuntimeError(op, "Operands must be two numbers or two strings.")
}

func numberOperands(op *lexer.Token, left, right any) (float64, float64, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, newRuntimeError(op, "Operands must be numbers.")
	}

	return l, r, nil
}
