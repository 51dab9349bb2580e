package hir

import (
	types "github.com/kievzenit/ylox/internal/hir/types"
	"github.com/kievzenit/ylox/internal/lexer"
)

// ExprHir is a type-checked expression. Groupings do not survive lowering.
type ExprHir interface {
	ExprHirNode()
	ExprType() types.Type
}

type NumberExprHir struct {
	types.Type
	Value float64
}

type StringExprHir struct {
	types.Type
	Value string
}

type BoolExprHir struct {
	types.Type
	Value bool
}

type NilExprHir struct {
	types.Type
}

type UnaryOp int

const (
	Neg UnaryOp = iota
	Not
)

func UnaryOpFromTokenKind(kind lexer.TokenKind) UnaryOp {
	switch kind {
	case lexer.MINUS:
		return Neg
	case lexer.BANG:
		return Not
	default:
		panic("unexpected token kind")
	}
}

func (op UnaryOp) String() string {
	switch op {
	case Neg:
		return "-"
	case Not:
		return "!"
	default:
		panic("unexpected unary op")
	}
}

type UnaryExprHir struct {
	types.Type
	Op      UnaryOp
	Operand ExprHir
}

type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Eq
	Ne
	Lt
	Gt
	Le
	Ge
)

func BinOpFromTokenKind(kind lexer.TokenKind) BinaryOp {
	switch kind {
	case lexer.PLUS:
		return Add
	case lexer.MINUS:
		return Sub
	case lexer.STAR:
		return Mul
	case lexer.SLASH:
		return Div
	case lexer.LESS:
		return Lt
	case lexer.GREATER:
		return Gt
	case lexer.LESS_EQUAL:
		return Le
	case lexer.GREATER_EQUAL:
		return Ge
	case lexer.EQUAL_EQUAL:
		return Eq
	case lexer.BANG_EQUAL:
		return Ne
	default:
		panic("unexpected token kind")
	}
}

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Gt:
		return ">"
	case Le:
		return "<="
	case Ge:
		return ">="
	default:
		panic("unexpected binary op")
	}
}

type BinaryExprHir struct {
	types.Type
	Left  ExprHir
	Op    BinaryOp
	Right ExprHir
}

func (NumberExprHir) ExprHirNode() {}
func (StringExprHir) ExprHirNode() {}
func (BoolExprHir) ExprHirNode()   {}
func (NilExprHir) ExprHirNode()    {}
func (UnaryExprHir) ExprHirNode()  {}
func (BinaryExprHir) ExprHirNode() {}

func (e NumberExprHir) ExprType() types.Type { return e.Type }
func (e StringExprHir) ExprType() types.Type { return e.Type }
func (e BoolExprHir) ExprType() types.Type   { return e.Type }
func (e NilExprHir) ExprType() types.Type    { return e.Type }
func (e UnaryExprHir) ExprType() types.Type  { return e.Type }
func (e BinaryExprHir) ExprType() types.Type { return e.Type }
