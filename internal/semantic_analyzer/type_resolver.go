package semantic_analyzer

import (
	"github.com/kievzenit/ylox/internal/hir"
	types "github.com/kievzenit/ylox/internal/hir/types"
)

// TypeResolver knows the built-in types and which operand types each
// operator accepts.
type TypeResolver struct {
	builtinTypesMap map[string]types.Type
}

func (tr *TypeResolver) defineBuiltInTypes() {
	for _, t := range []types.Type{types.Number, types.String, types.Bool, types.Nil} {
		tr.builtinTypesMap[t.Type()] = t
	}
}

func NewTypeResolver() *TypeResolver {
	tr := &TypeResolver{
		builtinTypesMap: make(map[string]types.Type),
	}
	tr.defineBuiltInTypes()
	return tr
}

func (tr *TypeResolver) NumberType() types.Type {
	return tr.builtinTypesMap["number"]
}

func (tr *TypeResolver) StringType() types.Type {
	return tr.builtinTypesMap["string"]
}

func (tr *TypeResolver) BoolType() types.Type {
	return tr.builtinTypesMap["bool"]
}

func (tr *TypeResolver) NilType() types.Type {
	return tr.builtinTypesMap["nil"]
}

// ResolveUnary returns the result type of op applied to operand, or false
// when the operand type is not accepted.
func (tr *TypeResolver) ResolveUnary(op hir.UnaryOp, operand types.Type) (types.Type, bool) {
	switch op {
	case hir.Neg:
		if operand.SameAs(tr.NumberType()) {
			return tr.NumberType(), true
		}
		return nil, false
	case hir.Not:
		return tr.BoolType(), true
	default:
		panic("unexpected unary op")
	}
}

// ResolveBinary returns the result type of left op right, or false when
// the operand types are not accepted.
func (tr *TypeResolver) ResolveBinary(op hir.BinaryOp, left, right types.Type) (types.Type, bool) {
	bothNumbers := left.SameAs(tr.NumberType()) && right.SameAs(tr.NumberType())

	switch op {
	case hir.Eq, hir.Ne:
		return tr.BoolType(), true
	case hir.Add:
		if bothNumbers {
			return tr.NumberType(), true
		}
		if left.SameAs(tr.StringType()) && right.SameAs(tr.StringType()) {
			return tr.StringType(), true
		}
		return nil, false
	case hir.Sub, hir.Mul, hir.Div:
		if bothNumbers {
			return tr.NumberType(), true
		}
		return nil, false
	case hir.Lt, hir.Gt, hir.Le, hir.Ge:
		if bothNumbers {
			return tr.BoolType(), true
		}
		return nil, false
	default:
		panic("unexpected binary op")
	}
}
