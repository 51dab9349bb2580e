package hir

import (
	types "github.com/kievzenit/ylox/internal/hir/types"
)

// Extern is a runtime helper the compiled program calls into.
type Extern int

const (
	StringConcat Extern = iota
	StringEqual
)

func (e Extern) Name() string {
	switch e {
	case StringConcat:
		return "ylox_string_concat"
	case StringEqual:
		return "ylox_string_equal"
	default:
		panic("unexpected extern")
	}
}

type ProgramHir struct {
	Expr ExprHir

	// Externs lists each helper once, in order of first use.
	Externs []Extern
}

func (p *ProgramHir) ResultType() types.Type {
	return p.Expr.ExprType()
}

func (p *ProgramHir) Uses(extern Extern) bool {
	for _, e := range p.Externs {
		if e == extern {
			return true
		}
	}
	return false
}
