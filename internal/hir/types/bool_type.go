package hir_types

type BoolType struct{}

func (*BoolType) Type() string {
	return "bool"
}

func (*BoolType) SameAs(t Type) bool {
	_, ok := t.(*BoolType)
	return ok
}
