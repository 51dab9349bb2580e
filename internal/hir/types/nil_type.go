package hir_types

// NilType has exactly one value.
type NilType struct{}

func (*NilType) Type() string {
	return "nil"
}

func (*NilType) SameAs(t Type) bool {
	_, ok := t.(*NilType)
	return ok
}
