package hir_types

// StringType values are immutable and compared by content.
type StringType struct{}

func (*StringType) Type() string {
	return "string"
}

func (*StringType) SameAs(t Type) bool {
	_, ok := t.(*StringType)
	return ok
}
