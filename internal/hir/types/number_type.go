package hir_types

// NumberType is an IEEE 754 binary float. The language only has doubles.
type NumberType struct {
	Bits int
}

func (*NumberType) Type() string {
	return "number"
}

func (n *NumberType) SameAs(t Type) bool {
	if numberType, ok := t.(*NumberType); ok {
		return n.Bits == numberType.Bits
	}

	return false
}
