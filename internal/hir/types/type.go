package hir_types

// Type is the static type of an expression. Expressions have no variables,
// so every type is known at analysis time.
type Type interface {
	Type() string
	SameAs(t Type) bool
}

var (
	Number Type = &NumberType{Bits: 64}
	String Type = &StringType{}
	Bool   Type = &BoolType{}
	Nil    Type = &NilType{}
)

// Of returns the static type of a literal value.
func Of(v any) Type {
	switch v.(type) {
	case nil:
		return Nil
	case float64:
		return Number
	case string:
		return String
	case bool:
		return Bool
	default:
		panic("unexpected literal value")
	}
}
