package hir_types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	assert.Same(t, Number, Of(1.5))
	assert.Same(t, String, Of("s"))
	assert.Same(t, Bool, Of(false))
	assert.Same(t, Nil, Of(nil))
	assert.Panics(t, func() { Of(1) })
}

func TestSameAs(t *testing.T) {
	all := []Type{Number, String, Bool, Nil}
	for i, a := range all {
		for j, b := range all {
			assert.Equal(t, i == j, a.SameAs(b), "%s vs %s", a.Type(), b.Type())
		}
	}

	assert.True(t, Number.SameAs(&NumberType{Bits: 64}))
	assert.False(t, Number.SameAs(&NumberType{Bits: 32}))
}
