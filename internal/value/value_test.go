package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	testCases := []struct {
		n    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{123, "123"},
		{-861, "-861"},
		{45.67, "45.67"},
		{-123 * 45.67, "-5617.41"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e300, "1.5e+300"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{-2.5e-10, "-2.5e-10"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, FormatNumber(tc.n), "%v", tc.n)
	}
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "nil", Stringify(nil))
	assert.Equal(t, "true", Stringify(true))
	assert.Equal(t, "false", Stringify(false))
	assert.Equal(t, "2.5", Stringify(2.5))
	assert.Equal(t, "some text", Stringify("some text"))
	assert.Equal(t, "", Stringify(""))
	assert.Panics(t, func() { Stringify(3) })
}

func TestIsTruthy(t *testing.T) {
	assert.False(t, IsTruthy(nil))
	assert.False(t, IsTruthy(false))
	assert.True(t, IsTruthy(true))
	assert.True(t, IsTruthy(0.0))
	assert.True(t, IsTruthy(""))
	assert.True(t, IsTruthy(math.NaN()))
}

func TestIsEqual(t *testing.T) {
	testCases := []struct {
		a, b any
		want bool
	}{
		{nil, nil, true},
		{nil, false, false},
		{false, nil, false},
		{nil, 0.0, false},
		{1.0, 1.0, true},
		{1.0, 2.0, false},
		{1.0, "1", false},
		{"a", "a", true},
		{"a", "b", false},
		{true, true, true},
		{true, 1.0, false},
		{math.NaN(), math.NaN(), false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, IsEqual(tc.a, tc.b), "%#v == %#v", tc.a, tc.b)
	}
}
