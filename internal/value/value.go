// Package value holds the rules shared by everything that handles runtime
// values: a value is a float64, a string, a bool or nil.
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders n the way the language prints numbers: the shortest
// representation that round-trips, integral values without a fraction, and
// exponent notation outside [1e-6, 1e21).
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		// covers negative zero too
		return "0"
	}

	abs := math.Abs(n)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(n, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}

	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Stringify renders a runtime value in its natural textual form.
func Stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case float64:
		return FormatNumber(v)
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	default:
		panic(fmt.Sprintf("value: not a runtime value: %T", v))
	}
}

// IsTruthy is false for nil and false and true for everything else,
// including 0, "" and NaN.
func IsTruthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}

// IsEqual compares without coercion. Values of different kinds are never
// equal, nil equals only nil, and NaN is not equal to itself.
func IsEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch a := a.(type) {
	case float64:
		bn, ok := b.(float64)
		return ok && a == bn
	case string:
		bs, ok := b.(string)
		return ok && a == bs
	case bool:
		bb, ok := b.(bool)
		return ok && a == bb
	default:
		panic(fmt.Sprintf("value: not a runtime value: %T", a))
	}
}
