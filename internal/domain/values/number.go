package values

import (
	"encoding/json"
	"math"
	"strings"
)

// AsInteger reports the value of v when v is an integer.
// Every Go integer kind is accepted, as is a json.Number written without
// a fraction or exponent. Floats and booleans are never integers, even
// when integral (1.0 is a float).
func AsInteger(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		if isFloatLiteral(string(n)) {
			return 0, false
		}
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// AsFloat reports the value of v when v is a floating-point number.
// Integers are rejected; a json.Number counts only when its literal has a
// fraction or an exponent.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		if !isFloatLiteral(string(n)) {
			return 0, false
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func isFloatLiteral(s string) bool {
	return strings.ContainsAny(s, ".eE")
}
