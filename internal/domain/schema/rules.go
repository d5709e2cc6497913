package schema

import (
	"fmt"
	"math"
	"reflect"

	"github.com/pyyyc/deckprops/internal/domain/values"
)

// RuleFunc validates a raw value and returns its canonical stored form.
// The error message becomes the reason of an ErrInvalidValue failure.
type RuleFunc func(value any) (any, error)

// StringRule accepts text only.
func StringRule(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%v: must be string", v)
	}
	return s, nil
}

// FloatRule accepts floating-point numbers only; integers are rejected.
func FloatRule(v any) (any, error) {
	f, ok := values.AsFloat(v)
	if !ok {
		return nil, fmt.Errorf("%v: must be float", v)
	}
	return f, nil
}

// IntRule accepts any integer kind and stores it as int.
func IntRule(v any) (any, error) {
	n, ok := values.AsInteger(v)
	if !ok || n > math.MaxInt || n < math.MinInt {
		return nil, fmt.Errorf("%v: must be int", v)
	}
	return int(n), nil
}

// ColorRule accepts a palette name or a triple of ints in [0, 255] and
// stores a values.Color.
func ColorRule(v any) (any, error) {
	c, err := values.ParseColor(v)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// RecordRule builds nested records through target. A *Record already built
// from target is kept as is.
func RecordRule(target *Schema) RuleFunc {
	return func(v any) (any, error) {
		switch r := v.(type) {
		case *Record:
			if r == nil {
				return nil, fmt.Errorf("<nil>: must be %s", target.Kind())
			}
			if r.schema != target {
				return nil, fmt.Errorf("%s record: must be %s", r.Kind(), target.Kind())
			}
			return r, nil
		case map[string]any:
			return target.New(r)
		default:
			return nil, fmt.Errorf("%v: must be %s", v, target.Kind())
		}
	}
}

// ListRule applies elem to every element of a slice or array and stores
// the results in a fresh []any.
func ListRule(elem RuleFunc) RuleFunc {
	return func(v any) (any, error) {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
			return nil, fmt.Errorf("%v: must be list", v)
		}

		out := make([]any, rv.Len())
		for i := range out {
			item, err := elem(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = item
		}
		return out, nil
	}
}
