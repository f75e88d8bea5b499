package render

import (
	"reflect"

	"github.com/aymerick/raymond"
)

// Helper is a predicate callable from a template expression. this is the
// context the expression is evaluated in.
type Helper func(this, a, b any) bool

// Helpers is a set of helpers keyed by the name templates call them by.
type Helpers map[string]Helper

// DefaultHelpers returns the helpers every page is rendered with.
func DefaultHelpers() Helpers {
	return Helpers{
		"eq":   Eq,
		"nq":   Nq,
		"and_": And,
	}
}

// Eq reports whether a and b are equal. Numbers compare by value regardless
// of their Go type, so a JSON 2024 (float64) equals an int 2024.
func Eq(_, a, b any) bool {
	return equal(a, b)
}

// Nq is the negation of Eq.
func Nq(_, a, b any) bool {
	return !equal(a, b)
}

// And reports whether both a and b are truthy.
func And(_, a, b any) bool {
	return raymond.IsTrue(a) && raymond.IsTrue(b)
}

func equal(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// forRaymond adapts the set to raymond's calling convention, where the
// trailing *raymond.Options carries the current context.
func (h Helpers) forRaymond() map[string]interface{} {
	out := make(map[string]interface{}, len(h))
	for name, fn := range h {
		fn := fn
		out[name] = func(a, b interface{}, options *raymond.Options) bool {
			return fn(options.Ctx(), a, b)
		}
	}
	return out
}
