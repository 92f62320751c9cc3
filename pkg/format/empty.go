package format

import (
	"math"
	"reflect"
)

// ToEmpty returns the placeholder when value is empty and value otherwise.
// Empty means nil, a nil pointer, slice, map, func or interface, or the zero
// value of its type ("", 0, false). Without a placeholder argument the one of
// the Formatter ("-" by default) is used.
func (f *Formatter) ToEmpty(value any, placeholder ...string) any {
	char := f.placeholder
	if len(placeholder) > 0 {
		char = placeholder[0]
	}

	if isEmpty(value) {
		return char
	}
	return value
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0 || math.IsNaN(rv.Float())
	case reflect.Struct, reflect.Array:
		return false
	default:
		return rv.IsZero()
	}
}
