package typetag

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Tag is the runtime class of a value.
type Tag string

const (
	// Null is nil or a nil pointer, slice, map or func.
	Null Tag = "Null"
	// Undefined exists for parity with the JS tags; Of never returns it.
	Undefined Tag = "Undefined"
	// String is any string kind.
	String Tag = "String"
	// Number is any integer, unsigned or float kind.
	Number Tag = "Number"
	// Boolean is a bool.
	Boolean Tag = "Boolean"
	// Array is a non-nil slice or an array.
	Array Tag = "Array"
	// Object is a non-nil map or a struct other than time.Time.
	Object Tag = "Object"
	// Function is a non-nil func.
	Function Tag = "Function"
	// Date is a time.Time.
	Date Tag = "Date"
	// Error is any value implementing error.
	Error Tag = "Error"
	// Unknown covers channels, complex numbers and unsafe pointers.
	Unknown Tag = "Unknown"
)

// Tags lists every tag Of can produce, plus Undefined which Go values never carry.
var Tags = []Tag{Null, Undefined, String, Number, Boolean, Array, Object, Function, Date, Error, Unknown}

var timeType = reflect.TypeOf(time.Time{})

// Of returns the tag of v. Pointers are followed; a nil pointer, map, slice,
// func or interface is Null.
func Of(v any) Tag {
	if v == nil {
		return Null
	}
	if _, ok := v.(error); ok {
		return Error
	}
	return of(reflect.ValueOf(v))
}

func of(rv reflect.Value) Tag {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Null
		}
		rv = rv.Elem()
	}

	if rv.Type() == timeType {
		return Date
	}

	switch rv.Kind() {
	case reflect.String:
		return String
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Number
	case reflect.Bool:
		return Boolean
	case reflect.Slice:
		if rv.IsNil() {
			return Null
		}
		return Array
	case reflect.Array:
		return Array
	case reflect.Map:
		if rv.IsNil() {
			return Null
		}
		return Object
	case reflect.Struct:
		return Object
	case reflect.Func:
		if rv.IsNil() {
			return Null
		}
		return Function
	default:
		return Unknown
	}
}

// Is reports whether v carries exactly the given tag.
func Is(v any, tag Tag) bool {
	return Of(v) == tag
}

// AsString returns the string held by v when v is tagged String.
func AsString(v any) (string, bool) {
	if Of(v) != String {
		return "", false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	return rv.String(), true
}

// AsNumber returns the numeric value of v when v is a finite Number or a
// string that parses as a finite decimal (surrounding spaces allowed).
func AsNumber(v any) (float64, bool) {
	switch Of(v) {
	case Number:
		rv := reflect.ValueOf(v)
		for rv.Kind() == reflect.Pointer {
			rv = rv.Elem()
		}
		var n float64
		switch {
		case rv.CanInt():
			n = float64(rv.Int())
		case rv.CanUint():
			n = float64(rv.Uint())
		default:
			n = rv.Float()
		}
		return n, isFinite(n)
	case String:
		s, _ := AsString(v)
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return n, isFinite(n)
	default:
		return 0, false
	}
}

func isFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}
