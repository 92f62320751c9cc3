// Package typetag classifies arbitrary Go values into a small closed set of
// tags (String, Number, Object, Array, ...) so that callers can gate loosely
// typed input, such as template arguments, before running string or numeric
// specific logic.
//
//	typetag.Of("12")            // typetag.String
//	typetag.Is(12, typetag.Number) // true
//	typetag.Is([]int{2, 3}, typetag.Object) // false, it is an Array
//
// Number also offers AsNumber, which accepts numeric kinds and strings that
// parse as a finite decimal.
package typetag
