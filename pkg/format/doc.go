// Package format renders Brazilian documents, money and dates for display.
//
// Every formatter returns the formatted value and a bool. A false bool means
// the input could not be formatted (wrong kind, no digits, unrecognised date
// layout) and callers are expected to show a placeholder instead. Nothing in
// the package panics or returns an error for bad input.
//
//	format.ToCPF("52998224725")      // "529.982.247-25", true
//	format.ToCPF("12345678")         // "123.456.78", true
//	format.ToRG("000000000")         // "00.000.000-0", true
//	format.ToMoney(1200)             // "R$ 1.200,00", true
//	format.ToDate("2006-12-21")      // "21/12/2006", true
//	format.ToDate("21/12/2006", true) // "2006-12-21", true
//	format.ToEmpty(nil)              // "-"
//
// Document formatters insert punctuation progressively, so partial input
// yields partial but correctly placed grouping. That makes them suitable for
// as-you-type masks.
//
// The package level functions use a default Formatter backed by
// dateformat.Default and the wall clock. Build your own with NewFormatter to
// swap the date engine, pin the clock in tests or change the placeholder.
package format
