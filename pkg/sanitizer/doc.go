// Package sanitizer provides small string transforms and the helpers to fold
// them into pipelines.
//
// A transform is any func(string) string. Apply runs a list of transforms
// left to right over a value and Compose stores such a list for reuse:
//
//	clean := sanitizer.Compose(
//	    sanitizer.ReplaceAll(nonDigit, ""),
//	    sanitizer.ReplaceFirst(threeThenOne, "${1}.${2}"),
//	)
//
//	out := clean("123456") // "123.456"
//
// ReplaceFirst mirrors a non-global regular expression replacement: only the
// leftmost match is rewritten. ReplaceAll rewrites every match. Both accept
// the $1 / ${1} expansion syntax of regexp.Regexp.Expand.
//
// None of the helpers returns an error and none keeps state, so they are safe
// for use from multiple goroutines concurrently.
package sanitizer
