package sanitizer

import (
	"regexp"
	"strings"
)

// ReplaceAll returns a transform rewriting every match of re with repl.
func ReplaceAll(re *regexp.Regexp, repl string) func(string) string {
	return func(s string) string {
		return re.ReplaceAllString(s, repl)
	}
}

// ReplaceFirst returns a transform rewriting only the leftmost match of re.
func ReplaceFirst(re *regexp.Regexp, repl string) func(string) string {
	return func(s string) string {
		loc := re.FindStringSubmatchIndex(s)
		if loc == nil {
			return s
		}

		var b strings.Builder
		b.Grow(len(s) + len(repl))
		b.WriteString(s[:loc[0]])
		b.Write(re.ExpandString(nil, repl, s, loc))
		b.WriteString(s[loc[1]:])
		return b.String()
	}
}

// ReplaceFirstString returns a transform rewriting the first literal occurrence of old.
func ReplaceFirstString(old, repl string) func(string) string {
	return func(s string) string {
		return strings.Replace(s, old, repl, 1)
	}
}
