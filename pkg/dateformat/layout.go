package dateformat

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Layout identifies one of the recognised date layouts.
type Layout int

const (
	// Unknown means the text does not follow any recognised layout.
	Unknown Layout = iota
	// YYYYMMDDDash is "YYYY-MM-DD".
	YYYYMMDDDash
	// DDMMYYYYDash is "DD-MM-YYYY".
	DDMMYYYYDash
	// DDMMYYYYSlash is "DD/MM/YYYY".
	DDMMYYYYSlash
)

// dateLength is the only length a recognised date can have.
const dateLength = 10

var (
	isoRegex      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dayDashRegex  = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	daySlashRegex = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

var patterns = map[Layout]string{
	YYYYMMDDDash:  "YYYY-MM-DD",
	DDMMYYYYDash:  "DD-MM-YYYY",
	DDMMYYYYSlash: "DD/MM/YYYY",
}

var goLayouts = map[Layout]string{
	YYYYMMDDDash:  "2006-01-02",
	DDMMYYYYDash:  "02-01-2006",
	DDMMYYYYSlash: "02/01/2006",
}

// Infer reports which layout text follows by shape alone.
// The trimmed text must be exactly 10 characters long; the patterns are then
// matched against the text as given, so surrounding whitespace never matches.
func Infer(text string) Layout {
	if utf8.RuneCountInString(strings.TrimSpace(text)) != dateLength {
		return Unknown
	}

	switch {
	case isoRegex.MatchString(text):
		return YYYYMMDDDash
	case dayDashRegex.MatchString(text):
		return DDMMYYYYDash
	case daySlashRegex.MatchString(text):
		return DDMMYYYYSlash
	default:
		return Unknown
	}
}

// ParseLayout maps a pattern such as "DD/MM/YYYY" back to its Layout.
func ParseLayout(pattern string) (Layout, bool) {
	pattern = strings.ToUpper(strings.TrimSpace(pattern))
	for l, p := range patterns {
		if p == pattern {
			return l, true
		}
	}
	return Unknown, false
}

// String returns the human pattern of the layout, or an empty string for Unknown.
func (l Layout) String() string {
	return patterns[l]
}

// GoLayout returns the time package reference layout.
func (l Layout) GoLayout() string {
	return goLayouts[l]
}

// Known reports whether l is one of the recognised layouts.
func (l Layout) Known() bool {
	_, ok := patterns[l]
	return ok
}
