package dateformat

import (
	"errors"
	"fmt"
	"time"
)

// Engine performs the semantic side of date handling: strict parsing,
// formatting and whole-year differences. Implementations must be stateless.
type Engine interface {
	// Valid reports whether text is a real calendar date in the given layout.
	Valid(text string, layout Layout) bool
	// Parse reads text in the given layout.
	Parse(text string, layout Layout) (time.Time, error)
	// Format renders t in the given layout.
	Format(t time.Time, layout Layout) string
	// YearsBetween returns the number of whole years from "from" to "to".
	YearsBetween(from, to time.Time) int
}

// Default is the Engine backed by the time package.
var Default Engine = timeEngine{}

type timeEngine struct{}

func (e timeEngine) Valid(text string, layout Layout) bool {
	_, err := e.Parse(text, layout)
	return err == nil
}

func (timeEngine) Parse(text string, layout Layout) (time.Time, error) {
	if !layout.Known() {
		return time.Time{}, ErrUnknownLayout
	}

	t, err := time.Parse(layout.GoLayout(), text)
	if err != nil {
		return time.Time{}, errors.Join(ErrInvalidDate, fmt.Errorf("parse %q as %s: %w", text, layout, err))
	}
	return t, nil
}

func (timeEngine) Format(t time.Time, layout Layout) string {
	if !layout.Known() {
		return ""
	}
	return t.Format(layout.GoLayout())
}

// YearsBetween truncates toward zero, so a birthday not yet reached in the
// final year is not counted.
func (e timeEngine) YearsBetween(from, to time.Time) int {
	if to.Before(from) {
		return -e.YearsBetween(to, from)
	}

	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}
