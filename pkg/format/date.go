package format

import (
	"time"

	"github.com/dmitrymomot/brkit/pkg/dateformat"
)

// ToDate converts a date in any recognised layout to DD/MM/YYYY, or to
// YYYY-MM-DD when toDatabase is true. It fails when the layout is not
// recognised or the engine rejects the date.
func (f *Formatter) ToDate(text string, toDatabase ...bool) (string, bool) {
	from := dateformat.Infer(text)
	if from == dateformat.Unknown {
		return "", false
	}

	t, err := f.engine.Parse(text, from)
	if err != nil {
		return "", false
	}

	to := dateformat.DDMMYYYYSlash
	if len(toDatabase) > 0 && toDatabase[0] {
		to = dateformat.YYYYMMDDDash
	}
	return f.engine.Format(t, to), true
}

// ToYears returns the whole years elapsed since the date, which is how ages
// are displayed. It fails for the same inputs as ToDate.
func (f *Formatter) ToYears(text string) (int, bool) {
	return f.ToYearsAt(text, f.now())
}

// ToYearsAt is ToYears measured against now instead of the formatter clock.
func (f *Formatter) ToYearsAt(text string, now time.Time) (int, bool) {
	display, ok := f.ToDate(text)
	if !ok {
		return 0, false
	}

	from, err := f.engine.Parse(display, dateformat.DDMMYYYYSlash)
	if err != nil {
		return 0, false
	}
	return f.engine.YearsBetween(from, now), true
}
