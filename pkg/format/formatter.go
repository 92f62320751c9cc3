package format

import (
	"time"

	"github.com/dmitrymomot/brkit/pkg/dateformat"
)

// DefaultPlaceholder is what ToEmpty returns for empty values.
const DefaultPlaceholder = "-"

// Formatter holds the collaborators of the date formatters.
// It is immutable after construction and safe for concurrent use.
type Formatter struct {
	engine      dateformat.Engine
	now         func() time.Time
	placeholder string
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithEngine sets the date engine. Nil engines are ignored.
func WithEngine(engine dateformat.Engine) Option {
	return func(f *Formatter) {
		if engine != nil {
			f.engine = engine
		}
	}
}

// WithClock sets the source of "now" used by ToYears. Nil clocks are ignored.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		if now != nil {
			f.now = now
		}
	}
}

// WithPlaceholder sets the default placeholder used by ToEmpty.
func WithPlaceholder(placeholder string) Option {
	return func(f *Formatter) {
		f.placeholder = placeholder
	}
}

// NewFormatter creates a Formatter using dateformat.Default, time.Now and "-"
// unless overridden.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		engine:      dateformat.Default,
		now:         time.Now,
		placeholder: DefaultPlaceholder,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Placeholder returns the default placeholder of f.
func (f *Formatter) Placeholder() string {
	return f.placeholder
}

var defaultFormatter = NewFormatter()

// Default returns the Formatter behind the package level functions.
func Default() *Formatter {
	return defaultFormatter
}

func ToCPF(value any) (string, bool) { return defaultFormatter.ToCPF(value) }

func ToRG(value any) (string, bool) { return defaultFormatter.ToRG(value) }

func ToMoney(value any) (string, bool) { return defaultFormatter.ToMoney(value) }

func ToDate(text string, toDatabase ...bool) (string, bool) {
	return defaultFormatter.ToDate(text, toDatabase...)
}

func ToYears(text string) (int, bool) { return defaultFormatter.ToYears(text) }

func ToEmpty(value any, placeholder ...string) any {
	return defaultFormatter.ToEmpty(value, placeholder...)
}
