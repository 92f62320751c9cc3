package brkit

import (
	"github.com/dmitrymomot/brkit/pkg/dateformat"
	"github.com/dmitrymomot/brkit/pkg/typetag"
	"github.com/dmitrymomot/brkit/pkg/validator"
)

// Validators is the validator namespace handed to rendering code.
type Validators struct {
	engine dateformat.Engine
}

// NewValidators creates a namespace using engine for date checks.
// A nil engine means dateformat.Default.
func NewValidators(engine dateformat.Engine) *Validators {
	if engine == nil {
		engine = dateformat.Default
	}
	return &Validators{engine: engine}
}

// Is compares the type tag of value with tag, e.g. "String" or "Number".
func (v *Validators) Is(value any, tag string) bool {
	return validator.Is(value, typetag.Tag(tag))
}

func (v *Validators) IsCPF(value any) bool {
	return validator.IsCPF(value)
}

// IsDate checks a date, optionally in a layout given by pattern such as
// "DD/MM/YYYY". An unknown pattern falls back to inference.
func (v *Validators) IsDate(value any, pattern ...string) bool {
	text, ok := typetag.AsString(value)
	if !ok {
		return false
	}

	layout := dateformat.Unknown
	if len(pattern) > 0 {
		layout, _ = dateformat.ParseLayout(pattern[0])
	}
	return validator.IsDateWith(v.engine, text, layout)
}
