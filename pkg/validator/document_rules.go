package validator

import (
	"github.com/dmitrymomot/brkit/pkg/dateformat"
)

// ValidCPF validates a CPF number, with or without punctuation.
func ValidCPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsCPF(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid CPF",
			TranslationKey: "validation.cpf",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidRG validates an RG: eight digits and a digit or A, B or X check character.
func ValidRG(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsRG(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid RG",
			TranslationKey: "validation.rg",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidDate validates a calendar date. Without a layout any of YYYY-MM-DD,
// DD-MM-YYYY and DD/MM/YYYY is accepted.
func ValidDate(field, value string, layout ...dateformat.Layout) Rule {
	expected := "YYYY-MM-DD, DD-MM-YYYY or DD/MM/YYYY"
	if len(layout) > 0 && layout[0].Known() {
		expected = layout[0].String()
	}

	return Rule{
		Check: func() bool {
			return IsDate(value, layout...)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid date (" + expected + ")",
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field":  field,
				"layout": expected,
			},
		},
	}
}

// ValidDateLayout only checks the shape of the date, not whether it exists.
func ValidDateLayout(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return dateformat.Infer(value) != dateformat.Unknown
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must use the YYYY-MM-DD, DD-MM-YYYY or DD/MM/YYYY layout",
			TranslationKey: "validation.date_layout",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidMoney accepts numbers and numeric strings that are finite.
func ValidMoney(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return IsMoney(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid monetary amount",
			TranslationKey: "validation.money",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
