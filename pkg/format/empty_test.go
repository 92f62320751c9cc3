package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/brkit/pkg/format"
)

func TestToEmpty(t *testing.T) {
	var nilPtr *string
	var nilSlice []string

	tests := []struct {
		name        string
		input       any
		placeholder []string
		expected    any
	}{
		{name: "nil", input: nil, expected: "-"},
		{name: "nil pointer", input: nilPtr, expected: "-"},
		{name: "nil slice", input: nilSlice, expected: "-"},
		{name: "empty string", input: "", expected: "-"},
		{name: "zero with custom placeholder", input: 0, placeholder: []string{"N/A"}, expected: "N/A"},
		{name: "zero float", input: 0.0, expected: "-"},
		{name: "false", input: false, expected: "-"},
		{name: "text", input: "x", expected: "x"},
		{name: "number", input: 42, expected: 42},
		{name: "true", input: true, expected: true},
		{name: "empty non-nil slice is kept", input: []string{}, expected: []string{}},
		{name: "struct is kept", input: struct{}{}, expected: struct{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, format.ToEmpty(tt.input, tt.placeholder...))
		})
	}
}

func TestFormatterPlaceholder(t *testing.T) {
	f := format.NewFormatter(format.WithPlaceholder("n/a"))

	assert.Equal(t, "n/a", f.Placeholder())
	assert.Equal(t, "n/a", f.ToEmpty(nil))
	assert.Equal(t, "?", f.ToEmpty("", "?"))
	assert.Equal(t, format.DefaultPlaceholder, format.Default().Placeholder())
}
