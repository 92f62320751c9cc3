package dateformat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brkit/pkg/dateformat"
)

func TestDefaultEngineParse(t *testing.T) {
	engine := dateformat.Default

	t.Run("parses every layout to the same day", func(t *testing.T) {
		want := time.Date(2006, time.December, 21, 0, 0, 0, 0, time.UTC)

		for text, layout := range map[string]dateformat.Layout{
			"2006-12-21": dateformat.YYYYMMDDDash,
			"21-12-2006": dateformat.DDMMYYYYDash,
			"21/12/2006": dateformat.DDMMYYYYSlash,
		} {
			got, err := engine.Parse(text, layout)
			require.NoError(t, err, text)
			assert.True(t, want.Equal(got), text)
		}
	})

	t.Run("rejects impossible dates", func(t *testing.T) {
		for _, text := range []string{"31/02/2006", "29/02/2001", "00/01/2006", "21/13/2006", "12/21/2000"} {
			_, err := engine.Parse(text, dateformat.DDMMYYYYSlash)
			assert.ErrorIs(t, err, dateformat.ErrInvalidDate, text)
			assert.False(t, engine.Valid(text, dateformat.DDMMYYYYSlash), text)
		}
	})

	t.Run("accepts leap day", func(t *testing.T) {
		assert.True(t, engine.Valid("29/02/2000", dateformat.DDMMYYYYSlash))
	})

	t.Run("rejects mismatched layout", func(t *testing.T) {
		assert.False(t, engine.Valid("21/12/2006", dateformat.YYYYMMDDDash))
	})

	t.Run("unknown layout", func(t *testing.T) {
		_, err := engine.Parse("21/12/2006", dateformat.Unknown)
		assert.ErrorIs(t, err, dateformat.ErrUnknownLayout)
	})
}

func TestDefaultEngineFormat(t *testing.T) {
	day := time.Date(2006, time.December, 21, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2006-12-21", dateformat.Default.Format(day, dateformat.YYYYMMDDDash))
	assert.Equal(t, "21-12-2006", dateformat.Default.Format(day, dateformat.DDMMYYYYDash))
	assert.Equal(t, "21/12/2006", dateformat.Default.Format(day, dateformat.DDMMYYYYSlash))
	assert.Equal(t, "", dateformat.Default.Format(day, dateformat.Unknown))
}

func TestDefaultEngineYearsBetween(t *testing.T) {
	birth := time.Date(2006, time.December, 21, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		to       time.Time
		expected int
	}{
		{name: "day before birthday", to: time.Date(2016, time.December, 20, 0, 0, 0, 0, time.UTC), expected: 9},
		{name: "on birthday", to: time.Date(2016, time.December, 21, 0, 0, 0, 0, time.UTC), expected: 10},
		{name: "month before birthday", to: time.Date(2016, time.November, 30, 0, 0, 0, 0, time.UTC), expected: 9},
		{name: "same day", to: birth, expected: 0},
		{name: "into the past", to: time.Date(1996, time.December, 21, 0, 0, 0, 0, time.UTC), expected: -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dateformat.Default.YearsBetween(birth, tt.to))
		})
	}
}
