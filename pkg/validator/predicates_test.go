package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brkit/pkg/dateformat"
	"github.com/dmitrymomot/brkit/pkg/typetag"
	"github.com/dmitrymomot/brkit/pkg/validator"
)

func TestIs(t *testing.T) {
	assert.True(t, validator.Is(12, typetag.Number))
	assert.True(t, validator.Is(map[string]string{"name": "Lucas"}, typetag.Object))
	assert.False(t, validator.Is([]int{2, 3}, typetag.Object))
	assert.True(t, validator.Is("12", typetag.String))
}

func TestIsCPF(t *testing.T) {
	t.Run("valid numbers with any punctuation", func(t *testing.T) {
		for _, cpf := range []string{
			"52998224725",
			"529.982.247-25",
			"529 982 247 25",
			"111.444.777-35",
			"111-444-777/35",
		} {
			assert.True(t, validator.IsCPF(cpf), cpf)
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		for _, cpf := range []string{
			"",
			"Abacaxi",
			"00000000000",
			"000.000.000-00",
			"529.982.247-2",
			"529.982.247-255",
			"529.982.247-15", // first check digit flipped
			"529.982.247-24", // second check digit flipped
			"111.444.777-53",
		} {
			assert.False(t, validator.IsCPF(cpf), cpf)
		}
	})

	t.Run("non-string input fails closed", func(t *testing.T) {
		assert.False(t, validator.IsCPF(52998224725))
		assert.False(t, validator.IsCPF(12345678901))
		assert.False(t, validator.IsCPF(nil))
		assert.False(t, validator.IsCPF([]byte("52998224725")))
	})

	t.Run("only the zero sequence is rejected as repetition", func(t *testing.T) {
		assert.True(t, validator.IsCPF("111.111.111-11"))
	})
}

func TestCPFCheckDigits(t *testing.T) {
	t.Run("known bases", func(t *testing.T) {
		digits, ok := validator.CPFCheckDigits("529982247")
		require.True(t, ok)
		assert.Equal(t, "25", digits)

		digits, ok = validator.CPFCheckDigits("111444777")
		require.True(t, ok)
		assert.Equal(t, "35", digits)
	})

	t.Run("generated numbers validate and flipped digits do not", func(t *testing.T) {
		for _, base := range []string{"123456789", "987654321", "000000001", "314159265", "271828182"} {
			digits, ok := validator.CPFCheckDigits(base)
			require.True(t, ok, base)

			cpf := base + digits
			assert.True(t, validator.IsCPF(cpf), cpf)
			assert.True(t, validator.IsCPF(cpf[:3]+"."+cpf[3:6]+"."+cpf[6:9]+"-"+cpf[9:]), cpf)

			for _, pos := range []int{9, 10} {
				flipped := []byte(cpf)
				flipped[pos] = '0' + (flipped[pos]-'0'+1)%10
				assert.False(t, validator.IsCPF(string(flipped)), string(flipped))
			}
		}
	})

	t.Run("rejects malformed bases", func(t *testing.T) {
		for _, base := range []string{"", "12345678", "1234567890", "12345678a"} {
			_, ok := validator.CPFCheckDigits(base)
			assert.False(t, ok, base)
		}
	})
}

func TestIsRG(t *testing.T) {
	for _, rg := range []string{"00.000.000-0", "123456789", "12.345.678-X", "12345678B"} {
		assert.True(t, validator.IsRG(rg), rg)
	}
	for _, rg := range []string{"", "1234567", "12.345.678-90", "12.345.678-x", "Abacaxi"} {
		assert.False(t, validator.IsRG(rg), rg)
	}
	assert.False(t, validator.IsRG(123456789))
}

func TestIsDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		layout   []dateformat.Layout
		expected bool
	}{
		{name: "day first slash", input: "21/12/2006", expected: true},
		{name: "day first dash", input: "21-12-2006", expected: true},
		{name: "iso", input: "2006-12-21", expected: true},
		{name: "bad shape", input: "3/102/2006", expected: false},
		{name: "impossible day", input: "31/02/2006", expected: false},
		{name: "impossible month", input: "2000-21-12", expected: false},
		{name: "unrecognized layout", input: "2006/12/21", expected: false},
		{name: "explicit matching layout", input: "21/12/2006", layout: []dateformat.Layout{dateformat.DDMMYYYYSlash}, expected: true},
		{name: "explicit mismatching layout", input: "21/12/2006", layout: []dateformat.Layout{dateformat.YYYYMMDDDash}, expected: false},
		{name: "explicit unknown layout falls back to inference", input: "21/12/2006", layout: []dateformat.Layout{dateformat.Unknown}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.IsDate(tt.input, tt.layout...))
		})
	}
}

type stubEngine struct {
	dateformat.Engine
	calls []dateformat.Layout
	valid bool
}

func (s *stubEngine) Valid(_ string, layout dateformat.Layout) bool {
	s.calls = append(s.calls, layout)
	return s.valid
}

func (s *stubEngine) YearsBetween(time.Time, time.Time) int { return 0 }

func TestIsDateWith(t *testing.T) {
	t.Run("delegates verdict to engine with inferred layout", func(t *testing.T) {
		engine := &stubEngine{valid: true}
		assert.True(t, validator.IsDateWith(engine, "2000-21-12"))
		assert.Equal(t, []dateformat.Layout{dateformat.YYYYMMDDDash}, engine.calls)
	})

	t.Run("does not consult engine for unrecognized text", func(t *testing.T) {
		engine := &stubEngine{valid: true}
		assert.False(t, validator.IsDateWith(engine, "2000/12/21"))
		assert.Empty(t, engine.calls)
	})
}

func TestIsMoney(t *testing.T) {
	assert.True(t, validator.IsMoney(1200))
	assert.True(t, validator.IsMoney(15.50))
	assert.True(t, validator.IsMoney("1200"))
	assert.False(t, validator.IsMoney("Abacaxi"))
	assert.False(t, validator.IsMoney(nil))
}
