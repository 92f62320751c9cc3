package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brkit"
	"github.com/dmitrymomot/brkit/pkg/format"
	"github.com/dmitrymomot/brkit/pkg/logger"
)

func newTestRegistry() *CommandRegistry {
	clock := func() time.Time { return time.Date(2016, time.December, 21, 0, 0, 0, 0, time.UTC) }

	r := NewCommandRegistry()
	registerCommands(r, format.NewFormatter(format.WithClock(clock)), logger.Discard())
	return r
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
		wantErr  bool
	}{
		{name: "cpf", args: []string{"cpf", "52998224725"}, expected: "529.982.247-25\n"},
		{name: "partial cpf", args: []string{"cpf", "12345678"}, expected: "123.456.78\n"},
		{name: "rg", args: []string{"rg", "000000000"}, expected: "00.000.000-0\n"},
		{name: "money", args: []string{"money", "1200"}, expected: "R$ 1.200,00\n"},
		{name: "date", args: []string{"date", "2006-12-21"}, expected: "21/12/2006\n"},
		{name: "date to database", args: []string{"date", "--database", "21/12/2006"}, expected: "2006-12-21\n"},
		{name: "years", args: []string{"years", "21-12-2006"}, expected: "10\n"},
		{name: "valid cpf", args: []string{"is-cpf", "529.982.247-25"}, expected: "true\n"},
		{name: "valid date with layout", args: []string{"is-date", "--layout", "DD/MM/YYYY", "21/12/2006"}, expected: "true\n"},
		{name: "invalid cpf", args: []string{"is-cpf", "000.000.000-00"}, expected: "false\n", wantErr: true},
		{name: "impossible date", args: []string{"is-date", "31/02/2006"}, expected: "false\n", wantErr: true},
		{name: "unformattable money prints placeholder", args: []string{"money", "Abacaxi"}, expected: "-\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := newTestRegistry().Execute(context.Background(), tt.args, &out)
			if tt.wantErr {
				assert.ErrorIs(t, err, errNoResult)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestCommands_UsageErrors(t *testing.T) {
	r := newTestRegistry()

	t.Run("no command", func(t *testing.T) {
		var out bytes.Buffer
		assert.Error(t, r.Execute(context.Background(), nil, &out))
		assert.Contains(t, out.String(), "COMMANDS:")
	})

	t.Run("unknown command", func(t *testing.T) {
		var out bytes.Buffer
		assert.EqualError(t, r.Execute(context.Background(), []string{"cnpj", "1"}, &out), "unknown command: cnpj")
	})

	t.Run("missing value", func(t *testing.T) {
		var out bytes.Buffer
		assert.EqualError(t, r.Execute(context.Background(), []string{"cpf"}, &out), "cpf: exactly one value required")
		assert.Contains(t, out.String(), "brkit cpf [flags] <value>")
	})

	t.Run("unknown layout", func(t *testing.T) {
		var out bytes.Buffer
		err := r.Execute(context.Background(), []string{"is-date", "--layout", "YYYY/MM/DD", "2006/12/21"}, &out)
		assert.EqualError(t, err, `is-date: unknown layout "YYYY/MM/DD"`)
	})

	t.Run("help lists commands in order", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, r.Execute(context.Background(), []string{"help"}, &out))
		help := out.String()
		assert.Less(t, strings.Index(help, "\n    cpf "), strings.Index(help, "\n    money "))
		assert.Contains(t, help, "\n    is-date ")
	})
}

func TestCommands_LogsWithContext(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithLevel(slog.LevelDebug),
		logger.WithContextValue("command", commandKey{}),
		logger.WithContextExtractors(brkit.LogNamespaces),
	)

	plugin := brkit.Install(brkit.Options{Formatters: true}, brkit.WithLogger(logger.Discard()))
	r := NewCommandRegistry()
	registerCommands(r, plugin.Formatter(), log)

	var out bytes.Buffer
	err := r.Execute(plugin.WithContext(context.Background()), []string{"is-date", "--layout", "DD/MM/YYYY", "21/12/2006"}, &out)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "command finished", entry["msg"])
	assert.Equal(t, "is-date", entry["command"])
	assert.Equal(t, "validate", entry["operation"])
	assert.Equal(t, "DD/MM/YYYY", entry["layout"])
	assert.Equal(t, true, entry["ok"])
	assert.Equal(t, map[string]any{"formatters": true, "validators": false}, entry["brkit"])
}
