package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/brkit/pkg/dateformat"
	"github.com/dmitrymomot/brkit/pkg/format"
	"github.com/dmitrymomot/brkit/pkg/logger"
	"github.com/dmitrymomot/brkit/pkg/validator"
)

func registerCommands(r *CommandRegistry, f *format.Formatter, log *slog.Logger) {
	formatters := []struct {
		name, description string
		examples          []string
		run               func(value string, fs flagValues) (string, bool)
	}{
		{
			name:        "cpf",
			description: "Format a CPF as DDD.DDD.DDD-DD",
			examples:    []string{"brkit cpf 52998224725"},
			run:         func(v string, _ flagValues) (string, bool) { return f.ToCPF(v) },
		},
		{
			name:        "rg",
			description: "Format an RG as DD.DDD.DDD-D",
			examples:    []string{"brkit rg 12345678X"},
			run:         func(v string, _ flagValues) (string, bool) { return f.ToRG(v) },
		},
		{
			name:        "money",
			description: "Format an amount as Brazilian reais",
			examples:    []string{"brkit money 1200", "brkit money 15.5"},
			run:         func(v string, _ flagValues) (string, bool) { return f.ToMoney(v) },
		},
		{
			name:        "date",
			description: "Convert a date to DD/MM/YYYY (or YYYY-MM-DD with --database)",
			examples:    []string{"brkit date 2006-12-21", "brkit date --database 21/12/2006"},
			run:         func(v string, fv flagValues) (string, bool) { return f.ToDate(v, fv.database) },
		},
		{
			name:        "years",
			description: "Print the whole years elapsed since a date",
			examples:    []string{"brkit years 21/12/2006"},
			run: func(v string, _ flagValues) (string, bool) {
				years, ok := f.ToYears(v)
				return fmt.Sprint(years), ok
			},
		},
		{
			name:        "is-cpf",
			description: "Exit 0 when the value is a valid CPF",
			examples:    []string{"brkit is-cpf 529.982.247-25"},
			run: func(v string, _ flagValues) (string, bool) {
				ok := validator.IsCPF(v)
				return fmt.Sprint(ok), ok
			},
		},
		{
			name:        "is-date",
			description: "Exit 0 when the value is a real date (optionally in --layout)",
			examples:    []string{"brkit is-date 31/02/2006", "brkit is-date --layout DD/MM/YYYY 21/12/2006"},
			run: func(v string, fv flagValues) (string, bool) {
				ok := validator.IsDate(v, fv.layout)
				return fmt.Sprint(ok), ok
			},
		},
	}

	for _, fc := range formatters {
		cmd := &Command{
			Name:        fc.name,
			Description: fc.description,
			Usage:       "brkit " + fc.name + " [flags] <value>",
			Examples:    fc.examples,
		}
		run := fc.run
		operation := "format"
		if strings.HasPrefix(fc.name, "is-") {
			operation = "validate"
		}
		cmd.Run = func(ctx context.Context, args []string, out io.Writer) error {
			fs := cmd.NewFlagSet(out)
			database := fs.Bool("database", false, "Output dates as YYYY-MM-DD")
			layout := fs.String("layout", "", "Expected date layout: YYYY-MM-DD, DD-MM-YYYY or DD/MM/YYYY")
			if err := fs.Parse(args); err != nil {
				return err
			}
			if fs.NArg() != 1 {
				fs.Usage()
				return fmt.Errorf("%s: exactly one value required", cmd.Name)
			}

			fv := flagValues{database: *database}
			if *layout != "" {
				l, ok := dateformat.ParseLayout(*layout)
				if !ok {
					return fmt.Errorf("%s: unknown layout %q", cmd.Name, *layout)
				}
				fv.layout = l
			}

			result, ok := run(fs.Arg(0), fv)
			log.DebugContext(ctx, "command finished",
				logger.Operation(operation),
				logger.Layout(fv.layout.String()),
				slog.Bool("ok", ok),
			)
			if !ok {
				if operation == "validate" {
					fmt.Fprintln(out, result)
				} else {
					fmt.Fprintln(out, f.Placeholder())
				}
				return fmt.Errorf("%s %q: %w", cmd.Name, fs.Arg(0), errNoResult)
			}
			fmt.Fprintln(out, result)
			return nil
		}
		r.Register(cmd)
	}
}

type flagValues struct {
	database bool
	layout   dateformat.Layout
}
