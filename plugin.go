package brkit

import (
	"context"
	"html/template"
	"log/slog"
	"maps"
	"strconv"

	"github.com/dmitrymomot/brkit/pkg/dateformat"
	"github.com/dmitrymomot/brkit/pkg/format"
	"github.com/dmitrymomot/brkit/pkg/logger"
	"github.com/dmitrymomot/brkit/pkg/typetag"
)

// Plugin is the result of Install. It is immutable and safe for concurrent use.
type Plugin struct {
	opts       Options
	formatter  *format.Formatter
	validators *Validators
	funcs      template.FuncMap
	log        *slog.Logger
}

// InstallOption configures Install.
type InstallOption func(*Plugin)

// WithLogger sets the logger used to report the installation. Nil is ignored.
func WithLogger(l *slog.Logger) InstallOption {
	return func(p *Plugin) {
		if l != nil {
			p.log = l
		}
	}
}

// WithFormatterInstance replaces the formatter built from Options.
func WithFormatterInstance(f *format.Formatter) InstallOption {
	return func(p *Plugin) {
		if f != nil {
			p.formatter = f
		}
	}
}

// WithValidatorsInstance replaces the default validator namespace.
func WithValidatorsInstance(v *Validators) InstallOption {
	return func(p *Plugin) {
		if v != nil {
			p.validators = v
		}
	}
}

// Install builds a Plugin for the enabled namespaces.
func Install(opts Options, options ...InstallOption) *Plugin {
	p := &Plugin{
		opts:       opts,
		formatter:  format.NewFormatter(format.WithPlaceholder(placeholderOf(opts))),
		validators: NewValidators(nil),
		log:        slog.Default(),
	}
	for _, opt := range options {
		opt(p)
	}

	p.funcs = template.FuncMap{}
	if opts.FormatFilters {
		maps.Copy(p.funcs, p.filters())
	}
	if opts.Validators {
		maps.Copy(p.funcs, p.validatorFuncs())
	}

	p.log.Debug("brkit installed",
		logger.Component("brkit"),
		logger.Enabled(opts.Enabled()...),
		slog.Int("template_funcs", len(p.funcs)),
	)
	return p
}

func placeholderOf(opts Options) string {
	if opts.Placeholder == "" {
		return format.DefaultPlaceholder
	}
	return opts.Placeholder
}

// Options returns the options the plugin was installed with.
func (p *Plugin) Options() Options {
	return p.opts
}

// Formatter returns the formatter namespace, or nil when Formatters is disabled.
func (p *Plugin) Formatter() *format.Formatter {
	if !p.opts.Formatters {
		return nil
	}
	return p.formatter
}

// Validators returns the validator namespace, or nil when Validators is disabled.
func (p *Plugin) Validators() *Validators {
	if !p.opts.Validators {
		return nil
	}
	return p.validators
}

// FuncMap returns a copy of the template functions for the enabled namespaces.
func (p *Plugin) FuncMap() template.FuncMap {
	return maps.Clone(p.funcs)
}

// WithContext stores the enabled namespaces in ctx for rendering code.
func (p *Plugin) WithContext(ctx context.Context) context.Context {
	if p.opts.Formatters {
		ctx = WithFormatter(ctx, p.formatter)
	}
	if p.opts.Validators {
		ctx = WithValidators(ctx, p.validators)
	}
	return ctx
}

// filters returns one template function per formatter. Unformattable input
// renders as "".
func (p *Plugin) filters() template.FuncMap {
	f := p.formatter
	return template.FuncMap{
		"toCPF": func(value any) string {
			s, _ := f.ToCPF(value)
			return s
		},
		"toRG": func(value any) string {
			s, _ := f.ToRG(value)
			return s
		},
		"toMoney": func(value any) string {
			s, _ := f.ToMoney(value)
			return s
		},
		"toYears": func(value any) string {
			text, _ := typetag.AsString(value)
			years, ok := f.ToYears(text)
			if !ok {
				return ""
			}
			return strconv.Itoa(years)
		},
		"toDate": func(args ...any) string {
			value, toDatabase := dateArgs(args)
			text, ok := typetag.AsString(value)
			if !ok {
				return ""
			}
			s, _ := f.ToDate(text, toDatabase)
			return s
		},
		"toEmpty": func(args ...any) any {
			value, rest := splitPiped(args)
			if len(rest) > 0 {
				if char, ok := typetag.AsString(rest[0]); ok {
					return f.ToEmpty(value, char)
				}
			}
			return f.ToEmpty(value)
		},
	}
}

func (p *Plugin) validatorFuncs() template.FuncMap {
	v := p.validators
	return template.FuncMap{
		"is":    v.Is,
		"isCPF": v.IsCPF,
		"isDate": func(args ...any) bool {
			value, patterns := layoutArgs(args)
			return v.IsDate(value, patterns...)
		},
	}
}

// dateArgs reads the toDate arguments in call form, `toDate .D true`, or in
// pipeline form, `.D | toDate true`.
func dateArgs(args []any) (any, bool) {
	if len(args) < 2 {
		value, _ := splitPiped(args)
		return value, false
	}
	if toDatabase, ok := args[len(args)-1].(bool); ok {
		return args[0], toDatabase
	}
	toDatabase, _ := args[0].(bool)
	return args[len(args)-1], toDatabase
}

// layoutArgs reads the isDate arguments in call form, `isDate .D "DD/MM/YYYY"`,
// or in pipeline form, `.D | isDate "DD/MM/YYYY"`. A trailing known layout
// pattern marks the call form.
func layoutArgs(args []any) (any, []string) {
	if len(args) < 2 {
		value, _ := splitPiped(args)
		return value, nil
	}
	if pattern, ok := typetag.AsString(args[len(args)-1]); ok {
		if _, known := dateformat.ParseLayout(pattern); known {
			return args[0], []string{pattern}
		}
	}

	value, rest := splitPiped(args)
	if pattern, ok := typetag.AsString(rest[0]); ok {
		return value, []string{pattern}
	}
	return value, nil
}

// splitPiped separates the piped value (last argument) from the leading ones.
func splitPiped(args []any) (any, []any) {
	if len(args) == 0 {
		return nil, nil
	}
	return args[len(args)-1], args[:len(args)-1]
}
