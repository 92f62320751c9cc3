package brkit

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/brkit/pkg/format"
)

// ContextKey is a key for context values.
type ContextKey struct{ name string }

func (k *ContextKey) String() string {
	return "brkit context key " + k.name
}

var (
	formatterKey  = &ContextKey{"formatter"}
	validatorsKey = &ContextKey{"validators"}
)

// ContextValue retrieves a typed value from the context.
// Returns the zero value of T if the key is not present or has a different type.
func ContextValue[T any](ctx context.Context, key any) T {
	val, _ := ctx.Value(key).(T)
	return val
}

// WithFormatter stores f in ctx.
func WithFormatter(ctx context.Context, f *format.Formatter) context.Context {
	return context.WithValue(ctx, formatterKey, f)
}

// FormatterFromContext returns the formatter stored in ctx, if any.
func FormatterFromContext(ctx context.Context) (*format.Formatter, bool) {
	f := ContextValue[*format.Formatter](ctx, formatterKey)
	return f, f != nil
}

// WithValidators stores v in ctx.
func WithValidators(ctx context.Context, v *Validators) context.Context {
	return context.WithValue(ctx, validatorsKey, v)
}

// ValidatorsFromContext returns the validators stored in ctx, if any.
func ValidatorsFromContext(ctx context.Context) (*Validators, bool) {
	v := ContextValue[*Validators](ctx, validatorsKey)
	return v, v != nil
}

// LogNamespaces reports which namespaces ctx carries, as a "brkit" group.
// It matches logger.ContextExtractor.
func LogNamespaces(ctx context.Context) (slog.Attr, bool) {
	_, formatters := FormatterFromContext(ctx)
	_, validators := ValidatorsFromContext(ctx)
	if !formatters && !validators {
		return slog.Attr{}, false
	}
	return slog.Group("brkit",
		slog.Bool("formatters", formatters),
		slog.Bool("validators", validators),
	), true
}
