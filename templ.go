package brkit

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/brkit/pkg/format"
)

// CPF renders value formatted as a CPF.
func CPF(value any) templ.Component {
	return formatted(func(f *format.Formatter) (string, bool) { return f.ToCPF(value) })
}

// RG renders value formatted as an RG.
func RG(value any) templ.Component {
	return formatted(func(f *format.Formatter) (string, bool) { return f.ToRG(value) })
}

// Money renders value as Brazilian reais.
func Money(value any) templ.Component {
	return formatted(func(f *format.Formatter) (string, bool) { return f.ToMoney(value) })
}

// Date renders text as DD/MM/YYYY.
func Date(text string) templ.Component {
	return formatted(func(f *format.Formatter) (string, bool) { return f.ToDate(text) })
}

// Years renders the whole years elapsed since text.
func Years(text string) templ.Component {
	return formatted(func(f *format.Formatter) (string, bool) {
		years, ok := f.ToYears(text)
		return strconv.Itoa(years), ok
	})
}

// Empty renders text, or the placeholder when text is empty.
func Empty(text string) templ.Component {
	return formatted(func(f *format.Formatter) (string, bool) { return text, text != "" })
}

// formatted renders the escaped result of fn, or the placeholder when fn fails.
// Without a formatter in the context the package default is used.
func formatted(fn func(*format.Formatter) (string, bool)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		f, ok := FormatterFromContext(ctx)
		if !ok {
			f = format.Default()
		}

		s, ok := fn(f)
		if !ok {
			s = f.Placeholder()
		}
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}
