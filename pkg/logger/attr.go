package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Operation records the kind of work, such as "format" or "validate", under "operation".
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}

// Layout records a date layout pattern under the key "layout".
// Empty patterns produce an empty Attr.
func Layout(pattern string) slog.Attr {
	if pattern == "" {
		return slog.Attr{}
	}
	return slog.String("layout", pattern)
}

// Enabled records the enabled namespaces of an installation under "enabled".
func Enabled(names ...string) slog.Attr {
	return slog.Any("enabled", names)
}
