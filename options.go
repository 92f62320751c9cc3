package brkit

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/brkit/pkg/config"
	"github.com/dmitrymomot/brkit/pkg/format"
)

// Options selects which namespaces Install enables.
type Options struct {
	Formatters    bool   `env:"BRKIT_FORMATTERS" yaml:"formatters"`
	FormatFilters bool   `env:"BRKIT_FORMAT_FILTERS" yaml:"format_filters"`
	Validators    bool   `env:"BRKIT_VALIDATORS" yaml:"validators"`
	Placeholder   string `env:"BRKIT_PLACEHOLDER" envDefault:"-" yaml:"placeholder"`
}

// DefaultOptions has every namespace disabled and the "-" placeholder.
func DefaultOptions() Options {
	return Options{Placeholder: format.DefaultPlaceholder}
}

// LoadOptions reads Options from the environment.
func LoadOptions() (Options, error) {
	var opts Options
	if err := config.Load(&opts); err != nil {
		return DefaultOptions(), fmt.Errorf("load brkit options: %w", err)
	}
	return opts, nil
}

// LoadOptionsYAML reads Options from a YAML document. Missing keys keep the
// values of DefaultOptions; an empty document is not an error.
func LoadOptionsYAML(r io.Reader) (Options, error) {
	opts := DefaultOptions()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return DefaultOptions(), errors.Join(ErrInvalidOptions, err)
	}
	return opts, nil
}

// Enabled lists the names of the enabled namespaces.
func (o Options) Enabled() []string {
	var names []string
	if o.Formatters {
		names = append(names, "formatters")
	}
	if o.FormatFilters {
		names = append(names, "format_filters")
	}
	if o.Validators {
		names = append(names, "validators")
	}
	return names
}
