// Package brkit exposes the Brazilian document, money and date helpers to a
// rendering layer.
//
// The helpers themselves live in sub-packages:
//
//   - pkg/format     – ToCPF, ToRG, ToMoney, ToDate, ToYears, ToEmpty
//   - pkg/validator  – Is, IsCPF, IsDate and rule constructors
//   - pkg/dateformat – layout inference and the date engine
//
// This package wires them into templates without global state. Install
// takes three independent toggles, all disabled by default:
//
//   - Formatters    – the *format.Formatter is placed in the rendering context
//   - FormatFilters – every formatter is registered as a template function
//     keyed by its name (toCPF, toRG, toMoney, toYears, toDate, toEmpty)
//   - Validators    – the Validators namespace is placed in the rendering
//     context and is, isCPF and isDate become template functions
//
// # html/template
//
//	plugin := brkit.Install(brkit.Options{FormatFilters: true})
//	tmpl := template.Must(template.New("row").Funcs(plugin.FuncMap()).Parse(
//	    `{{ .CPF | toCPF }} {{ .Salary | toMoney }} {{ .Admission | toDate }}`,
//	))
//
// In a pipeline the value arrives as the last argument, so extra arguments
// come first: `{{ .Birthdate | toDate true }}` renders YYYY-MM-DD and
// `{{ .Nickname | toEmpty "N/A" }}` overrides the placeholder. toDate and
// isDate also take the call form, `{{ toDate .Birthdate true }}` and
// `{{ isDate .Birthdate "DD/MM/YYYY" }}`. toEmpty cannot tell its two
// arguments apart and only takes the pipeline form. A filter that cannot
// format its input renders an empty string.
//
// # templ
//
//	plugin := brkit.Install(brkit.Options{Formatters: true})
//	ctx := plugin.WithContext(r.Context())
//	_ = brkit.CPF(employee.CPF).Render(ctx, w)
//
// Components read the formatter from the context and fall back to the
// placeholder when the value cannot be formatted.
//
// # Configuration
//
// LoadOptions reads BRKIT_FORMATTERS, BRKIT_FORMAT_FILTERS, BRKIT_VALIDATORS
// and BRKIT_PLACEHOLDER from the environment (and .env), LoadOptionsYAML
// reads the same keys from a YAML document.
package brkit
