// Package validator provides predicates and rule constructors for Brazilian
// personal documents, dates and monetary values.
//
// Two layers are offered:
//
//   - Predicates (Is, IsCPF, IsDate, IsMoney) that take loosely typed input
//     and answer with a plain bool. They never panic; any input that is of
//     the wrong kind or shape is simply reported as invalid.
//   - Rule constructors (ValidCPF, ValidRG, ValidDate, ValidMoney, ...) that
//     wrap the predicates with field names and translation keys so several
//     checks can be aggregated with Apply.
//
// # CPF
//
// IsCPF strips every non-digit, requires exactly eleven digits that are not
// all zero, and verifies both mod-11 check digits. CPFCheckDigits computes the
// pair for a nine digit base.
//
// # Dates
//
// IsDate infers the layout with dateformat.Infer unless one is given and then
// asks a dateformat.Engine whether the text is a real calendar date.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.ValidCPF("cpf", form.CPF),
//	    validator.ValidDate("birthdate", form.Birthdate),
//	    validator.ValidMoney("salary", form.Salary),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("cpf"), verrs[0].TranslationKey == "validation.cpf"
//	}
//
// # Error Handling
//
// ValidationErrors implements the error interface, so it works with
// errors.As. Individual field errors can be inspected with Has, Get,
// GetErrors and Fields.
//
// All helpers are stateless and goroutine-safe.
package validator
