// Package dateformat recognises the three textual date layouts used across
// Brazilian forms and databases and converts between them.
//
// Recognised layouts:
//
//   - YYYY-MM-DD – ISO date, the database representation
//   - DD-MM-YYYY – day first with dashes
//   - DD/MM/YYYY – day first with slashes, the display representation
//
// Infer works on lexical shape only. It never checks calendar validity, so
// "2000-21-12" is reported as YYYY-MM-DD and "12/21/2000" as DD/MM/YYYY.
// Semantic checks (month bounds, days in month, leap years) belong to an
// Engine. Default is a stateless Engine built on the time package.
//
// # Usage
//
//	layout := dateformat.Infer("21/12/2006") // dateformat.DDMMYYYYSlash
//	if layout == dateformat.Unknown {
//	    return
//	}
//	t, err := dateformat.Default.Parse("21/12/2006", layout)
//	if err != nil {
//	    // errors.Is(err, dateformat.ErrInvalidDate)
//	}
//	iso := dateformat.Default.Format(t, dateformat.YYYYMMDDDash) // "2006-12-21"
//
// All functions are safe for concurrent use.
package dateformat
