package dateformat

import "errors"

var (
	// ErrUnknownLayout is returned when a date is parsed with the Unknown layout.
	ErrUnknownLayout = errors.New("unknown date layout")

	// ErrInvalidDate is returned when text matches a layout but is not a real calendar date.
	ErrInvalidDate = errors.New("invalid date")
)
