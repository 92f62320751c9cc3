package brkit

import "errors"

// ErrInvalidOptions is returned when an options document cannot be decoded.
var ErrInvalidOptions = errors.New("invalid brkit options")
