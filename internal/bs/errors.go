package bs

import "errors"

var (
	ErrUnsupportedYear = errors.New("unsupported year")
	ErrMalformedDate   = errors.New("malformed date")
	ErrInvalidMonth    = errors.New("invalid month")
	ErrInvalidDay      = errors.New("invalid day")
	ErrInvalidTable    = errors.New("invalid month-length table")
)
