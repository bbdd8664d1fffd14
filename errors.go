package dotscreen

import "errors"

var (
	// ErrUnknownMethod is returned by the Registry when a method name
	// is not in the catalogue.
	ErrUnknownMethod = errors.New("unknown halftone method")

	// ErrInvalidCharset is returned when an ASCII charset contains no
	// characters.
	ErrInvalidCharset = errors.New("charset must contain at least one character")

	// ErrInvalidAspect is returned when an explicit character aspect
	// ratio is zero or negative.
	ErrInvalidAspect = errors.New("char aspect must be positive")
)
