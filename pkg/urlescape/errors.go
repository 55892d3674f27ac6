package urlescape

import "github.com/pkg/errors"

var (
	// ErrInvalidInput is returned when a nil value is handed to EscapeValue.
	ErrInvalidInput = errors.New("urlescape: invalid input, value is nil")
	// ErrMalformedEscape is returned by Unescape for a '%' not followed by two hex digits.
	ErrMalformedEscape = errors.New("urlescape: malformed percent escape")
	// ErrUnknownMode is returned when a dialect name does not match any known mode.
	ErrUnknownMode = errors.New("urlescape: unknown escape mode")
)
