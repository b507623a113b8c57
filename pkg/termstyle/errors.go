package termstyle

import "errors"

var (
	// ErrInvalidColorCode is returned when a color or style name does not
	// resolve to a known code.
	ErrInvalidColorCode = errors.New("invalid color code")

	// ErrInvalidHexColor is returned when a hex color string does not match
	// the expected digit pattern.
	ErrInvalidHexColor = errors.New("invalid hex color")
)
