package termstyle

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit true color.
type RGB struct {
	R, G, B uint8
}

// HexValue unpacks a 24-bit RGB integer such as 0xFF0000 into its channels.
func HexValue(v uint32) RGB {
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// ParseHex decodes a hex color string. A leading "#" is optional, and both
// the 3-digit and 6-digit forms are accepted; 3-digit input expands by
// doubling each digit ("#f0c" becomes "ff00cc").
func ParseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(s, "#")

	if len(digits) == 3 {
		var expanded [6]byte
		for i := 0; i < 3; i++ {
			expanded[2*i] = digits[i]
			expanded[2*i+1] = digits[i]
		}
		digits = string(expanded[:])
	}

	// Validate the pattern up front rather than leaning on the parse failure.
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
		}
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
	}

	return HexValue(uint32(v)), nil
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
