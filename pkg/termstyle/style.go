package termstyle

import "fmt"

// Style is a text decoration applied independently of color. The value is
// the SGR code; code 6 is unused in the conventional table.
type Style uint8

const (
	StyleBold          Style = 1
	StyleDim           Style = 2
	StyleItalic        Style = 3
	StyleUnderline     Style = 4
	StyleBlink         Style = 5
	StyleInvert        Style = 7
	StyleHidden        Style = 8
	StyleStrikethrough Style = 9
)

var styleNames = map[string]Style{
	"bold":          StyleBold,
	"dim":           StyleDim,
	"italic":        StyleItalic,
	"underline":     StyleUnderline,
	"blink":         StyleBlink,
	"invert":        StyleInvert,
	"hidden":        StyleHidden,
	"strikethrough": StyleStrikethrough,
}

// StyleFromName resolves a lowercase style name such as "bold".
func StyleFromName(name string) (Style, error) {
	s, ok := styleNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown style %q", ErrInvalidColorCode, name)
	}

	return s, nil
}
