package termstyle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/karashiiro/termstyle/pkg/palette"
)

// StyledString accumulates foreground, background and style state around a
// fixed piece of text. Mutating calls return the same instance so styling
// can be written as one chain; the text itself never changes.
type StyledString struct {
	text       string
	foreground string
	background string
	styles     []Style
}

// New wraps text in a builder with no styling applied. The text is taken
// verbatim, control characters included.
func New(text string) *StyledString {
	return &StyledString{
		text: text,
	}
}

// Foreground sets the foreground to a named color, replacing any previous
// foreground.
func (s *StyledString) Foreground(c Color) *StyledString {
	s.foreground = c.foreground()
	return s
}

// Background sets the background to a named color, replacing any previous
// background.
func (s *StyledString) Background(c Color) *StyledString {
	s.background = c.background()
	return s
}

// ForegroundRGB sets a 24-bit true-color foreground.
func (s *StyledString) ForegroundRGB(c RGB) *StyledString {
	s.foreground = "38;2;" + c.params()
	return s
}

// BackgroundRGB sets a 24-bit true-color background.
func (s *StyledString) BackgroundRGB(c RGB) *StyledString {
	s.background = "48;2;" + c.params()
	return s
}

// ForegroundHex sets the foreground from a hex color string. On failure the
// builder is returned unchanged alongside the error.
func (s *StyledString) ForegroundHex(hex string) (*StyledString, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return s, err
	}

	return s.ForegroundRGB(c), nil
}

// BackgroundHex sets the background from a hex color string. On failure the
// builder is returned unchanged alongside the error.
func (s *StyledString) BackgroundHex(hex string) (*StyledString, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return s, err
	}

	return s.BackgroundRGB(c), nil
}

// Foreground256 sets the foreground to an index into the 256-color palette.
func (s *StyledString) Foreground256(n uint8) *StyledString {
	s.foreground = "38;5;" + strconv.Itoa(int(n))
	return s
}

// Background256 sets the background to an index into the 256-color palette.
func (s *StyledString) Background256(n uint8) *StyledString {
	s.background = "48;5;" + strconv.Itoa(int(n))
	return s
}

// ForegroundNearest sets an indexed foreground using the palette entry
// closest to the given color.
func (s *StyledString) ForegroundNearest(c RGB) *StyledString {
	return s.Foreground256(palette.Nearest(c.R, c.G, c.B))
}

// BackgroundNearest sets an indexed background using the palette entry
// closest to the given color.
func (s *StyledString) BackgroundNearest(c RGB) *StyledString {
	return s.Background256(palette.Nearest(c.R, c.G, c.B))
}

// AddStyle appends a style attribute. Appends are cumulative; adding the
// same attribute twice emits it twice.
func (s *StyledString) AddStyle(st Style) *StyledString {
	s.styles = append(s.styles, st)
	return s
}

func (s *StyledString) Bold() *StyledString          { return s.AddStyle(StyleBold) }
func (s *StyledString) Dim() *StyledString           { return s.AddStyle(StyleDim) }
func (s *StyledString) Italic() *StyledString        { return s.AddStyle(StyleItalic) }
func (s *StyledString) Underline() *StyledString     { return s.AddStyle(StyleUnderline) }
func (s *StyledString) Blink() *StyledString         { return s.AddStyle(StyleBlink) }
func (s *StyledString) Invert() *StyledString        { return s.AddStyle(StyleInvert) }
func (s *StyledString) Hidden() *StyledString        { return s.AddStyle(StyleHidden) }
func (s *StyledString) Strikethrough() *StyledString { return s.AddStyle(StyleStrikethrough) }

// Reset clears the foreground, background and style list, leaving the text
// untouched.
func (s *StyledString) Reset() *StyledString {
	s.foreground = ""
	s.background = ""
	s.styles = nil
	return s
}

// String renders the accumulated state as an ANSI escape sequence wrapping
// the text. Components always render in foreground, styles, background
// order no matter the order they were set in. With nothing set, the text is
// returned bare. String does not mutate the builder and may be called any
// number of times.
func (s *StyledString) String() string {
	var params []string

	if s.foreground != "" {
		params = append(params, s.foreground)
	}

	if len(s.styles) > 0 {
		codes := make([]string, len(s.styles))
		for i, st := range s.styles {
			codes[i] = strconv.Itoa(int(st))
		}
		params = append(params, strings.Join(codes, ";"))
	}

	if s.background != "" {
		params = append(params, s.background)
	}

	if len(params) == 0 {
		return s.text
	}

	var b strings.Builder
	b.WriteString("\x1b[")
	b.WriteString(strings.Join(params, ";"))
	b.WriteString("m")
	b.WriteString(s.text)
	b.WriteString("\x1b[0m")

	return b.String()
}

// Print writes the rendered string and a newline to stdout.
func (s *StyledString) Print() {
	fmt.Println(s.String())
}

func (c RGB) params() string {
	return strconv.Itoa(int(c.R)) + ";" + strconv.Itoa(int(c.G)) + ";" + strconv.Itoa(int(c.B))
}
