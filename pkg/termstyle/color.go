package termstyle

import (
	"fmt"
	"strconv"
)

// Color is one of the 16 standard terminal colors. The value is the
// foreground SGR code; background codes add 10.
type Color uint8

const (
	Black Color = iota + 30
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

const (
	BrightBlack Color = iota + 90
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var colorNames = map[string]Color{
	"black":         Black,
	"red":           Red,
	"green":         Green,
	"yellow":        Yellow,
	"blue":          Blue,
	"magenta":       Magenta,
	"cyan":          Cyan,
	"white":         White,
	"brightblack":   BrightBlack,
	"brightred":     BrightRed,
	"brightgreen":   BrightGreen,
	"brightyellow":  BrightYellow,
	"brightblue":    BrightBlue,
	"brightmagenta": BrightMagenta,
	"brightcyan":    BrightCyan,
	"brightwhite":   BrightWhite,
}

// ColorFromName resolves a lowercase color name such as "red" or "brightred".
func ColorFromName(name string) (Color, error) {
	c, ok := colorNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown color %q", ErrInvalidColorCode, name)
	}

	return c, nil
}

func (c Color) foreground() string {
	return strconv.Itoa(int(c))
}

func (c Color) background() string {
	return strconv.Itoa(int(c) + 10)
}
