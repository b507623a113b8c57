package termstyle

import (
	"fmt"
	"strings"
)

// Parse renders inline markup to an ANSI-styled string. Styled portions are
// opened with a tag naming a color ("<red>"), a background color
// ("<bg:blue>") or a style ("<bold>"); "</>" drops all accumulated styling.
// Tag state persists across text until the next tag changes it.
func Parse(text string) (string, error) {
	var out strings.Builder
	var run []rune

	var fg, bg *Color
	var styles []Style

	flush := func() {
		if len(run) == 0 {
			return
		}

		st := New(string(run))
		if fg != nil {
			st.Foreground(*fg)
		}
		for _, attr := range styles {
			st.AddStyle(attr)
		}
		if bg != nil {
			st.Background(*bg)
		}

		out.WriteString(st.String())
		run = run[:0]
	}

	readingTag := false
	currentTag := ""
	for _, c := range text {
		if c == '<' && !readingTag {
			// Tag open
			flush()
			readingTag = true
			currentTag = ""
			continue
		} else if c == '>' && readingTag {
			// Tag close
			readingTag = false

			switch {
			case currentTag == "/":
				fg = nil
				bg = nil
				styles = nil
			case strings.HasPrefix(currentTag, "bg:"):
				color, err := ColorFromName(strings.TrimPrefix(currentTag, "bg:"))
				if err != nil {
					return "", err
				}
				bg = &color
			default:
				if style, err := StyleFromName(currentTag); err == nil {
					styles = append(styles, style)
					continue
				}

				color, err := ColorFromName(currentTag)
				if err != nil {
					return "", err
				}
				fg = &color
			}

			continue
		}

		if readingTag {
			currentTag += string(c)
		} else {
			run = append(run, c)
		}
	}

	if readingTag {
		return "", fmt.Errorf("%w: unterminated tag %q", ErrInvalidColorCode, "<"+currentTag)
	}

	flush()

	return out.String(), nil
}
