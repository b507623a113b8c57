package main

import (
	"log"
	"os"

	"github.com/jinzhu/configor"
	"github.com/karashiiro/termstyle/pkg/termstyle"
)

// Chart ordering; the color and style name tables are maps.
var chartColors = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"brightblack", "brightred", "brightgreen", "brightyellow",
	"brightblue", "brightmagenta", "brightcyan", "brightwhite",
}

var chartStyles = []string{
	"bold", "dim", "italic", "underline", "blink", "invert", "hidden", "strikethrough",
}

func main() {
	var config Configuration
	err := configor.New(&configor.Config{ENVPrefix: "TERMSTYLE"}).Load(&config, os.Args[1:]...)
	if err != nil {
		log.Fatalln(err)
	}

	if config.NamedChart {
		printNamedChart(config.Sample)
	}

	if config.StyleChart {
		printStyleChart(config.Sample)
	}

	if config.TrueColor {
		printTrueColorRamp(config.Sample)
	}

	if config.PaletteChart {
		printPaletteChart(config.Sample)
	}

	if config.Markup {
		printMarkupSample()
	}
}

func printNamedChart(sample string) {
	for _, name := range chartColors {
		color, err := termstyle.ColorFromName(name)
		if err != nil {
			log.Fatalln(err)
		}

		termstyle.New(sample).Foreground(color).Print()
		termstyle.New(sample).Background(color).Print()
	}
}

func printStyleChart(sample string) {
	for _, name := range chartStyles {
		style, err := termstyle.StyleFromName(name)
		if err != nil {
			log.Fatalln(err)
		}

		termstyle.New(sample).AddStyle(style).Print()
	}
}

func printTrueColorRamp(sample string) {
	for r := 0; r <= 255; r += 51 {
		termstyle.New(sample).ForegroundRGB(termstyle.RGB{R: uint8(r)}).Print()
	}

	st, err := termstyle.New(sample).ForegroundHex("#00ff00")
	if err != nil {
		log.Fatalln(err)
	}
	st.Bold().Print()

	termstyle.New(sample).
		ForegroundRGB(termstyle.HexValue(0x8888ff)).
		Background(termstyle.Black).
		Print()
}

func printPaletteChart(sample string) {
	samples := []termstyle.RGB{
		{R: 250, G: 30, B: 20},
		{R: 30, G: 200, B: 90},
		{R: 128, G: 128, B: 128},
	}

	for _, c := range samples {
		termstyle.New(sample).ForegroundNearest(c).Print()
		termstyle.New(sample).BackgroundNearest(c).Print()
	}

	for n := 16; n < 232; n += 36 {
		termstyle.New(sample).Foreground256(uint8(n)).Print()
	}
}

func printMarkupSample() {
	line, err := termstyle.Parse("plain <red>red <bold>and bold</> plain again <bg:blue>on blue</>")
	if err != nil {
		log.Fatalln(err)
	}

	os.Stdout.WriteString(line + "\n")
}
