package main

type Configuration struct {
	Sample string `default:"Hello, world!"`

	NamedChart   bool `default:"true"`
	StyleChart   bool `default:"true"`
	TrueColor    bool `default:"true"`
	PaletteChart bool `default:"true"`
	Markup       bool `default:"true"`
}
