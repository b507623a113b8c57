package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Cube channel values for the 6x6x6 color cube occupying indices 16-231.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first index of the 24-step grayscale ramp.
const grayscaleStart = 232

// entries holds palette indices 16-255. The first 16 system colors are
// excluded from matching since their values are terminal-dependent.
var entries [240]colorful.Color

func init() {
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				entries[36*r+6*g+b] = toColor(cubeLevels[r], cubeLevels[g], cubeLevels[b])
			}
		}
	}

	// Grayscale ramp: luminance 8, 18, ..., 238
	for i := 0; i < 24; i++ {
		level := uint8(8 + 10*i)
		entries[grayscaleStart-16+i] = toColor(level, level, level)
	}
}

// Nearest returns the index of the palette entry perceptually closest to the
// given channels, measured in CIE-Lab space. The result is always in the
// 16-255 range.
func Nearest(r, g, b uint8) uint8 {
	target := toColor(r, g, b)

	best := 0
	bestDist := target.DistanceLab(entries[0])
	for i := 1; i < len(entries); i++ {
		if d := target.DistanceLab(entries[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}

	return uint8(best + 16)
}

func toColor(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}
