package palette

import "testing"

func TestNearestCubeCorners(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    uint8
	}{
		{0, 0, 0, 16},        // cube origin
		{255, 255, 255, 231}, // cube top
		{255, 0, 0, 196},
		{0, 255, 0, 46},
		{0, 0, 255, 21},
	}

	for _, c := range cases {
		got := Nearest(c.r, c.g, c.b)
		if got != c.want {
			t.Errorf("Nearest(%d, %d, %d): expected %d, got %d", c.r, c.g, c.b, c.want, got)
		}
	}
}

func TestNearestGrayscaleRamp(t *testing.T) {
	// Luminance 128 is an exact ramp entry: 232 + (128-8)/10
	got := Nearest(128, 128, 128)
	if got != 244 {
		t.Errorf("expected grayscale index 244, got %d", got)
	}

	got = Nearest(8, 8, 8)
	if got != 232 {
		t.Errorf("expected first ramp index 232, got %d", got)
	}
}

func TestNearestSkipsSystemColors(t *testing.T) {
	for _, c := range []uint8{0, 1, 50, 96, 200, 255} {
		got := Nearest(c, c, c)
		if got < 16 {
			t.Errorf("Nearest(%d, %d, %d) returned system color %d", c, c, c, got)
		}
	}
}

func TestNearestExactCubeEntry(t *testing.T) {
	// 95, 135, 175 are cube levels 1, 2, 3: 16 + 36*1 + 6*2 + 3
	got := Nearest(95, 135, 175)
	if got != 67 {
		t.Errorf("expected cube index 67, got %d", got)
	}
}
