package termstyle

import (
	"errors"
	"testing"
)

func TestParseHexSixDigits(t *testing.T) {
	c, err := ParseHex("ff8000")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if c != (RGB{R: 255, G: 128, B: 0}) {
		t.Errorf("unexpected channels: %+v", c)
	}
}

func TestParseHexLeadingHash(t *testing.T) {
	c, err := ParseHex("#0000ff")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if c != (RGB{B: 255}) {
		t.Errorf("unexpected channels: %+v", c)
	}
}

func TestParseHexThreeDigitExpansion(t *testing.T) {
	c, err := ParseHex("#f0c")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if c != (RGB{R: 0xff, G: 0x00, B: 0xcc}) {
		t.Errorf("unexpected channels: %+v", c)
	}
}

func TestParseHexUppercase(t *testing.T) {
	c, err := ParseHex("FF0000")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if c != (RGB{R: 255}) {
		t.Errorf("unexpected channels: %+v", c)
	}
}

func TestParseHexRejectsBadDigits(t *testing.T) {
	_, err := ParseHex("zzzzzz")
	if !errors.Is(err, ErrInvalidHexColor) {
		t.Errorf("expected ErrInvalidHexColor, got %v", err)
	}
}

func TestParseHexRejectsBadLength(t *testing.T) {
	for _, input := range []string{"", "#", "ff", "ffff", "1234567"} {
		_, err := ParseHex(input)
		if !errors.Is(err, ErrInvalidHexColor) {
			t.Errorf("%q: expected ErrInvalidHexColor, got %v", input, err)
		}
	}
}

func TestHexValue(t *testing.T) {
	c := HexValue(0x123456)
	if c != (RGB{R: 0x12, G: 0x34, B: 0x56}) {
		t.Errorf("unexpected channels: %+v", c)
	}
}
