package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Lerp interpolates between two opaque colors. t is clamped to [0, 1] and
// channels are truncated.
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 0xff}
}

// Darken scales each channel by factor, clamped to [0, 255].
func Darken(c color.RGBA, factor float64) color.RGBA {
	scale := func(x uint8) uint8 {
		v := int(float64(x) * factor)
		if v < 0 {
			return 0
		}
		if v > 0xff {
			return 0xff
		}
		return uint8(v)
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}

// ParseHex parses a "#RRGGBB" color.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color: %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("failed to parse hex color %q: %v", s, err)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
}

// MustHex is ParseHex for package level palette literals.
func MustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
