// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"
	"math"
)

// WithAlpha returns c with its alpha replaced by a ∈ [0, 1].
// The colours used here are straight (non-premultiplied) RGBA.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 || math.IsNaN(a) {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(math.Round(a * 255))
	return c
}

// Alpha returns the alpha of c as a fraction.
func Alpha(c color.RGBA) float64 {
	return float64(c.A) / 255
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// ParseHex parses "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		return c, fmt.Errorf("invalid colour %q", s)
	}
	if err != nil {
		return c, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return c, nil
}

// MustHex is ParseHex for package-level colour tables.
func MustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// premultiply converts straight RGBA into ebiten's premultiplied floats.
func premultiply(c color.RGBA) (r, g, b, a float32) {
	a = float32(c.A) / 255
	return float32(c.R) / 255 * a, float32(c.G) / 255 * a, float32(c.B) / 255 * a, a
}
