// Package colorspace provides sRGB, Oklab and OKLCH conversions and the
// perceptual color manipulation primitives used to derive UI palettes.
package colorspace

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color with channels in [0,1].
type Color struct {
	R float64
	G float64
	B float64
}

// LCH is a color in OKLCH coordinates. H is in degrees [0,360).
type LCH struct {
	L float64
	C float64
	H float64
}

// Common poles.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// achromatic is the chroma below which a color is treated as gray and its
// hue is considered undefined.
const achromatic = 0.001

// Gray returns a neutral color with all channels set to v.
func Gray(v float64) Color {
	return Color{v, v, v}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Clamped returns c with every channel limited to [0,1].
func (c Color) Clamped() Color {
	return Color{Clamp(c.R, 0, 1), Clamp(c.G, 0, 1), Clamp(c.B, 0, 1)}
}

// Values returns the channels as a slice.
func (c Color) Values() []float64 {
	return []float64{c.R, c.G, c.B}
}

// Hex formats c as #rrggbb.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

func (c Color) String() string {
	return c.Hex()
}

// ParseHex parses "#rrggbb" or "rrggbb" into a Color.
func ParseHex(s string) (Color, error) {
	if s == "" {
		return Color{}, fmt.Errorf("empty color")
	}
	if s[0] != '#' {
		s = "#" + s
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: col.R, G: col.G, B: col.B}.Clamped(), nil
}

// MustParseHex is ParseHex for literals known to be valid.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsAchromatic reports whether the color has no meaningful hue.
func (l LCH) IsAchromatic() bool {
	return l.C < achromatic
}

// RGB converts the OKLCH coordinates back to sRGB, clipping to the gamut.
func (l LCH) RGB() Color {
	return FromOklch(l.L, l.C, l.H)
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
