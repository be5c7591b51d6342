package colorspace

import "math"

// Lighten raises OKLCH lightness by amount, keeping chroma inside the gamut
// at the new lightness.
func Lighten(c Color, amount float64) Color {
	l := ToOklch(c)
	l.L += amount
	return fitChroma(l).RGB()
}

// Darken lowers OKLCH lightness by amount.
func Darken(c Color, amount float64) Color {
	return Lighten(c, -amount)
}

// Saturate raises OKLCH chroma by amount. Grays stay gray.
func Saturate(c Color, amount float64) Color {
	l := ToOklch(c)
	if l.IsAchromatic() {
		return c
	}
	l.C += amount
	return fitChroma(l).RGB()
}

// Desaturate lowers OKLCH chroma by amount, flooring at zero.
func Desaturate(c Color, amount float64) Color {
	l := ToOklch(c)
	if l.IsAchromatic() {
		return c
	}
	l.C = math.Max(l.C-amount, 0)
	return fitChroma(l).RGB()
}

// SetLightness replaces the OKLCH lightness of c.
func SetLightness(c Color, L float64) Color {
	l := ToOklch(c)
	l.L = L
	return fitChroma(l).RGB()
}

// SetChroma replaces the OKLCH chroma of c. Grays stay gray.
func SetChroma(c Color, C float64) Color {
	l := ToOklch(c)
	if l.IsAchromatic() {
		return c
	}
	l.C = C
	return fitChroma(l).RGB()
}

// WithHue rotates c to hue h in degrees, keeping lightness and as much chroma
// as the gamut allows. Grays stay gray.
func WithHue(c Color, h float64) Color {
	l := ToOklch(c)
	if l.IsAchromatic() {
		return c
	}
	l.H = normalizeHue(h)
	return fitChroma(l).RGB()
}

// Mix blends a toward b in OKLCH. Hue follows the shorter arc; when one side
// is gray the other side's hue is used.
func Mix(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return MixLCH(ToOklch(a), ToOklch(b), t).RGB()
}

// MixLCH interpolates two OKLCH colors and fits the result to the gamut.
func MixLCH(a, b LCH, t float64) LCH {
	ha, hb := a.H, b.H
	switch {
	case a.IsAchromatic() && b.IsAchromatic():
		ha, hb = 0, 0
	case a.IsAchromatic():
		ha = hb
	case b.IsAchromatic():
		hb = ha
	}

	delta := hb - ha
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}

	return fitChroma(LCH{
		L: a.L + (b.L-a.L)*t,
		C: a.C + (b.C-a.C)*t,
		H: normalizeHue(ha + delta*t),
	})
}

// HueDistance returns the angular distance between two hues in [0,180].
func HueDistance(h1, h2 float64) float64 {
	d := math.Abs(normalizeHue(h1) - normalizeHue(h2))
	if d > 180 {
		d = 360 - d
	}
	return d
}
