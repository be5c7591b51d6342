package colorspace

import "math"

// GenerateCategorical returns n colors evenly spaced in hue starting at
// startHue. All colors share lightness targetL; chroma is targetC limited per
// hue to the gamut boundary.
func GenerateCategorical(n int, targetL, targetC, startHue float64) []Color {
	if n <= 0 {
		return nil
	}
	colors := make([]Color, n)
	step := 360.0 / float64(n)
	for i := range colors {
		colors[i] = Categorical(targetL, targetC, startHue+float64(i)*step).RGB()
	}
	return colors
}

// Categorical returns a single gamut-clipped OKLCH color at the given hue.
func Categorical(targetL, targetC, hue float64) LCH {
	h := normalizeHue(hue)
	L := Clamp(targetL, 0, 1)
	return LCH{L: L, C: math.Min(math.Max(targetC, 0), MaxChromaInGamut(L, h)), H: h}
}
