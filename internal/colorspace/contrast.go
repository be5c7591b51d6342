package colorspace

import "math"

const (
	contrastStep     = 0.005
	contrastMaxSteps = 200

	// darkLuminance is the relative luminance below which a background is
	// treated as a dark theme.
	darkLuminance = 0.18
)

// Luminance returns the WCAG relative luminance of c.
func Luminance(c Color) float64 {
	return 0.2126*SRGBToLinear(c.R) + 0.7152*SRGBToLinear(c.G) + 0.0722*SRGBToLinear(c.B)
}

// ContrastRatio returns the WCAG contrast ratio between two colors, in [1,21].
func ContrastRatio(a, b Color) float64 {
	la := Luminance(a) + 0.05
	lb := Luminance(b) + 0.05
	return math.Max(la, lb) / math.Min(la, lb)
}

// IsDark reports whether c reads as a dark background.
func IsDark(c Color) bool {
	return Luminance(c) < darkLuminance
}

// ContrastResult describes the outcome of a contrast search.
type ContrastResult struct {
	Ratio float64
	Met   bool
	Steps int
}

// EnsureContrast returns fg unchanged when it already reaches minRatio
// against bg; otherwise it walks fg's lightness toward the pole that
// contrasts most with bg and returns the first candidate that reaches
// minRatio, or the best candidate seen once the step budget is spent.
func EnsureContrast(fg, bg Color, minRatio float64) Color {
	c, _ := SeekContrast(fg, bg, minRatio)
	return c
}

// SeekContrast is EnsureContrast with a report of the achieved ratio.
func SeekContrast(fg, bg Color, minRatio float64) (Color, ContrastResult) {
	ratio := ContrastRatio(fg, bg)
	if ratio >= minRatio {
		return fg, ContrastResult{Ratio: ratio, Met: true}
	}

	direction, pole := 1.0, White
	if ContrastRatio(Black, bg) > ContrastRatio(White, bg) {
		direction, pole = -1.0, Black
	}

	start := ToOklch(fg)
	best, bestRatio := fg, ratio
	lightness := start.L
	for step := 1; step <= contrastMaxSteps; step++ {
		lightness = Clamp(lightness+direction*contrastStep, 0, 1)
		candidate := fitChroma(LCH{L: lightness, C: start.C, H: start.H}).RGB()
		r := ContrastRatio(candidate, bg)
		if r >= minRatio {
			return candidate, ContrastResult{Ratio: r, Met: true, Steps: step}
		}
		if r > bestRatio {
			best, bestRatio = candidate, r
		}
		if lightness == 0 || lightness == 1 {
			return poleOrBest(pole, bg, minRatio, best, bestRatio, step)
		}
	}
	return poleOrBest(pole, bg, minRatio, best, bestRatio, contrastMaxSteps)
}

// poleOrBest settles an exhausted search. A fitted candidate at L=0 or L=1
// can keep some chroma, so the pure pole is scored too.
func poleOrBest(pole, bg Color, minRatio float64, best Color, bestRatio float64, steps int) (Color, ContrastResult) {
	if r := ContrastRatio(pole, bg); r >= bestRatio {
		return pole, ContrastResult{Ratio: r, Met: r >= minRatio, Steps: steps}
	}
	return best, ContrastResult{Ratio: bestRatio, Steps: steps}
}

// ReadableOn picks the text color for bg: preferred when it can be pushed to
// minRatio, otherwise whichever of white or black contrasts more.
func ReadableOn(bg, preferred Color, minRatio float64) Color {
	c, res := SeekContrast(preferred, bg, minRatio)
	if res.Met {
		return c
	}
	light := EnsureContrast(White, bg, minRatio)
	dark := EnsureContrast(Black, bg, minRatio)
	best := c
	for _, candidate := range []Color{light, dark} {
		if ContrastRatio(candidate, bg) > ContrastRatio(best, bg) {
			best = candidate
		}
	}
	return best
}
