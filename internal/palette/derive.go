package palette

import (
	"math"

	"github.com/opencode-ai/ansitheme/internal/colorspace"
)

const (
	fallbackAccentHue = 250.0

	minTextContrast      = 5.0
	panelTextContrast    = 4.5
	mutedTextContrast    = 3.0
	highlightContrast    = 10.0
	accentTextContrast   = 4.5
	indicatorContrast    = 3.0
	accentDesaturation   = 0.02
	iconChromaScale      = 0.75
	maxElevatedDistance  = 0.12
	maxRecessedDistance  = 0.06
	minSurfaceDistance   = 0.015
	functionalAccentStep = 0.02
	functionalMaxSteps   = 40
)

// tint pulls base toward ref's hue and chroma without changing its lightness.
func tint(base, ref colorspace.Color, t float64) colorspace.Color {
	return colorspace.Mix(base, colorspace.SetLightness(ref, colorspace.ToOklch(base).L), t)
}

// hueOf returns the hue of c, or fallback when c is gray.
func hueOf(c colorspace.Color, fallback float64) float64 {
	l := colorspace.ToOklch(c)
	if l.IsAchromatic() {
		return fallback
	}
	return l.H
}

// themeSurface prefers the theme's own color for a surface when it sits on
// the expected side of bg within maxDist; otherwise synthetic is used.
func (e *env) themeSurface(candidate, bg, synthetic colorspace.Color, raised bool, maxDist float64) colorspace.Color {
	d := colorspace.Distance(candidate, bg)
	if d < minSurfaceDistance || d > maxDist {
		return synthetic
	}
	cl := colorspace.ToOklch(candidate).L
	bl := colorspace.ToOklch(bg).L
	lighter := cl > bl
	if lighter != (raised == e.dark) {
		return synthetic
	}
	return candidate
}

// functional clamps an accent into the lightness band where the mode's text
// pole reaches accentTextContrast, stepping further when needed.
func (e *env) functional(accent colorspace.Color) colorspace.Color {
	l := colorspace.ToOklch(accent)
	lo, hi := e.mode(0.35, 0.68), e.mode(0.58, 0.9)
	l.L = colorspace.Clamp(l.L, lo, hi)
	candidate := l.RGB()

	text := e.pole()
	for i := 0; i < functionalMaxSteps; i++ {
		if colorspace.ContrastRatio(text, candidate) >= accentTextContrast {
			return candidate
		}
		candidate = e.sink(candidate, functionalAccentStep)
	}
	return candidate
}

// indicator resolves a mark color that must be visible on both backgrounds.
func (e *env) indicator(base, off, on colorspace.Color, minRatio float64) colorspace.Color {
	worst := func(c colorspace.Color) float64 {
		return math.Min(colorspace.ContrastRatio(c, off), colorspace.ContrastRatio(c, on))
	}
	if worst(base) >= minRatio {
		return base
	}

	restrictive := off
	if colorspace.ContrastRatio(base, on) < colorspace.ContrastRatio(base, off) {
		restrictive = on
	}
	if adjusted := colorspace.EnsureContrast(base, restrictive, minRatio); worst(adjusted) >= minRatio {
		return adjusted
	}

	best := colorspace.White
	if worst(colorspace.Black) > worst(best) {
		best = colorspace.Black
	}
	if worst(best) < minRatio {
		e.logger.Debug().
			Str("role", e.current.name).
			Float64("target", minRatio).
			Float64("achieved", worst(best)).
			Msg("indicator contrast target not reached")
	}
	return best
}

// icon normalizes a semantic hue to the mode's icon lightness.
func (e *env) icon(c colorspace.Color) colorspace.Color {
	l := colorspace.ToOklch(c)
	L := e.mode(0.78, 0.5)
	if l.IsAchromatic() {
		return colorspace.FromOklch(L, 0, 0)
	}
	return colorspace.Categorical(L, l.C*iconChromaScale, l.H).RGB()
}

// categorical generates n colors at the mode's band starting at the accent
// hue.
func (e *env) categorical(n int, darkL, lightL, chroma float64) []colorspace.Color {
	return colorspace.GenerateCategorical(n, e.mode(darkL, lightL), chroma, e.accentHue())
}

func (e *env) accentHue() float64 {
	return hueOf(e.c("accent_primary"), fallbackAccentHue)
}
