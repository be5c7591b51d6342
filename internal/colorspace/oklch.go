package colorspace

import "math"

const (
	maxSearchChroma  = 0.4
	gamutTolerance   = 0.001
	chromaIterations = 32
)

// SRGBToLinear applies the inverse sRGB transfer function to one channel.
func SRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// LinearToSRGB applies the sRGB transfer function to one channel.
func LinearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// ToOklab converts an sRGB color to Oklab.
func ToOklab(c Color) (L, a, b float64) {
	r := SRGBToLinear(c.R)
	g := SRGBToLinear(c.G)
	bl := SRGBToLinear(c.B)

	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*bl
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*bl
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*bl

	lRoot := math.Cbrt(l)
	mRoot := math.Cbrt(m)
	sRoot := math.Cbrt(s)

	L = 0.2104542553*lRoot + 0.7936177850*mRoot - 0.0040720468*sRoot
	a = 1.9779984951*lRoot - 2.4285922050*mRoot + 0.4505937099*sRoot
	b = 0.0259040371*lRoot + 0.7827717662*mRoot - 0.8086757660*sRoot
	return L, a, b
}

// oklabToLinear converts Oklab to unclamped linear RGB.
func oklabToLinear(L, a, b float64) (r, g, bl float64) {
	lRoot := L + 0.3963377774*a + 0.2158037573*b
	mRoot := L - 0.1055613458*a - 0.0638541728*b
	sRoot := L - 0.0894841775*a - 1.2914855480*b

	l := lRoot * lRoot * lRoot
	m := mRoot * mRoot * mRoot
	s := sRoot * sRoot * sRoot

	r = 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return r, g, bl
}

func oklchToLinear(L, C, H float64) (r, g, b float64) {
	rad := H * math.Pi / 180
	return oklabToLinear(L, C*math.Cos(rad), C*math.Sin(rad))
}

// ToOklch converts an sRGB color to OKLCH. Grays report hue 0.
func ToOklch(c Color) LCH {
	L, a, b := ToOklab(c)
	C := math.Hypot(a, b)
	H := 0.0
	if C >= achromatic {
		H = normalizeHue(math.Atan2(b, a) * 180 / math.Pi)
	}
	return LCH{L: L, C: C, H: H}
}

// FromOklch converts OKLCH to sRGB. Coordinates outside the sRGB gamut are
// clipped channel-wise.
func FromOklch(L, C, H float64) Color {
	r, g, b := oklchToLinear(L, math.Max(C, 0), H)
	return Color{
		R: LinearToSRGB(Clamp(r, 0, 1)),
		G: LinearToSRGB(Clamp(g, 0, 1)),
		B: LinearToSRGB(Clamp(b, 0, 1)),
	}.Clamped()
}

func inGamut(L, C, H float64) bool {
	r, g, b := oklchToLinear(L, C, H)
	lo, hi := -gamutTolerance, 1+gamutTolerance
	return r >= lo && r <= hi && g >= lo && g <= hi && b >= lo && b <= hi
}

// MaxChromaInGamut returns the largest chroma at lightness L and hue H whose
// linear RGB stays inside the gamut.
func MaxChromaInGamut(L, H float64) float64 {
	lo, hi := 0.0, maxSearchChroma
	for i := 0; i < chromaIterations; i++ {
		mid := (lo + hi) / 2
		if inGamut(L, mid, H) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// fitChroma leaves in-gamut coordinates untouched and otherwise lowers chroma
// to the gamut boundary.
func fitChroma(l LCH) LCH {
	l.L = Clamp(l.L, 0, 1)
	if l.C < 0 {
		l.C = 0
	}
	if inGamut(l.L, l.C, l.H) {
		return l
	}
	l.C = math.Min(l.C, MaxChromaInGamut(l.L, l.H))
	return l
}

// Distance is the Euclidean distance between two colors in Oklab.
func Distance(a, b Color) float64 {
	l1, a1, b1 := ToOklab(a)
	l2, a2, b2 := ToOklab(b)
	return math.Sqrt((l1-l2)*(l1-l2) + (a1-a2)*(a1-a2) + (b1-b2)*(b1-b2))
}
