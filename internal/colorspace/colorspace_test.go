package colorspace

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-4

func assertColorNear(t *testing.T, want, got Color, tol float64) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, tol, "red")
	assert.InDelta(t, want.G, got.G, tol, "green")
	assert.InDelta(t, want.B, got.B, tol, "blue")
}

func TestTransferFunctionRoundTrip(t *testing.T) {
	for i := 0; i <= 100; i++ {
		v := float64(i) / 100
		require.InDelta(t, v, LinearToSRGB(SRGBToLinear(v)), 1e-9)
	}
	assert.InDelta(t, 0.0, SRGBToLinear(0), 1e-12)
	assert.InDelta(t, 1.0, SRGBToLinear(1), 1e-12)
	assert.InDelta(t, 0.04045/12.92, SRGBToLinear(0.04045), 1e-12)
	assert.InDelta(t, 0.0031308*12.92, LinearToSRGB(0.0031308), 1e-12)
}

func TestOklchRoundTrip(t *testing.T) {
	steps := []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1}
	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				c := Color{r, g, b}
				assertColorNear(t, c, ToOklch(c).RGB(), tolerance)
			}
		}
	}
}

func TestOklchReferenceValues(t *testing.T) {
	white := ToOklch(White)
	assert.InDelta(t, 1.0, white.L, 1e-3)
	assert.Less(t, white.C, achromatic)

	black := ToOklch(Black)
	assert.InDelta(t, 0.0, black.L, 1e-6)

	red := ToOklch(Color{1, 0, 0})
	assert.InDelta(t, 0.628, red.L, 1e-3)
	assert.InDelta(t, 0.2577, red.C, 1e-3)
	assert.InDelta(t, 29.23, red.H, 0.1)
}

func TestGrayHasZeroHue(t *testing.T) {
	l := ToOklch(Gray(0.5))
	assert.True(t, l.IsAchromatic())
	assert.Equal(t, 0.0, l.H)
}

func TestFromOklchClipsOutOfGamut(t *testing.T) {
	c := FromOklch(0.9, 0.4, 140)
	for _, v := range c.Values() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestMaxChromaInGamutStaysInGamut(t *testing.T) {
	for L := 0.05; L < 1; L += 0.05 {
		for H := 0.0; H < 360; H += 15 {
			C := MaxChromaInGamut(L, H)
			require.GreaterOrEqual(t, C, 0.0)
			require.True(t, inGamut(L, C, H), "L=%.2f H=%.0f C=%.4f", L, H, C)

			c := FromOklch(L, C, H)
			for _, v := range c.Values() {
				require.GreaterOrEqual(t, v, 0.0)
				require.LessOrEqual(t, v, 1.0)
			}
		}
	}
}

func TestMaxChromaAtWhiteIsNearZero(t *testing.T) {
	for _, h := range []float64{0, 120, 240} {
		assert.Less(t, MaxChromaInGamut(1, h), 0.01)
	}
}

func TestLightenDarkenMoveLightness(t *testing.T) {
	base := Color{0.3, 0.4, 0.6}
	l0 := ToOklch(base).L

	assert.InDelta(t, l0+0.1, ToOklch(Lighten(base, 0.1)).L, 0.01)
	assert.InDelta(t, l0-0.1, ToOklch(Darken(base, 0.1)).L, 0.01)

	top := Lighten(White, 0.2)
	assertColorNear(t, White, top, 1e-3)
	bottom := Darken(Black, 0.2)
	assertColorNear(t, Black, bottom, 1e-3)
}

func TestLightenKeepsHue(t *testing.T) {
	base := FromOklch(0.5, 0.1, 250)
	lighter := ToOklch(Lighten(base, 0.15))
	assert.Less(t, HueDistance(250, lighter.H), 2.0)
}

func TestDesaturateSaturate(t *testing.T) {
	base := FromOklch(0.6, 0.12, 30)
	c0 := ToOklch(base).C

	assert.InDelta(t, c0-0.05, ToOklch(Desaturate(base, 0.05)).C, 0.005)
	assert.Less(t, ToOklch(Desaturate(base, 1)).C, 0.002)
	assert.Greater(t, ToOklch(Saturate(base, 0.03)).C, c0)

	gray := Gray(0.4)
	assert.Equal(t, gray, Saturate(gray, 0.2))
	assert.Equal(t, gray, Desaturate(gray, 0.2))
}

func TestWithHue(t *testing.T) {
	base := FromOklch(0.6, 0.1, 30)
	rotated := ToOklch(WithHue(base, 390+180))
	assert.Less(t, HueDistance(210, rotated.H), 2.0)
	assert.InDelta(t, 0.6, rotated.L, 0.01)

	gray := Gray(0.5)
	assert.Equal(t, gray, WithHue(gray, 120))
}

func TestMixEndpoints(t *testing.T) {
	pairs := [][2]Color{
		{{0.9, 0.1, 0.1}, {0.1, 0.2, 0.9}},
		{Gray(0.2), {0.2, 0.8, 0.3}},
		{{1, 1, 0}, Black},
	}
	for _, p := range pairs {
		assertColorNear(t, p[0], Mix(p[0], p[1], 0), tolerance)
		assertColorNear(t, p[1], Mix(p[0], p[1], 1), tolerance)
	}
}

func TestMixHueWraparound(t *testing.T) {
	a := FromOklch(0.7, 0.1, 350)
	b := FromOklch(0.7, 0.1, 10)

	mid := ToOklch(Mix(a, b, 0.5))
	assert.Less(t, HueDistance(mid.H, 0), 1.5, "hue %.2f", mid.H)
	assert.Greater(t, mid.C, 0.05)
}

func TestMixWithGrayKeepsHue(t *testing.T) {
	blue := FromOklch(0.55, 0.15, 260)
	mid := ToOklch(Mix(Gray(0.5), blue, 0.5))
	assert.Less(t, HueDistance(mid.H, 260), 2.0)
}

func TestContrastRatio(t *testing.T) {
	assert.InDelta(t, 21.0, ContrastRatio(White, Black), 1e-9)
	assert.InDelta(t, 21.0, ContrastRatio(Black, White), 1e-9)
	assert.InDelta(t, 1.0, ContrastRatio(Gray(0.3), Gray(0.3)), 1e-9)
}

func TestEnsureContrastOnBlack(t *testing.T) {
	got := EnsureContrast(Gray(0.1), Black, 4.5)
	assert.GreaterOrEqual(t, ContrastRatio(got, Black), 4.5)
}

func TestEnsureContrastReturnsSatisfiedInputUnchanged(t *testing.T) {
	fg := Color{0.9, 0.85, 0.8}
	assert.Equal(t, fg, EnsureContrast(fg, Black, 4.5))
}

func TestEnsureContrastProperty(t *testing.T) {
	backgrounds := []Color{Black, White, Gray(0.18), Gray(0.45), Gray(0.6), {0.1, 0.1, 0.3}, {0.95, 0.9, 0.7}}
	foregrounds := []Color{Gray(0.5), {0.8, 0.2, 0.2}, {0.2, 0.6, 0.9}, Gray(0.05)}
	for _, bg := range backgrounds {
		// Upper bound reachable against bg.
		reachable := math.Max(ContrastRatio(White, bg), ContrastRatio(Black, bg))
		for _, fg := range foregrounds {
			for _, ratio := range []float64{3, 4.5, 7} {
				got, res := SeekContrast(fg, bg, ratio)
				actual := ContrastRatio(got, bg)
				assert.InDelta(t, res.Ratio, actual, 1e-9)
				if ratio <= reachable*0.98 {
					assert.True(t, res.Met, "fg=%s bg=%s ratio=%.1f got %.2f", fg, bg, ratio, actual)
					assert.GreaterOrEqual(t, actual, ratio)
				}
				assert.LessOrEqual(t, res.Steps, contrastMaxSteps)
			}
		}
	}
}

func TestSeekContrastFallsBackToPurePole(t *testing.T) {
	fg := MustParseHex("#1149d9")
	bg := MustParseHex("#c3529c")
	require.GreaterOrEqual(t, ContrastRatio(Black, bg), 5.0)

	got, res := SeekContrast(fg, bg, 5)
	assert.True(t, res.Met, "got %s at %.3f", got, res.Ratio)
	assert.GreaterOrEqual(t, ContrastRatio(got, bg), 5.0)
}

func TestSeekContrastMeetsEveryReachableTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	random := func() Color { return Color{rng.Float64(), rng.Float64(), rng.Float64()} }

	for i := 0; i < 5000; i++ {
		fg, bg := random(), random()
		reachable := math.Max(ContrastRatio(White, bg), ContrastRatio(Black, bg))
		target := 1 + rng.Float64()*(reachable-1)

		got, res := SeekContrast(fg, bg, target)
		if !res.Met {
			t.Fatalf("fg=%s bg=%s target=%.3f reachable=%.3f: got %s at %.3f", fg, bg, target, reachable, got, res.Ratio)
		}
	}
}

func TestEnsureContrastUnreachableReturnsBest(t *testing.T) {
	bg := Gray(0.47)
	got, res := SeekContrast(Gray(0.5), bg, 15)
	assert.False(t, res.Met)
	reachable := math.Max(ContrastRatio(White, bg), ContrastRatio(Black, bg))
	assert.InDelta(t, reachable, ContrastRatio(got, bg), 0.05)
}

func TestReadableOn(t *testing.T) {
	mid := Color{0.45, 0.45, 0.5}
	got := ReadableOn(mid, Gray(0.5), 4.5)
	assert.GreaterOrEqual(t, ContrastRatio(got, mid), 4.5)
}

func TestIsDark(t *testing.T) {
	assert.True(t, IsDark(Black))
	assert.False(t, IsDark(White))

	// Gray channel whose luminance is exactly the threshold.
	boundary := LinearToSRGB(darkLuminance)
	assert.InDelta(t, darkLuminance, Luminance(Gray(boundary)), 1e-12)
	assert.True(t, IsDark(Gray(boundary-1e-4)))
	assert.False(t, IsDark(Gray(boundary+1e-4)))
}

func TestGenerateCategorical(t *testing.T) {
	for _, n := range []int{3, 8, 15} {
		colors := GenerateCategorical(n, 0.7, 0.1, 30)
		require.Len(t, colors, n)

		step := 360.0 / float64(n)
		for i, c := range colors {
			l := ToOklch(c)
			assert.InDelta(t, 0.7, l.L, 0.01)
			want := normalizeHue(30 + float64(i)*step)
			assert.Less(t, HueDistance(l.H, want), 1.0, "n=%d i=%d hue %.2f want %.2f", n, i, l.H, want)
		}
	}
	assert.Nil(t, GenerateCategorical(0, 0.5, 0.1, 0))
}

func TestCategoricalHueSpacingIsExact(t *testing.T) {
	n := 8
	prev := Categorical(0.65, 0.12, 10)
	for i := 1; i < n; i++ {
		next := Categorical(0.65, 0.12, 10+float64(i)*45)
		assert.InDelta(t, 45.0, normalizeHue(next.H-prev.H), 1e-9)
		assert.Equal(t, prev.L, next.L)
		prev = next
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff8000")
	require.NoError(t, err)
	assertColorNear(t, Color{1, 128.0 / 255, 0}, c, 1e-9)
	assert.Equal(t, "#ff8000", c.Hex())

	c, err = ParseHex("00ff00")
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", c.Hex())

	_, err = ParseHex("#zzz")
	assert.Error(t, err)
	_, err = ParseHex("")
	assert.Error(t, err)
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 0.0, Distance(Gray(0.3), Gray(0.3)), 1e-12)
	assert.InDelta(t, 1.0, Distance(White, Black), 1e-3)
}
