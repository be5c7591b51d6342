package palette

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/ansitheme/internal/colorspace"
)

// hueSource builds a source whose ANSI slots are distinct hues.
func hueSource(bg, fg colorspace.Color) Source {
	hues := [8]float64{0, 29, 142, 100, 264, 328, 195, 0}
	var src Source
	for i, h := range hues {
		switch i {
		case Black:
			src.ANSI[i] = colorspace.Gray(0.05)
			src.ANSI[i+8] = colorspace.Gray(0.4)
		case White:
			src.ANSI[i] = colorspace.Gray(0.8)
			src.ANSI[i+8] = colorspace.Gray(0.97)
		default:
			src.ANSI[i] = colorspace.FromOklch(0.62, 0.14, h)
			src.ANSI[i+8] = colorspace.FromOklch(0.75, 0.12, h)
		}
	}
	src.Background = bg
	src.Foreground = fg
	return src
}

func darkSource() Source {
	return hueSource(colorspace.Gray(0.1), colorspace.Gray(0.9))
}

func lightSource() Source {
	return hueSource(colorspace.Gray(0.97), colorspace.Gray(0.15))
}

func newTestMapper() *Mapper {
	return NewMapper(WithLogger(zerolog.Nop()))
}

func ratio(t *testing.T, p *Palette, fg, bg string) float64 {
	t.Helper()
	f, ok := p.Color(fg)
	require.True(t, ok, "missing role %s", fg)
	b, ok := p.Color(bg)
	require.True(t, ok, "missing role %s", bg)
	return colorspace.ContrastRatio(f, b)
}

func TestDefaultTableIsValid(t *testing.T) {
	table := DefaultTable()
	require.NotNil(t, table)
	assert.GreaterOrEqual(t, table.Len(), 150)

	seen := make(map[string]bool)
	for _, role := range table.Roles() {
		for _, dep := range role.Deps {
			assert.True(t, seen[dep], "%s evaluated before its dependency %s", role.Name, dep)
		}
		seen[role.Name] = true
	}
}

func TestEndToEndDarkScenario(t *testing.T) {
	p := newTestMapper().Map(darkSource())

	assert.True(t, p.Dark)
	assert.GreaterOrEqual(t, ratio(t, p, "ui_text", "ui_bg"), 5.0)
	assert.GreaterOrEqual(t, ratio(t, p, "ui_selection_text", "ui_selection"), 4.5)

	collections, ok := p.Set("collection_colors")
	require.True(t, ok)
	require.Len(t, collections, 8)
	start := colorspace.ToOklch(collections[0]).H
	for i, c := range collections {
		want := start + float64(i)*45
		got := colorspace.ToOklch(c).H
		assert.Less(t, colorspace.HueDistance(got, want), 1.0, "collection %d hue %.2f want %.2f", i, got, want)
	}
	for i := range collections {
		for j := i + 1; j < len(collections); j++ {
			assert.NotEqual(t, collections[i].Hex(), collections[j].Hex())
		}
	}
}

func TestEveryRoleIsSetInBothModes(t *testing.T) {
	mapper := newTestMapper()
	for name, src := range map[string]Source{"dark": darkSource(), "light": lightSource()} {
		t.Run(name, func(t *testing.T) {
			p := mapper.Map(src)
			for _, role := range mapper.Table().Roles() {
				if role.Set {
					set, ok := p.Set(role.Name)
					assert.True(t, ok, role.Name)
					assert.NotEmpty(t, set, role.Name)
					continue
				}
				s, ok := p.Swatches[role.Name]
				require.True(t, ok, role.Name)
				assert.Equal(t, role.Arity, s.Arity, role.Name)
				assert.Len(t, s.Values(), int(role.Arity), role.Name)
				for _, v := range s.Values() {
					assert.GreaterOrEqual(t, v, 0.0, role.Name)
					assert.LessOrEqual(t, v, 1.0, role.Name)
				}
			}
		})
	}
}

func TestLightModeBranch(t *testing.T) {
	p := newTestMapper().Map(lightSource())
	require.False(t, p.Dark)

	bg, _ := p.Color("ui_bg")
	panel, _ := p.Color("ui_panel")
	assert.Less(t, colorspace.ToOklch(panel).L, colorspace.ToOklch(bg).L, "raised surfaces darken on light themes")

	assert.GreaterOrEqual(t, ratio(t, p, "ui_text", "ui_bg"), 5.0)
	assert.GreaterOrEqual(t, ratio(t, p, "ui_accent_text", "ui_accent_functional"), 4.5)
	text, _ := p.Color("ui_accent_text")
	assert.Less(t, colorspace.Luminance(text), 0.2, "accent text should be dark on light themes")
}

func TestTextContrastFloors(t *testing.T) {
	for _, src := range []Source{darkSource(), lightSource()} {
		p := newTestMapper().Map(src)
		assert.GreaterOrEqual(t, ratio(t, p, "panel_text", "ui_panel"), 4.5)
		assert.GreaterOrEqual(t, ratio(t, p, "widget_text", "widget_bg"), 4.5)
		assert.GreaterOrEqual(t, ratio(t, p, "button_text", "button_bg"), 4.5)
		assert.GreaterOrEqual(t, ratio(t, p, "input_text", "input_bg"), 5.0)
		assert.GreaterOrEqual(t, ratio(t, p, "header_text", "header_bg"), 5.0)
		assert.GreaterOrEqual(t, ratio(t, p, "ui_text_muted", "ui_bg"), 3.0)
		assert.GreaterOrEqual(t, ratio(t, p, "ui_text_highlight", "ui_bg"), 10.0)
		assert.GreaterOrEqual(t, ratio(t, p, "tooltip_text", "tooltip_bg"), 4.5)
		assert.GreaterOrEqual(t, ratio(t, p, "error_text", "error_bg"), 4.5)
	}
}

func TestTextFloorsHoldForRandomSources(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	random := func() colorspace.Color {
		return colorspace.Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
	}
	mapper := newTestMapper()

	for i := 0; i < 300; i++ {
		var src Source
		for slot := range src.ANSI {
			src.ANSI[slot] = random()
		}
		src.Background = random()
		src.Foreground = random()

		p := mapper.Map(src)
		bg, _ := p.Color("ui_bg")
		reachable := math.Max(colorspace.ContrastRatio(colorspace.White, bg), colorspace.ContrastRatio(colorspace.Black, bg))
		for role, floor := range map[string]float64{"ui_text": minTextContrast, "ui_text_highlight": highlightContrast} {
			if reachable < floor {
				continue
			}
			assert.GreaterOrEqual(t, ratio(t, p, role, "ui_bg"), floor, "%s on bg %s", role, bg)
		}
	}
}

func TestSurfaceHierarchyIsDistinct(t *testing.T) {
	p := newTestMapper().Map(darkSource())
	names := []string{"ui_bg", "ui_panel_sub", "ui_panel", "ui_card", "ui_popup"}
	prev := -1.0
	for _, name := range names {
		c, _ := p.Color(name)
		l := colorspace.ToOklch(c).L
		assert.Greater(t, l, prev, "%s should sit above the previous surface", name)
		prev = l
	}
}

func TestWidgetStatesAreDistinct(t *testing.T) {
	p := newTestMapper().Map(darkSource())
	states := []string{"widget_bg", "widget_hover", "widget_active"}
	for i := range states {
		for j := i + 1; j < len(states); j++ {
			a, _ := p.Color(states[i])
			b, _ := p.Color(states[j])
			assert.Greater(t, colorspace.Distance(a, b), 0.01, "%s vs %s", states[i], states[j])
		}
	}
}

func TestThemeSurfaceDistanceCap(t *testing.T) {
	near := darkSource()
	near.ANSI[BrightBlack] = colorspace.Lighten(near.Background, 0.05)
	p := newTestMapper().Map(near)
	card, _ := p.Color("ui_card")
	assert.Equal(t, near.ANSI[BrightBlack], card, "close bright_black is used as the card surface")

	far := darkSource()
	far.ANSI[BrightBlack] = colorspace.Gray(0.6)
	p = newTestMapper().Map(far)
	card, _ = p.Color("ui_card")
	assert.NotEqual(t, far.ANSI[BrightBlack], card, "distant bright_black falls back to a synthetic surface")
	bg, _ := p.Color("ui_bg")
	assert.Less(t, colorspace.Distance(card, bg), maxElevatedDistance)
}

func TestFunctionalAccentHostsText(t *testing.T) {
	src := darkSource()
	src.ANSI[Blue] = colorspace.FromOklch(0.85, 0.1, 250)
	p := newTestMapper().Map(src)

	assert.GreaterOrEqual(t, ratio(t, p, "ui_accent_text", "ui_accent_functional"), 4.5)
	text, _ := p.Color("ui_accent_text")
	assert.Equal(t, colorspace.White, text)

	decorative, _ := p.Color("ui_accent")
	functional, _ := p.Color("ui_accent_functional")
	assert.Greater(t, colorspace.ToOklch(decorative).L, colorspace.ToOklch(functional).L)
}

func TestAccentDesaturationOnlyInDarkMode(t *testing.T) {
	dark := newTestMapper().Map(darkSource())
	accent, _ := dark.Color("accent_primary")
	assert.Less(t, colorspace.ToOklch(accent).C, colorspace.ToOklch(darkSource().ANSI[Blue]).C)

	light := newTestMapper().Map(lightSource())
	accent, _ = light.Color("accent_primary")
	assert.Equal(t, lightSource().ANSI[Blue], accent)
}

func TestSelectionTextPrefersThemeForeground(t *testing.T) {
	// Gray(0.5) misses 5:1 on the background but reaches 4.5:1 on black.
	src := hueSource(colorspace.Gray(0.1), colorspace.Gray(0.5))
	selection := colorspace.Black
	src.Selection = &selection

	p := newTestMapper().Map(src)
	text, _ := p.Color("ui_text")
	require.NotEqual(t, src.Foreground, text)

	selText, _ := p.Color("ui_selection_text")
	assert.Equal(t, src.Foreground, selText)
}

func TestSelectionAndCursorDefaults(t *testing.T) {
	src := darkSource()
	p := newTestMapper().Map(src)
	cursor, _ := p.Color("ui_cursor")
	assert.Equal(t, src.ANSI[BrightBlue], cursor)

	sel := colorspace.Color{R: 0.27, G: 0.28, B: 0.35}
	cur := colorspace.Color{R: 1, G: 0.5, B: 0}
	src.Selection = &sel
	src.Cursor = &cur
	p = newTestMapper().Map(src)
	got, _ := p.Color("ui_selection")
	assert.Equal(t, sel, got)
	got, _ = p.Color("ui_cursor")
	assert.Equal(t, cur, got)
	assert.GreaterOrEqual(t, ratio(t, p, "ui_selection_text", "ui_selection"), 4.5)
}

func TestSelectionTextFallsBackToPole(t *testing.T) {
	src := darkSource()
	// A mid-luminance selection the theme foreground cannot read on.
	sel := colorspace.Gray(0.62)
	src.Selection = &sel
	p := newTestMapper().Map(src)
	assert.GreaterOrEqual(t, ratio(t, p, "ui_selection_text", "ui_selection"), 4.5)
}

func TestOptionCheckVisibleOnBothStates(t *testing.T) {
	for _, src := range []Source{darkSource(), lightSource()} {
		p := newTestMapper().Map(src)
		assert.GreaterOrEqual(t, ratio(t, p, "option_check", "option_bg"), indicatorContrast)
		assert.GreaterOrEqual(t, ratio(t, p, "option_check", "option_bg_sel"), indicatorContrast)
	}
}

func TestIconsShareLightness(t *testing.T) {
	p := newTestMapper().Map(darkSource())
	for _, name := range []string{"icon_scene", "icon_object", "icon_modifier", "icon_shading", "icon_autokey"} {
		c, _ := p.Color(name)
		assert.InDelta(t, 0.78, colorspace.ToOklch(c).L, 0.01, name)
	}
}

func TestCategoricalSetsStartAtAccentHue(t *testing.T) {
	p := newTestMapper().Map(darkSource())
	accent, _ := p.Color("accent_primary")
	nodes, _ := p.Set("node_type_colors")
	require.Len(t, nodes, NodeTypeColorCount)
	assert.Less(t, colorspace.HueDistance(colorspace.ToOklch(nodes[0]).H, colorspace.ToOklch(accent).H), 1.0)

	for i, name := range nodeTypes {
		c, ok := p.Color(name)
		require.True(t, ok, name)
		assert.Equal(t, nodes[i], c)
	}

	normal, _ := p.Set("bone_color_normal")
	active, _ := p.Set("bone_color_active")
	require.Len(t, normal, BoneColorSetCount)
	for i := range normal {
		assert.Greater(t, colorspace.ToOklch(active[i]).L, colorspace.ToOklch(normal[i]).L)
	}
}

func TestGrayAccentUsesFallbackHue(t *testing.T) {
	src := darkSource()
	src.ANSI[Blue] = colorspace.Gray(0.5)
	p := newTestMapper().Map(src)
	set, _ := p.Set("collection_colors")
	assert.Less(t, colorspace.HueDistance(colorspace.ToOklch(set[0]).H, fallbackAccentHue), 1.0)
}

func TestMapIsDeterministic(t *testing.T) {
	src := darkSource()
	a := newTestMapper().Map(src)
	b := newTestMapper().Map(src)
	assert.Equal(t, a, b)
}

func TestMapIsSafeForConcurrentUse(t *testing.T) {
	mapper := newTestMapper()
	want := mapper.Map(darkSource())

	var wg sync.WaitGroup
	results := make([]*Palette, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = mapper.Map(darkSource())
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestUnmetContrastIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	// Foreground equal to a mid-gray background cannot reach 10:1.
	src := hueSource(colorspace.Gray(0.46), colorspace.Gray(0.46))
	NewMapper(WithLogger(logger)).Map(src)
	assert.Contains(t, buf.String(), "contrast target not reached")
	assert.Contains(t, buf.String(), "ui_text_highlight")
}

func TestFlat(t *testing.T) {
	p := newTestMapper().Map(darkSource())
	flat := p.Flat()

	assert.Equal(t, true, flat["dark"])
	text, ok := flat["ui_text"].([]float64)
	require.True(t, ok)
	assert.Len(t, text, 3)
	face, ok := flat["face_select"].([]float64)
	require.True(t, ok)
	require.Len(t, face, 4)
	assert.InDelta(t, 0.35, face[3], 1e-9)
	set, ok := flat["collection_colors"].([][]float64)
	require.True(t, ok)
	assert.Len(t, set, CollectionColorCount)
	assert.Len(t, flat, len(p.Swatches)+len(p.Sets)+1)
}

func TestSummary(t *testing.T) {
	p := newTestMapper().Map(darkSource())
	summary := p.Summary()
	assert.Contains(t, summary, "mode")
	assert.Contains(t, summary, "dark")
	c, _ := p.Color("ui_text")
	assert.Contains(t, summary, fmt.Sprintf("%-28s = %s", "ui_text", c.Hex()))
}
