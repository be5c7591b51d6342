package palette

import "github.com/opencode-ai/ansitheme/internal/colorspace"

// accentRules split the accent into a decorative color (indicators, badges)
// and a functional color that hosts text (selection and highlight fills).
func accentRules() []rule {
	return []rule{
		same("ui_accent", "accent_primary"),
		color("ui_accent_hover", func(e *env) colorspace.Color {
			return e.raise(e.c("ui_accent"), e.mode(0.06, 0.04))
		}, "ui_accent"),
		color("ui_accent_active", func(e *env) colorspace.Color {
			return e.raise(e.c("ui_accent"), e.mode(0.1, 0.08))
		}, "ui_accent"),

		color("ui_accent_functional", func(e *env) colorspace.Color {
			return e.functional(e.c("accent_primary"))
		}, "accent_primary"),
		color("ui_accent_functional_hover", func(e *env) colorspace.Color {
			return e.functional(e.raise(e.c("ui_accent_functional"), 0.03))
		}, "ui_accent_functional"),
		color("ui_accent_functional_active", func(e *env) colorspace.Color {
			return e.functional(e.raise(e.c("ui_accent_functional"), 0.06))
		}, "ui_accent_functional"),
		color("ui_accent_text", func(e *env) colorspace.Color {
			return e.readable(e.c("ui_accent_functional"), e.pole(), accentTextContrast)
		}, "ui_accent_functional"),

		color("ui_selection", func(e *env) colorspace.Color {
			if e.src.Selection != nil {
				return *e.src.Selection
			}
			return colorspace.Mix(e.c("ui_accent_functional"), e.c("ui_bg"), 0.5)
		}, "ui_accent_functional", "ui_bg"),
		color("ui_selection_text", func(e *env) colorspace.Color {
			return e.readable(e.c("ui_selection"), e.src.Foreground, accentTextContrast)
		}, "ui_selection"),
		color("ui_selection_inactive", func(e *env) colorspace.Color {
			return colorspace.Mix(e.c("ui_selection"), e.c("ui_bg"), 0.5)
		}, "ui_selection", "ui_bg"),

		color("ui_cursor", func(e *env) colorspace.Color {
			if e.src.Cursor != nil {
				return *e.src.Cursor
			}
			return e.c("accent_bright")
		}, "accent_bright"),
		color("focus_ring", func(e *env) colorspace.Color {
			return e.contrast(e.c("accent_bright"), e.c("ui_bg"), indicatorContrast)
		}, "accent_bright", "ui_bg"),

		same("menu_item_hover", "ui_accent_functional"),
		color("menu_text_sel", func(e *env) colorspace.Color {
			return e.readable(e.c("menu_item_hover"), e.c("ui_accent_text"), accentTextContrast)
		}, "menu_item_hover", "ui_accent_text"),
	}
}
