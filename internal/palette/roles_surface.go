package palette

import "github.com/opencode-ai/ansitheme/internal/colorspace"

// surfaceRules derive background-adjacent surfaces. Steps are in OKLCH
// lightness and follow the mode: raised surfaces are lighter on dark themes
// and darker on light ones.
func surfaceRules() []rule {
	return []rule{
		color("ui_bg", func(e *env) colorspace.Color {
			return e.src.Background
		}),
		color("ui_tint", func(e *env) colorspace.Color {
			accent := colorspace.ToOklch(e.c("accent_primary"))
			if accent.IsAchromatic() {
				return e.c("ui_bg")
			}
			accent.C = colorspace.Clamp(accent.C, 0, 0.04)
			return accent.RGB()
		}, "accent_primary", "ui_bg"),

		color("ui_panel", func(e *env) colorspace.Color {
			return tint(e.raise(e.c("ui_bg"), 0.03), e.c("ui_tint"), 0.25)
		}, "ui_bg", "ui_tint"),
		color("ui_panel_header", func(e *env) colorspace.Color {
			return tint(e.raise(e.c("ui_bg"), 0.045), e.c("ui_tint"), 0.35)
		}, "ui_bg", "ui_tint"),
		color("ui_panel_sub", func(e *env) colorspace.Color {
			return tint(e.raise(e.c("ui_bg"), 0.015), e.c("ui_tint"), 0.2)
		}, "ui_bg", "ui_tint"),
		color("ui_card", func(e *env) colorspace.Color {
			synthetic := tint(e.raise(e.c("ui_bg"), 0.06), e.c("ui_tint"), 0.25)
			return e.themeSurface(e.c("bright_black"), e.c("ui_bg"), synthetic, true, maxElevatedDistance)
		}, "ui_bg", "ui_tint", "bright_black"),
		color("ui_popup", func(e *env) colorspace.Color {
			return tint(e.raise(e.c("ui_bg"), 0.08), e.c("ui_tint"), 0.2)
		}, "ui_bg", "ui_tint"),
		color("ui_recessed", func(e *env) colorspace.Color {
			synthetic := e.sink(e.c("ui_bg"), 0.03)
			return e.themeSurface(e.c("black"), e.c("ui_bg"), synthetic, false, maxRecessedDistance)
		}, "ui_bg", "black"),

		color("ui_border", func(e *env) colorspace.Color {
			return colorspace.Desaturate(colorspace.Mix(e.src.Foreground, e.c("ui_bg"), 0.65), 0.02)
		}, "ui_bg"),
		color("ui_separator", func(e *env) colorspace.Color {
			return colorspace.Mix(e.src.Foreground, e.c("ui_bg"), 0.8)
		}, "ui_bg"),
		color("ui_panel_outline", func(e *env) colorspace.Color {
			return colorspace.Mix(e.c("ui_border"), e.c("ui_bg"), 0.3)
		}, "ui_border", "ui_bg"),

		color("viewport_gradient_low", func(e *env) colorspace.Color {
			if e.dark {
				return tint(e.c("ui_bg"), e.c("ui_tint"), 0.2)
			}
			return tint(colorspace.Darken(e.c("ui_bg"), 0.04), e.c("ui_tint"), 0.2)
		}, "ui_bg", "ui_tint"),
		color("viewport_gradient_high", func(e *env) colorspace.Color {
			if e.dark {
				return tint(colorspace.Lighten(e.c("ui_bg"), 0.05), e.c("ui_tint"), 0.2)
			}
			return tint(e.c("ui_bg"), e.c("ui_tint"), 0.2)
		}, "ui_bg", "ui_tint"),

		color("header_bg", func(e *env) colorspace.Color {
			return tint(colorspace.Darken(e.c("ui_bg"), e.mode(0.03, 0.05)), e.c("ui_tint"), 0.25)
		}, "ui_bg", "ui_tint"),

		same("tab_active_bg", "ui_bg"),
		color("tab_inactive_bg", func(e *env) colorspace.Color {
			return colorspace.Mix(e.c("ui_panel"), e.c("ui_card"), 0.5)
		}, "ui_panel", "ui_card"),
		same("tab_outline", "ui_border"),

		same("scroll_bg", "ui_panel"),
		color("scroll_handle", func(e *env) colorspace.Color {
			return colorspace.Desaturate(colorspace.Mix(e.src.Foreground, e.c("ui_bg"), 0.6), 0.03)
		}, "ui_bg"),
		color("scroll_handle_hover", func(e *env) colorspace.Color {
			return colorspace.Mix(colorspace.Mix(e.src.Foreground, e.c("ui_bg"), 0.45), e.c("accent_primary"), 0.15)
		}, "ui_bg", "accent_primary"),

		colorAlpha("region_overlap", 0.85, func(e *env) colorspace.Color {
			return e.c("ui_panel")
		}, "ui_panel"),
		colorAlpha("shadow", 0.35, func(e *env) colorspace.Color {
			return colorspace.Darken(e.c("ui_bg"), 0.2)
		}, "ui_bg"),
		colorAlpha("tooltip_bg", 0.96, func(e *env) colorspace.Color {
			return e.c("ui_popup")
		}, "ui_popup"),
		colorAlpha("menu_bg", 1, func(e *env) colorspace.Color {
			return e.c("ui_popup")
		}, "ui_popup"),
		colorAlpha("backdrop", 0.5, func(e *env) colorspace.Color {
			return colorspace.Darken(e.c("ui_bg"), 0.1)
		}, "ui_bg"),
	}
}
