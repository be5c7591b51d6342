package palette

import "github.com/opencode-ai/ansitheme/internal/colorspace"

func textRules() []rule {
	return []rule{
		color("ui_text", func(e *env) colorspace.Color {
			return e.contrast(e.src.Foreground, e.c("ui_bg"), minTextContrast)
		}, "ui_bg"),
		color("ui_text_muted", func(e *env) colorspace.Color {
			return e.contrast(colorspace.Mix(e.c("ui_text"), e.c("ui_bg"), 0.35), e.c("ui_bg"), mutedTextContrast)
		}, "ui_text", "ui_bg"),
		color("ui_text_disabled", func(e *env) colorspace.Color {
			return colorspace.Mix(e.c("ui_text"), e.c("ui_bg"), 0.6)
		}, "ui_text", "ui_bg"),
		color("ui_text_highlight", func(e *env) colorspace.Color {
			return e.contrast(e.raise(e.src.Foreground, 0.15), e.c("ui_bg"), highlightContrast)
		}, "ui_bg"),

		color("panel_text", func(e *env) colorspace.Color {
			return e.contrast(e.src.Foreground, e.c("ui_panel"), panelTextContrast)
		}, "ui_panel"),
		color("panel_title", func(e *env) colorspace.Color {
			return e.contrast(e.raise(e.src.Foreground, 0.1), e.c("ui_panel_header"), minTextContrast)
		}, "ui_panel_header"),
		color("header_text", func(e *env) colorspace.Color {
			return e.contrast(e.c("ui_text"), e.c("header_bg"), minTextContrast)
		}, "ui_text", "header_bg"),
		color("header_text_hi", func(e *env) colorspace.Color {
			return e.contrast(e.c("ui_text_highlight"), e.c("header_bg"), 7)
		}, "ui_text_highlight", "header_bg"),
		color("card_text", func(e *env) colorspace.Color {
			return e.contrast(e.c("ui_text"), e.c("ui_card"), panelTextContrast)
		}, "ui_text", "ui_card"),
		color("popup_text", func(e *env) colorspace.Color {
			return e.contrast(e.c("ui_text"), e.c("ui_popup"), panelTextContrast)
		}, "ui_text", "ui_popup"),
		color("menu_text", func(e *env) colorspace.Color {
			return e.contrast(e.c("ui_text"), e.c("menu_bg"), panelTextContrast)
		}, "ui_text", "menu_bg"),
		color("tooltip_text", func(e *env) colorspace.Color {
			return e.readable(e.c("tooltip_bg"), e.c("ui_text"), panelTextContrast)
		}, "ui_text", "tooltip_bg"),
		color("link_text", func(e *env) colorspace.Color {
			return e.contrast(e.c("accent_secondary"), e.c("ui_bg"), panelTextContrast)
		}, "accent_secondary", "ui_bg"),
	}
}
