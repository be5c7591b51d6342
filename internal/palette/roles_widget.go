package palette

import "github.com/opencode-ai/ansitheme/internal/colorspace"

// widgetRules derive interactive widget states. Each state steps further from
// the background and picks up a different palette hue so normal, hover and
// active stay distinguishable.
func widgetRules() []rule {
	return []rule{
		color("widget_bg", func(e *env) colorspace.Color {
			return tint(e.raise(e.c("ui_bg"), 0.06), e.c("bright_black"), 0.15)
		}, "ui_bg", "bright_black"),
		color("widget_hover", func(e *env) colorspace.Color {
			return tint(e.raise(e.c("ui_bg"), 0.09), e.c("accent_secondary"), 0.12)
		}, "ui_bg", "accent_secondary"),
		color("widget_active", func(e *env) colorspace.Color {
			return tint(e.raise(e.c("ui_bg"), 0.13), e.c("accent_primary"), 0.15)
		}, "ui_bg", "accent_primary"),
		color("widget_outline", func(e *env) colorspace.Color {
			return e.raise(e.c("ui_bg"), 0.12)
		}, "ui_bg"),
		color("widget_text", func(e *env) colorspace.Color {
			return e.contrast(e.c("ui_text"), e.c("widget_bg"), panelTextContrast)
		}, "ui_text", "widget_bg"),
		color("widget_text_sel", func(e *env) colorspace.Color {
			return e.readable(e.c("widget_active"), e.c("ui_text_highlight"), panelTextContrast)
		}, "widget_active", "ui_text_highlight"),

		color("button_bg", func(e *env) colorspace.Color {
			return tint(e.raise(e.c("ui_bg"), 0.07), e.c("accent_primary"), 0.18)
		}, "ui_bg", "accent_primary"),
		color("button_hover", func(e *env) colorspace.Color {
			return tint(e.raise(e.c("ui_bg"), 0.105), e.c("accent_primary"), 0.25)
		}, "ui_bg", "accent_primary"),
		same("button_active", "ui_accent_functional"),
		color("button_outline", func(e *env) colorspace.Color {
			return colorspace.Mix(e.c("widget_outline"), e.c("accent_primary"), 0.15)
		}, "widget_outline", "accent_primary"),
		color("button_text", func(e *env) colorspace.Color {
			return e.contrast(e.c("ui_text"), e.c("button_bg"), panelTextContrast)
		}, "ui_text", "button_bg"),
		color("button_text_hi", func(e *env) colorspace.Color {
			return e.contrast(e.c("ui_text_highlight"), e.c("button_hover"), minTextContrast)
		}, "ui_text_highlight", "button_hover"),
		same("button_text_sel", "ui_accent_text"),

		color("toolbar_bg", func(e *env) colorspace.Color {
			return tint(e.raise(e.c("ui_bg"), 0.05), e.c("accent_secondary"), 0.14)
		}, "ui_bg", "accent_secondary"),
		color("toolbar_sel", func(e *env) colorspace.Color {
			return tint(e.raise(e.c("ui_bg"), 0.09), e.c("accent_primary"), 0.3)
		}, "ui_bg", "accent_primary"),
		color("toolbar_text", func(e *env) colorspace.Color {
			return e.contrast(e.c("ui_text"), e.c("toolbar_bg"), panelTextContrast)
		}, "ui_text", "toolbar_bg"),
		color("toolbar_text_sel", func(e *env) colorspace.Color {
			return e.readable(e.c("toolbar_sel"), e.c("ui_text_highlight"), panelTextContrast)
		}, "toolbar_sel", "ui_text_highlight"),

		same("input_bg", "ui_recessed"),
		color("input_border", func(e *env) colorspace.Color {
			return e.raise(e.c("ui_bg"), 0.1)
		}, "ui_bg"),
		color("input_text", func(e *env) colorspace.Color {
			return e.contrast(e.c("ui_text"), e.c("input_bg"), minTextContrast)
		}, "ui_text", "input_bg"),
		same("input_text_sel", "ui_selection_text"),

		same("option_bg", "widget_bg"),
		same("option_bg_sel", "ui_accent_functional"),
		color("option_check", func(e *env) colorspace.Color {
			return e.indicator(e.c("accent_bright"), e.c("option_bg"), e.c("option_bg_sel"), indicatorContrast)
		}, "accent_bright", "option_bg", "option_bg_sel"),
		same("radio_bg", "button_bg"),
		color("radio_dot", func(e *env) colorspace.Color {
			return e.indicator(e.c("white"), e.c("radio_bg"), e.c("ui_accent_functional"), indicatorContrast)
		}, "white", "radio_bg", "ui_accent_functional"),

		same("slider_bg", "input_bg"),
		same("slider_fill", "ui_accent"),
		color("progress_bar", func(e *env) colorspace.Color {
			return e.contrast(e.c("ui_accent"), e.c("input_bg"), indicatorContrast)
		}, "ui_accent", "input_bg"),

		same("list_item_bg", "ui_panel"),
		same("list_item_sel", "ui_selection"),
		same("list_item_text", "panel_text"),
		same("list_item_text_sel", "ui_selection_text"),

		colorAlpha("pie_bg", 0.9, func(e *env) colorspace.Color {
			return e.c("ui_popup")
		}, "ui_popup"),
	}
}
