package palette

import "github.com/opencode-ai/ansitheme/internal/colorspace"

func editorRules() []rule {
	syntax := func(name, source string) rule {
		return color(name, func(e *env) colorspace.Color {
			return e.contrast(e.c(source), e.c("text_bg"), panelTextContrast)
		}, source, "text_bg")
	}

	return []rule{
		same("text_bg", "ui_bg"),
		same("text_fg", "ui_text"),
		same("text_cursor", "ui_cursor"),
		same("text_selection", "ui_selection"),
		color("text_line_highlight", func(e *env) colorspace.Color {
			return e.raise(e.c("text_bg"), e.mode(0.035, 0.03))
		}, "text_bg"),
		same("text_line_numbers", "ui_text_muted"),
		syntax("syntax_keyword", "accent_primary"),
		syntax("syntax_builtin", "magenta"),
		syntax("syntax_string", "success"),
		syntax("syntax_number", "warning"),
		syntax("syntax_special", "accent_secondary"),
		syntax("syntax_reserved", "danger"),
		syntax("syntax_symbols", "bright_magenta"),
		color("syntax_comment", func(e *env) colorspace.Color {
			return e.contrast(colorspace.Mix(e.c("text_fg"), e.c("bright_black"), 0.6), e.c("text_bg"), mutedTextContrast)
		}, "text_fg", "bright_black", "text_bg"),

		color("console_bg", func(e *env) colorspace.Color {
			return e.sink(e.c("ui_bg"), 0.015)
		}, "ui_bg"),
		color("console_output", func(e *env) colorspace.Color {
			return e.contrast(e.c("ui_text"), e.c("console_bg"), minTextContrast)
		}, "ui_text", "console_bg"),
		color("console_input", func(e *env) colorspace.Color {
			return e.contrast(e.c("accent_secondary"), e.c("console_bg"), panelTextContrast)
		}, "accent_secondary", "console_bg"),
		color("console_info", func(e *env) colorspace.Color {
			return e.contrast(e.c("success"), e.c("console_bg"), panelTextContrast)
		}, "success", "console_bg"),
		color("console_error", func(e *env) colorspace.Color {
			return e.contrast(e.c("danger"), e.c("console_bg"), panelTextContrast)
		}, "danger", "console_bg"),
		same("console_cursor", "ui_cursor"),

		same("node_bg", "ui_card"),
		color("node_selected", func(e *env) colorspace.Color {
			return colorspace.Mix(e.c("ui_accent"), e.c("ui_bg"), 0.4)
		}, "ui_accent", "ui_bg"),
		color("node_active", func(e *env) colorspace.Color {
			return e.contrast(e.c("ui_text_highlight"), e.c("ui_card"), minTextContrast)
		}, "ui_text_highlight", "ui_card"),
		colorAlpha("node_frame", 0.5, func(e *env) colorspace.Color {
			return colorspace.Mix(e.c("ui_card"), e.c("ui_bg"), 0.3)
		}, "ui_card", "ui_bg"),
		color("node_wire", func(e *env) colorspace.Color {
			return e.contrast(colorspace.Mix(e.src.Foreground, e.c("ui_bg"), 0.4), e.c("ui_bg"), mutedTextContrast)
		}, "ui_bg"),
		same("node_wire_select", "accent_bright"),

		same("outliner_active", "ui_accent_functional"),
		same("outliner_selected", "ui_selection_inactive"),
		color("outliner_highlight", func(e *env) colorspace.Color {
			return e.raise(e.c("ui_bg"), 0.04)
		}, "ui_bg"),
		colorAlpha("row_alternate", 0.05, func(e *env) colorspace.Color {
			return e.pole()
		}),
	}
}
