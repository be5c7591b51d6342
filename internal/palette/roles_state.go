package palette

import "github.com/opencode-ai/ansitheme/internal/colorspace"

func stateRules() []rule {
	status := func(name, source string) []rule {
		bg := name + "_bg"
		return []rule{
			same(name+"_color", source),
			color(bg, func(e *env) colorspace.Color {
				return colorspace.Mix(e.c(source), e.c("ui_bg"), 0.75)
			}, source, "ui_bg"),
			color(name+"_text", func(e *env) colorspace.Color {
				return e.readable(e.c(bg), e.c("ui_text"), panelTextContrast)
			}, bg, "ui_text"),
		}
	}

	var rules []rule
	rules = append(rules, status("info", "accent_secondary")...)
	rules = append(rules, status("warning", "warning")...)
	rules = append(rules, status("error", "danger")...)
	rules = append(rules, status("success", "success")...)
	return rules
}
