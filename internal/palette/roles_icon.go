package palette

import "github.com/opencode-ai/ansitheme/internal/colorspace"

func iconRules() []rule {
	icon := func(name, source string) rule {
		return color(name, func(e *env) colorspace.Color {
			return e.icon(e.c(source))
		}, source)
	}

	return []rule{
		icon("icon_scene", "warning"),
		icon("icon_collection", "bright_yellow"),
		icon("icon_object", "accent_secondary"),
		icon("icon_object_data", "success"),
		icon("icon_modifier", "accent_primary"),
		icon("icon_shading", "magenta"),
		icon("icon_constraint", "accent_bright"),
		icon("icon_autokey", "danger"),
		color("icon_folder", func(e *env) colorspace.Color {
			return e.icon(colorspace.Mix(e.c("warning"), e.c("bright_yellow"), 0.5))
		}, "warning", "bright_yellow"),
		colorAlpha("icon_border", 0.2, func(e *env) colorspace.Color {
			if e.dark {
				return colorspace.Black
			}
			return colorspace.White
		}),
	}
}
