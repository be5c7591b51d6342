package palette

import "github.com/opencode-ai/ansitheme/internal/colorspace"

// semanticRules assigns fixed ANSI slots to named roles. Primary accent and
// semantic hues are toned down slightly on dark backgrounds.
func semanticRules() []rule {
	toned := func(slot int) deriveFunc {
		return func(e *env) colorspace.Color {
			c := e.ansi(slot)
			if e.dark {
				return colorspace.Desaturate(c, accentDesaturation)
			}
			return c
		}
	}
	raw := func(slot int) deriveFunc {
		return func(e *env) colorspace.Color { return e.ansi(slot) }
	}

	return []rule{
		color("accent_primary", toned(Blue)),
		color("accent_secondary", toned(Cyan)),
		color("warning", toned(Yellow)),
		color("danger", toned(Red)),
		color("success", toned(Green)),
		color("magenta", toned(Magenta)),

		color("accent_bright", raw(BrightBlue)),
		color("danger_bright", raw(BrightRed)),
		color("success_bright", raw(BrightGreen)),
		color("bright_yellow", raw(BrightYellow)),
		color("bright_magenta", raw(BrightMagenta)),
		color("bright_cyan", raw(BrightCyan)),
		color("black", raw(Black)),
		color("bright_black", raw(BrightBlack)),
		color("white", raw(BrightWhite)),

		colorSet("ansi", func(e *env) []colorspace.Color {
			return append([]colorspace.Color(nil), e.src.ANSI[:]...)
		}),
	}
}
