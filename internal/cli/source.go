package cli

import (
	"fmt"
	"strings"
	"sync"

	"github.com/opencode-ai/ansitheme/internal/colorspace"
	"github.com/opencode-ai/ansitheme/internal/palette"
	"github.com/opencode-ai/ansitheme/internal/themes"
)

// sourceFlags are the flags shared by commands that take a palette source.
type sourceFlags struct {
	file      string
	ansi      string
	bg        string
	fg        string
	cursor    string
	selection string
}

var (
	cacheOnce    sync.Once
	paletteCache *palette.Cache
)

// sharedCache returns the process palette cache sized from config.
func sharedCache() *palette.Cache {
	cacheOnce.Do(func() {
		paletteCache = palette.NewCache(palette.NewMapper(), currentConfig().Cache.Size)
	})
	return paletteCache
}

// resolveTheme picks the theme named by args, --file or --ansi, falling back
// to the configured preview theme.
func resolveTheme(args []string, flags sourceFlags) (*themes.Theme, error) {
	var theme *themes.Theme
	var err error

	switch {
	case flags.ansi != "":
		theme, err = inlineTheme(flags)
	case flags.file != "":
		theme, err = themes.LoadTheme(flags.file)
	case len(args) > 0:
		theme, err = themes.FindTheme(themesDir, args[0])
	default:
		theme, err = themes.FindTheme(themesDir, currentConfig().Preview.Theme)
	}
	if err != nil {
		return nil, &PreflightError{
			Message:  "failed to resolve theme",
			Hint:     "Pass a built-in theme name, --file <theme.yaml> or --ansi with 16 colors",
			NextStep: "ansitheme themes",
			Err:      err,
		}
	}

	if flags.ansi == "" {
		if err := applyOverrides(theme, flags); err != nil {
			return nil, err
		}
	}
	return theme, nil
}

func inlineTheme(flags sourceFlags) (*themes.Theme, error) {
	colors := strings.FieldsFunc(flags.ansi, func(r rune) bool {
		return r == ',' || r == ' '
	})
	theme := &themes.Theme{
		Name:       "inline",
		ANSI:       colors,
		Background: flags.bg,
		Foreground: flags.fg,
		Cursor:     flags.cursor,
		Selection:  flags.selection,
		Source:     "flags",
	}
	if err := theme.Validate(); err != nil {
		return nil, err
	}
	return theme, nil
}

func applyOverrides(theme *themes.Theme, flags sourceFlags) error {
	overrides := []struct {
		value string
		field *string
	}{
		{flags.bg, &theme.Background},
		{flags.fg, &theme.Foreground},
		{flags.cursor, &theme.Cursor},
		{flags.selection, &theme.Selection},
	}
	changed := false
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		*o.field = o.value
		changed = true
	}
	if !changed {
		return nil
	}
	if err := theme.Validate(); err != nil {
		return fmt.Errorf("invalid color override: %w", err)
	}
	return nil
}

// contrastOf reports the ratio between two derived roles.
func contrastOf(p *palette.Palette, fg, bg string) float64 {
	a, okA := p.Color(fg)
	b, okB := p.Color(bg)
	if !okA || !okB {
		return 0
	}
	return colorspace.ContrastRatio(a, b)
}
