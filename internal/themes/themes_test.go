package themes

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencode-ai/ansitheme/internal/colorspace"
	"github.com/opencode-ai/ansitheme/internal/palette"
)

const sampleANSI = `ansi:
  - "#000000"
  - "#aa0000"
  - "#00aa00"
  - "#aa5500"
  - "#0000aa"
  - "#aa00aa"
  - "#00aaaa"
  - "#aaaaaa"
  - "#555555"
  - "#ff5555"
  - "#55ff55"
  - "#ffff55"
  - "#5555ff"
  - "#ff55ff"
  - "#55ffff"
  - "#ffffff"
`

func writeTheme(t *testing.T, dir, file, body string) string {
	t.Helper()
	path := filepath.Join(dir, file)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	return path
}

func TestLoadTheme(t *testing.T) {
	dir := t.TempDir()
	path := writeTheme(t, dir, "vga.yaml", "name: vga\n"+sampleANSI+"background: \"#101010\"\nselection: \"#333333\"\n")

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if theme.Name != "vga" {
		t.Fatalf("expected name vga, got %q", theme.Name)
	}
	if theme.Source != path {
		t.Fatalf("expected source %q, got %q", path, theme.Source)
	}

	src := theme.Palette()
	if got := src.Background.Hex(); got != "#101010" {
		t.Fatalf("expected background #101010, got %s", got)
	}
	if got := src.Foreground.Hex(); got != "#aaaaaa" {
		t.Fatalf("foreground should fall back to ansi[7], got %s", got)
	}
	if src.Cursor != nil {
		t.Fatalf("cursor should stay unset")
	}
	if src.Selection == nil || src.Selection.Hex() != "#333333" {
		t.Fatalf("unexpected selection %v", src.Selection)
	}
	if !theme.Dark() {
		t.Fatalf("expected dark theme")
	}
}

func TestBackgroundFallsBackToBlackSlot(t *testing.T) {
	theme, err := ParseTheme([]byte("name: bare\n" + sampleANSI))
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	src := theme.Palette()
	if src.Background != src.ANSI[palette.Black] {
		t.Fatalf("background should fall back to ansi[0]")
	}
}

func TestParseThemeValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		index int
	}{
		{name: "too few colors", body: "name: short\nansi:\n  - \"#000000\"\n", field: "ansi", index: -1},
		{name: "bad ansi hex", body: "name: bad\n" + strings.Replace(sampleANSI, "#aa0000", "#zz0000", 1), field: "ansi", index: 1},
		{name: "bad background", body: "name: bg\n" + sampleANSI + "background: nope\n", field: "background", index: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTheme([]byte(tt.body))
			var verr *ThemeValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ThemeValidationError, got %v", err)
			}
			if verr.Field != tt.field || verr.Index != tt.index {
				t.Fatalf("unexpected error location %s[%d]", verr.Field, verr.Index)
			}
		})
	}

	if _, err := ParseTheme([]byte(sampleANSI)); !errors.Is(err, ErrThemeNameRequired) {
		t.Fatalf("expected ErrThemeNameRequired, got %v", err)
	}
}

func TestLoadThemesFromDirSkipsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "b.yml", "name: beta\n"+sampleANSI)
	writeTheme(t, dir, "a.yaml", "name: alpha\n"+sampleANSI)
	writeTheme(t, dir, "notes.txt", "not a theme")

	themes, err := LoadThemesFromDir(dir)
	if err != nil {
		t.Fatalf("LoadThemesFromDir: %v", err)
	}
	if len(themes) != 2 || themes[0].Name != "alpha" || themes[1].Name != "beta" {
		t.Fatalf("unexpected themes: %+v", themes)
	}

	missing, err := LoadThemesFromDir(filepath.Join(dir, "missing"))
	if err != nil || len(missing) != 0 {
		t.Fatalf("missing dir should yield nothing, got %v %v", missing, err)
	}
}

func TestBuiltinThemes(t *testing.T) {
	themes, err := LoadBuiltinThemes()
	if err != nil {
		t.Fatalf("LoadBuiltinThemes: %v", err)
	}
	if len(themes) < 6 {
		t.Fatalf("expected bundled themes, got %d", len(themes))
	}

	var dark, light int
	for _, theme := range themes {
		if theme.Source != "builtin" {
			t.Fatalf("theme %s has source %q", theme.Name, theme.Source)
		}
		if theme.Dark() {
			dark++
		} else {
			light++
		}
	}
	if dark == 0 || light == 0 {
		t.Fatalf("expected both modes, got %d dark and %d light", dark, light)
	}
}

func TestBuiltinThemesMapCompletely(t *testing.T) {
	themes, err := LoadBuiltinThemes()
	if err != nil {
		t.Fatalf("LoadBuiltinThemes: %v", err)
	}
	roles := palette.DefaultTable().Roles()

	for _, theme := range themes {
		p := palette.Map(theme.Palette())
		if p.Dark != theme.Dark() {
			t.Fatalf("%s: mode mismatch", theme.Name)
		}
		for _, role := range roles {
			if role.Set {
				if set, ok := p.Set(role.Name); !ok || len(set) == 0 {
					t.Fatalf("%s: set %s is empty", theme.Name, role.Name)
				}
				continue
			}
			if _, ok := p.Swatches[role.Name]; !ok {
				t.Fatalf("%s: role %s unset", theme.Name, role.Name)
			}
		}
		text, _ := p.Color("ui_text")
		bg, _ := p.Color("ui_bg")
		if ratio := colorspace.ContrastRatio(text, bg); ratio < 5.0-1e-9 {
			t.Fatalf("%s: ui_text contrast %.2f", theme.Name, ratio)
		}
	}
}

func TestFindTheme(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	writeTheme(t, dir, "nord.yaml", "name: nord\n"+sampleANSI)

	theme, err := FindTheme(dir, "nord")
	if err != nil {
		t.Fatalf("FindTheme: %v", err)
	}
	if theme.Source == "builtin" {
		t.Fatalf("user theme should shadow the builtin one")
	}

	theme, err = FindTheme(dir, "Dracula")
	if err != nil || theme.Name != "dracula" {
		t.Fatalf("expected builtin dracula, got %v %v", theme, err)
	}

	if _, err := FindTheme(dir, "does-not-exist"); !errors.Is(err, ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}

	byPath, err := FindTheme("", filepath.Join(dir, "nord.yaml"))
	if err != nil || byPath.Name != "nord" {
		t.Fatalf("expected file load, got %v %v", byPath, err)
	}
}
