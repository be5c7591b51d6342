package styles

import "github.com/opencode-ai/ansitheme/internal/palette"

// ThemeTokens defines the semantic color roles for the TUI.
type ThemeTokens struct {
	Background    string
	Panel         string
	Header        string
	Text          string
	TextMuted     string
	TextHighlight string
	Border        string
	Accent        string
	AccentText    string
	Focus         string
	Selection     string
	SelectionText string
	Success       string
	Warning       string
	Error         string
	Info          string
}

// Theme bundles a palette with a name.
type Theme struct {
	Name   string
	Dark   bool
	Tokens ThemeTokens
}

// tokenRoles maps each token to the derived role it reads.
var tokenRoles = []struct {
	role string
	set  func(*ThemeTokens, string)
}{
	{"ui_bg", func(t *ThemeTokens, v string) { t.Background = v }},
	{"ui_panel", func(t *ThemeTokens, v string) { t.Panel = v }},
	{"header_bg", func(t *ThemeTokens, v string) { t.Header = v }},
	{"ui_text", func(t *ThemeTokens, v string) { t.Text = v }},
	{"ui_text_muted", func(t *ThemeTokens, v string) { t.TextMuted = v }},
	{"ui_text_highlight", func(t *ThemeTokens, v string) { t.TextHighlight = v }},
	{"ui_border", func(t *ThemeTokens, v string) { t.Border = v }},
	{"ui_accent", func(t *ThemeTokens, v string) { t.Accent = v }},
	{"ui_accent_text", func(t *ThemeTokens, v string) { t.AccentText = v }},
	{"focus_ring", func(t *ThemeTokens, v string) { t.Focus = v }},
	{"ui_selection", func(t *ThemeTokens, v string) { t.Selection = v }},
	{"ui_selection_text", func(t *ThemeTokens, v string) { t.SelectionText = v }},
	{"success_color", func(t *ThemeTokens, v string) { t.Success = v }},
	{"warning_color", func(t *ThemeTokens, v string) { t.Warning = v }},
	{"error_color", func(t *ThemeTokens, v string) { t.Error = v }},
	{"info_color", func(t *ThemeTokens, v string) { t.Info = v }},
}

// FromPalette builds a theme from a derived palette. Roles missing from p
// keep the default token.
func FromPalette(name string, p *palette.Palette) Theme {
	theme := Theme{Name: name, Dark: p.Dark, Tokens: DefaultTheme.Tokens}
	for _, tr := range tokenRoles {
		if c, ok := p.Color(tr.role); ok {
			tr.set(&theme.Tokens, c.Hex())
		}
	}
	return theme
}
