package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/ansitheme/internal/colorspace"
)

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme     Theme
	Title     lipgloss.Style
	Header    lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Highlight lipgloss.Style
	Accent    lipgloss.Style
	Button    lipgloss.Style
	Panel     lipgloss.Style
	Border    lipgloss.Style
	Focus     lipgloss.Style
	Selected  lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
}

// DefaultStyles builds styles from the default theme.
func DefaultStyles() Styles {
	return BuildStyles(DefaultTheme)
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(theme Theme) Styles {
	tokens := theme.Tokens

	return Styles{
		Theme:     theme,
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextHighlight)).Background(lipgloss.Color(tokens.Header)).Bold(true).Padding(0, 1),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextHighlight)).Bold(true),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		Button:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.AccentText)).Background(lipgloss.Color(tokens.Accent)).Padding(0, 1),
		Panel:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Panel)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tokens.Border)),
		Border:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Border)),
		Focus:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).Bold(true),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.SelectionText)).Background(lipgloss.Color(tokens.Selection)),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Success)),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Warning)),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Info)),
	}
}

// Swatch renders a block of width cells filled with c.
func Swatch(c colorspace.Color, width int) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(strings.Repeat(" ", width))
}

// Sample renders text in fg on bg.
func Sample(text string, fg, bg colorspace.Color) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex())).
		Render(text)
}
