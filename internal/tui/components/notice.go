package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/ansitheme/internal/tui/styles"
)

// Notice stands in for a theme list or palette listing that has nothing to
// show.
type Notice struct {
	Title    string
	Detail   string
	Commands []Command
}

// Command is a shell line the user can run to fill the view.
type Command struct {
	Line    string
	Purpose string
}

// blankStrip is an unfilled 16-slot ANSI row drawn in the border color.
func blankStrip(styleSet styles.Styles) string {
	cells := make([]string, 16)
	for i := range cells {
		cells[i] = "··"
	}
	return styleSet.Border.Render(strings.Join(cells, ""))
}

// Render draws the notice as a block: a blank palette strip, the title, the
// detail and the commands aligned on their purpose column.
func (n Notice) Render(styleSet styles.Styles) string {
	lines := []string{
		blankStrip(styleSet),
		styleSet.Highlight.Render(n.Title),
	}
	if n.Detail != "" {
		lines = append(lines, styleSet.Muted.Render(n.Detail))
	}

	width := 0
	for _, c := range n.Commands {
		width = max(width, lipgloss.Width(c.Line))
	}
	if len(n.Commands) > 0 {
		lines = append(lines, "")
	}
	for _, c := range n.Commands {
		line := "$ " + styleSet.Accent.Render(c.Line)
		if c.Purpose != "" {
			pad := strings.Repeat(" ", width-lipgloss.Width(c.Line)+2)
			line += pad + styleSet.Muted.Render(c.Purpose)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Inline draws the notice on one line for narrow panes.
func (n Notice) Inline(styleSet styles.Styles) string {
	line := styleSet.Warning.Render("∅ ") + styleSet.Muted.Render(n.Title)
	if len(n.Commands) > 0 {
		line += styleSet.Muted.Render(" · ") + styleSet.Accent.Render(n.Commands[0].Line)
	}
	return line
}

// NoThemes is shown when no theme file or builtin could be loaded.
func NoThemes() Notice {
	return Notice{
		Title:  "No themes found",
		Detail: "A theme is a YAML file with 16 ANSI colors plus optional background and foreground.",
		Commands: []Command{
			{Line: "ansitheme themes --themes-dir <dir>", Purpose: "search another directory"},
			{Line: "ansitheme derive --file <theme.yaml>", Purpose: "derive from a single file"},
		},
	}
}

// NoThemeMatches is shown when the browser filter hides every theme.
func NoThemeMatches(filter string) Notice {
	return Notice{
		Title:  fmt.Sprintf("No themes match %q", filter),
		Detail: "Press / to edit the filter or esc to clear it.",
	}
}

// NoStoredPalettes is shown by an empty palette store listing.
func NoStoredPalettes() Notice {
	return Notice{
		Title:  "No saved palettes",
		Detail: "Palettes are saved by derive --save or when store.enabled is set.",
		Commands: []Command{
			{Line: "ansitheme derive <theme> --save", Purpose: "derive and store a palette"},
		},
	}
}
