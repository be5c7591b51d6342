// Package components provides reusable TUI components.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/ansitheme/internal/tui/styles"
)

// RenderModeBadge renders the palette mode with icon and color.
func RenderModeBadge(styleSet styles.Styles, dark bool) string {
	if dark {
		return styleSet.Info.Render("● Dark")
	}
	return styleSet.Warning.Render("○ Light")
}

// RenderContrastBadge renders a contrast ratio against its target.
func RenderContrastBadge(styleSet styles.Styles, ratio, target float64) string {
	icon, style := contrastDescriptor(styleSet, ratio, target)
	return style.Render(fmt.Sprintf("%s %.2f:1", icon, ratio))
}

func contrastDescriptor(styleSet styles.Styles, ratio, target float64) (string, lipgloss.Style) {
	switch {
	case ratio >= target:
		return "OK", styleSet.Success
	case ratio >= 3:
		return "LOW", styleSet.Warning
	default:
		return "ERR", styleSet.Error
	}
}
