package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/ansitheme/internal/colorspace"
	"github.com/opencode-ai/ansitheme/internal/palette"
	"github.com/opencode-ai/ansitheme/internal/tui/styles"
)

// RoleGroup is a titled set of roles shown together.
type RoleGroup struct {
	Title string
	Roles []string
	// Pairs renders text roles on top of their background role.
	Pairs map[string]string
}

// DefaultGroups are the role groups shown by the preview.
func DefaultGroups() []RoleGroup {
	return []RoleGroup{
		{
			Title: "Surfaces",
			Roles: []string{"ui_bg", "ui_tint", "ui_panel", "ui_panel_header", "ui_card", "ui_popup", "ui_recessed", "ui_border", "header_bg"},
		},
		{
			Title: "Text",
			Roles: []string{"ui_text", "ui_text_muted", "ui_text_disabled", "ui_text_highlight", "panel_text", "header_text", "link_text"},
			Pairs: map[string]string{
				"ui_text":           "ui_bg",
				"ui_text_muted":     "ui_bg",
				"ui_text_disabled":  "ui_bg",
				"ui_text_highlight": "ui_bg",
				"panel_text":        "ui_panel",
				"header_text":       "header_bg",
				"link_text":         "ui_bg",
			},
		},
		{
			Title: "Accents",
			Roles: []string{"ui_accent", "ui_accent_functional", "ui_accent_text", "ui_selection", "ui_selection_text", "ui_cursor", "focus_ring"},
			Pairs: map[string]string{
				"ui_accent_text":    "ui_accent_functional",
				"ui_selection_text": "ui_selection",
			},
		},
		{
			Title: "Widgets",
			Roles: []string{"button_bg", "button_hover", "button_active", "button_text", "input_bg", "input_text", "option_check", "progress_bar"},
			Pairs: map[string]string{
				"button_text": "button_bg",
				"input_text":  "input_bg",
			},
		},
		{
			Title: "States",
			Roles: []string{"info_color", "warning_color", "error_color", "success_color", "info_text", "warning_text", "error_text", "success_text"},
			Pairs: map[string]string{
				"info_text":    "info_bg",
				"warning_text": "warning_bg",
				"error_text":   "error_bg",
				"success_text": "success_bg",
			},
		},
		{
			Title: "Syntax",
			Roles: []string{"syntax_keyword", "syntax_builtin", "syntax_string", "syntax_number", "syntax_special", "syntax_comment"},
		},
	}
}

// RenderRoleGroup renders one line per role: a swatch, the name and hex, and
// for paired roles a text sample with its contrast badge.
func RenderRoleGroup(styleSet styles.Styles, p *palette.Palette, group RoleGroup) string {
	lines := []string{styleSet.Header.Render(group.Title)}
	for _, role := range group.Roles {
		swatch, ok := p.Swatches[role]
		if !ok {
			lines = append(lines, styleSet.Muted.Render(fmt.Sprintf("  %-22s missing", role)))
			continue
		}

		line := fmt.Sprintf("%s %s %s",
			styles.Swatch(swatch.Color, 4),
			styleSet.Text.Render(fmt.Sprintf("%-22s", role)),
			styleSet.Muted.Render(swatch.String()),
		)
		if bgRole, paired := group.Pairs[role]; paired {
			if bg, ok := p.Color(bgRole); ok {
				ratio := colorspace.ContrastRatio(swatch.Color, bg)
				line += "  " + styles.Sample(" Aa ", swatch.Color, bg) + " " + RenderContrastBadge(styleSet, ratio, 4.5)
			}
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// RenderSet renders a categorical color set as a row of swatches.
func RenderSet(styleSet styles.Styles, p *palette.Palette, name string) string {
	set, ok := p.Set(name)
	if !ok {
		return styleSet.Muted.Render(fmt.Sprintf("%-22s missing", name))
	}
	var b strings.Builder
	b.WriteString(styleSet.Text.Render(fmt.Sprintf("%-22s", name)))
	for _, c := range set {
		b.WriteString(styles.Swatch(c, 2))
	}
	return b.String()
}

// RenderANSI renders the 16 source colors in two rows.
func RenderANSI(src palette.Source) string {
	var normal, bright strings.Builder
	for i := 0; i < 8; i++ {
		normal.WriteString(styles.Swatch(src.ANSI[i], 3))
		bright.WriteString(styles.Swatch(src.ANSI[i+8], 3))
	}
	return normal.String() + "\n" + bright.String()
}
