// Package tui implements the interactive theme browser.
package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/ansitheme/internal/palette"
	"github.com/opencode-ai/ansitheme/internal/themes"
	"github.com/opencode-ai/ansitheme/internal/tui/components"
	"github.com/opencode-ai/ansitheme/internal/tui/styles"
)

// Run launches the browser over the given themes.
func Run(items []*themes.Theme, cache *palette.Cache, initial string) error {
	program := tea.NewProgram(newModel(items, cache, initial), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	width     int
	height    int
	items     []*themes.Theme
	visible   []int
	cursor    int
	group     int
	groups    []components.RoleGroup
	filter    string
	filtering bool
	cache     *palette.Cache
	palette   *palette.Palette
	styles    styles.Styles
}

const (
	minWidth  = 80
	minHeight = 20
	listWidth = 24
)

func newModel(items []*themes.Theme, cache *palette.Cache, initial string) model {
	if cache == nil {
		cache = palette.NewCache(nil, 16)
	}
	m := model{
		items:  items,
		groups: components.DefaultGroups(),
		cache:  cache,
		styles: styles.DefaultStyles(),
	}
	m.applyFilter()
	for i, idx := range m.visible {
		if strings.EqualFold(items[idx].Name, initial) {
			m.cursor = i
		}
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "j", "down":
			m.move(1)
		case "k", "up":
			m.move(-1)
		case "tab", "l", "right":
			m.group = (m.group + 1) % len(m.groups)
		case "shift+tab", "h", "left":
			m.group = (m.group + len(m.groups) - 1) % len(m.groups)
		case "/":
			m.filtering = true
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
	case tea.KeyBackspace:
		if _, size := utf8.DecodeLastRuneInString(m.filter); size > 0 {
			m.filter = m.filter[:len(m.filter)-size]
		}
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyRunes:
		m.filter += string(msg.Runes)
	default:
		return m, nil
	}
	m.applyFilter()
	m.refresh()
	return m, nil
}

func (m *model) move(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.visible)) % len(m.visible)
	m.refresh()
}

func (m *model) applyFilter() {
	visible := make([]int, 0, len(m.items))
	needle := strings.ToLower(strings.TrimSpace(m.filter))
	for i, theme := range m.items {
		if needle == "" || strings.Contains(strings.ToLower(theme.Name), needle) {
			visible = append(visible, i)
		}
	}
	m.visible = visible
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}

// refresh derives the palette of the selected theme and restyles the browser
// with it.
func (m *model) refresh() {
	theme := m.selected()
	if theme == nil {
		m.palette = nil
		m.styles = styles.DefaultStyles()
		return
	}
	m.palette = m.cache.Map(theme.Palette())
	m.styles = styles.BuildStyles(styles.FromPalette(theme.Name, m.palette))
}

func (m model) selected() *themes.Theme {
	if len(m.visible) == 0 {
		return nil
	}
	return m.items[m.visible[m.cursor]]
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", strings.Join(m.smallViewLines(), "\n"))
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(listWidth).Render(m.listView()),
		"  ",
		m.previewView(),
	)

	lines := []string{
		m.styles.Title.Render("ansitheme browser"),
		"",
		body,
		"",
		m.statusLine(),
	}
	return fmt.Sprintf("%s\n", strings.Join(lines, "\n"))
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func (m model) listView() string {
	if len(m.items) == 0 {
		return components.NoThemes().Inline(m.styles)
	}
	if len(m.visible) == 0 {
		return components.NoThemeMatches(m.filter).Render(m.styles)
	}

	lines := make([]string, 0, len(m.visible))
	for i, idx := range m.visible {
		name := m.items[idx].Name
		if i == m.cursor {
			lines = append(lines, m.styles.Selected.Render("> "+name))
			continue
		}
		lines = append(lines, m.styles.Text.Render("  "+name))
	}
	return strings.Join(lines, "\n")
}

func (m model) previewView() string {
	theme := m.selected()
	if theme == nil || m.palette == nil {
		return ""
	}

	group := m.groups[m.group]
	lines := []string{
		fmt.Sprintf("%s  %s", m.styles.Highlight.Render(theme.Name), components.RenderModeBadge(m.styles, m.palette.Dark)),
		components.RenderANSI(theme.Palette()),
		"",
		components.RenderRoleGroup(m.styles, m.palette, group),
		"",
		components.RenderSet(m.styles, m.palette, "collection_colors"),
		components.RenderSet(m.styles, m.palette, "strip_colors"),
	}
	return strings.Join(lines, "\n")
}

func (m model) statusLine() string {
	if m.filtering {
		return m.styles.Focus.Render("/" + m.filter)
	}
	stats := m.cache.Stats()
	return m.styles.Muted.Render(fmt.Sprintf(
		"j/k theme | tab group (%s) | / filter | q quit | cache %d hit %d miss",
		m.groups[m.group].Title, stats.Hits, stats.Misses,
	))
}
