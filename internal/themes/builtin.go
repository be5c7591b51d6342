package themes

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltinThemes returns the themes bundled with ansitheme.
func LoadBuiltinThemes() ([]*Theme, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin themes: %w", err)
	}

	themes := make([]*Theme, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin theme %s: %w", entry.Name(), err)
		}
		theme, err := ParseTheme(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin theme %s: %w", entry.Name(), err)
		}
		theme.Source = "builtin"
		themes = append(themes, theme)
	}

	sort.Slice(themes, func(i, j int) bool {
		return themes[i].Name < themes[j].Name
	})

	return themes, nil
}
