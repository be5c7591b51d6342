package themes

import (
	"os"
	"path/filepath"
	"strings"
)

// ThemeSearchPaths returns theme directories in precedence order.
func ThemeSearchPaths(extraDir string) []string {
	paths := make([]string, 0, 3)
	if extraDir != "" {
		paths = append(paths, extraDir)
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "ansitheme", "themes"))
	} else if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "ansitheme", "themes"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "ansitheme", "themes"))
	return paths
}

// LoadThemesFromSearchPaths loads themes with first-hit precedence by name;
// built-in themes come last.
func LoadThemesFromSearchPaths(extraDir string) ([]*Theme, error) {
	seen := make(map[string]*Theme)
	order := make([]string, 0)
	add := func(themes []*Theme) {
		for _, theme := range themes {
			if _, exists := seen[theme.Name]; exists {
				continue
			}
			seen[theme.Name] = theme
			order = append(order, theme.Name)
		}
	}

	for _, path := range ThemeSearchPaths(extraDir) {
		themes, err := LoadThemesFromDir(path)
		if err != nil {
			return nil, err
		}
		add(themes)
	}

	builtins, err := LoadBuiltinThemes()
	if err != nil {
		return nil, err
	}
	add(builtins)

	resolved := make([]*Theme, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}
	return resolved, nil
}

// FindTheme resolves name against the search paths. A name ending in .yaml or
// .yml, or containing a path separator, is loaded as a file.
func FindTheme(extraDir, name string) (*Theme, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".yaml" || ext == ".yml" || strings.ContainsRune(name, filepath.Separator) {
		return LoadTheme(name)
	}

	themes, err := LoadThemesFromSearchPaths(extraDir)
	if err != nil {
		return nil, err
	}
	for _, theme := range themes {
		if strings.EqualFold(theme.Name, name) {
			return theme, nil
		}
	}
	return nil, ErrThemeNotFound
}
