// Package themes loads normalized terminal color schemes from YAML records.
package themes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opencode-ai/ansitheme/internal/colorspace"
	"github.com/opencode-ai/ansitheme/internal/palette"
)

var (
	// ErrThemeNameRequired is returned when a theme has no name.
	ErrThemeNameRequired = errors.New("theme name is required")
	// ErrThemeNotFound is returned when a theme is not found.
	ErrThemeNotFound = errors.New("theme not found")
)

// ANSICount is the number of colors a theme must define.
const ANSICount = 16

// ThemeValidationError describes a validation error in a theme.
type ThemeValidationError struct {
	Field   string
	Index   int
	Message string
}

func (e *ThemeValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("theme %s[%d]: %s", e.Field, e.Index, e.Message)
	}
	return fmt.Sprintf("theme %s: %s", e.Field, e.Message)
}

// Theme is a terminal color scheme as written on disk.
type Theme struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	ANSI        []string `yaml:"ansi" json:"ansi"`
	Background  string   `yaml:"background,omitempty" json:"background,omitempty"`
	Foreground  string   `yaml:"foreground,omitempty" json:"foreground,omitempty"`
	Cursor      string   `yaml:"cursor,omitempty" json:"cursor,omitempty"`
	Selection   string   `yaml:"selection,omitempty" json:"selection,omitempty"`
	Source      string   `yaml:"-" json:"source"` // file path or "builtin"

	palette palette.Source
}

// Validate checks required fields and parses every color.
func (t *Theme) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrThemeNameRequired
	}
	if len(t.ANSI) != ANSICount {
		return &ThemeValidationError{
			Field:   "ansi",
			Index:   -1,
			Message: fmt.Sprintf("expected %d colors, got %d", ANSICount, len(t.ANSI)),
		}
	}

	var src palette.Source
	for i, hex := range t.ANSI {
		c, err := colorspace.ParseHex(hex)
		if err != nil {
			return &ThemeValidationError{Field: "ansi", Index: i, Message: err.Error()}
		}
		src.ANSI[i] = c
	}

	src.Background = src.ANSI[palette.Black]
	src.Foreground = src.ANSI[palette.White]
	if err := parseOptional("background", t.Background, func(c colorspace.Color) { src.Background = c }); err != nil {
		return err
	}
	if err := parseOptional("foreground", t.Foreground, func(c colorspace.Color) { src.Foreground = c }); err != nil {
		return err
	}
	if err := parseOptional("cursor", t.Cursor, func(c colorspace.Color) { src.Cursor = &c }); err != nil {
		return err
	}
	if err := parseOptional("selection", t.Selection, func(c colorspace.Color) { src.Selection = &c }); err != nil {
		return err
	}

	t.palette = src.Clamped()
	return nil
}

// Palette returns the normalized source record. Validate must have succeeded.
func (t *Theme) Palette() palette.Source {
	return t.palette
}

// Dark reports whether the theme background is dark.
func (t *Theme) Dark() bool {
	return colorspace.IsDark(t.palette.Background)
}

func parseOptional(field, value string, set func(colorspace.Color)) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	c, err := colorspace.ParseHex(value)
	if err != nil {
		return &ThemeValidationError{Field: field, Index: -1, Message: err.Error()}
	}
	set(c)
	return nil
}
