// Package models defines the records persisted by the palette store.
package models

import "time"

// PaletteRecord is a derived palette saved in the store.
type PaletteRecord struct {
	// ID is the unique identifier for the record.
	ID string `json:"id"`

	// SourceHash identifies the source colors the palette was derived from.
	SourceHash string `json:"source_hash"`

	// ThemeName is the theme the source came from, if any.
	ThemeName string `json:"theme_name,omitempty"`

	// Dark is the mode the palette was derived in.
	Dark bool `json:"dark"`

	// RoleCount is the number of roles and sets in the palette.
	RoleCount int `json:"role_count"`

	// Roles maps role names to hex strings (or lists of them for sets).
	Roles map[string]any `json:"roles"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaletteQuery filters palette listings.
type PaletteQuery struct {
	ThemeName *string
	Dark      *bool
	Limit     int
}
