package config

import (
	"fmt"
	"strings"
)

var (
	validLevels  = []string{"", "trace", "debug", "info", "warn", "warning", "error", "disabled", "off"}
	validFormats = []string{"console", "json"}
	validOutputs = []string{"summary", "json", "hex"}
)

// ValidationError describes a single invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks cfg for unsupported values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return &ValidationError{Field: "config", Message: "is nil"}
	}
	if !oneOf(strings.ToLower(cfg.Logging.Level), validLevels) {
		return &ValidationError{Field: "logging.level", Message: fmt.Sprintf("unknown level %q", cfg.Logging.Level)}
	}
	if !oneOf(strings.ToLower(cfg.Logging.Format), validFormats) {
		return &ValidationError{Field: "logging.format", Message: fmt.Sprintf("must be one of %s", strings.Join(validFormats, ", "))}
	}
	if cfg.Store.Enabled && strings.TrimSpace(cfg.Store.Path) == "" {
		return &ValidationError{Field: "store.path", Message: "required when store is enabled"}
	}
	if cfg.Cache.Size < 1 {
		return &ValidationError{Field: "cache.size", Message: "must be at least 1"}
	}
	if !oneOf(strings.ToLower(cfg.Output.Format), validOutputs) {
		return &ValidationError{Field: "output.format", Message: fmt.Sprintf("must be one of %s", strings.Join(validOutputs, ", "))}
	}
	return nil
}

func oneOf(value string, options []string) bool {
	for _, opt := range options {
		if value == opt {
			return true
		}
	}
	return false
}
