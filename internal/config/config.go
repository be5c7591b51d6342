// Package config loads ansitheme settings from defaults, an optional YAML
// file and ANSITHEME_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configDirName  = "ansitheme"
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "ANSITHEME"
)

// Config is the resolved application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Store   StoreConfig   `mapstructure:"store" yaml:"store"`
	Cache   CacheConfig   `mapstructure:"cache" yaml:"cache"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Preview PreviewConfig `mapstructure:"preview" yaml:"preview"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// StoreConfig controls the sqlite palette store.
type StoreConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
}

type CacheConfig struct {
	Size int `mapstructure:"size" yaml:"size"`
}

// OutputConfig selects how derive prints palettes: "summary", "json" or "hex".
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// PreviewConfig names the built-in theme used when none is given.
type PreviewConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`
}

// ConfigDirFunc resolves the configuration directory. Tests override it.
var ConfigDirFunc = DefaultConfigDir

// DefaultConfigDir returns $XDG_CONFIG_HOME/ansitheme or ~/.config/ansitheme.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, configDirName)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, configDirName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", configDirName)
}

// DefaultDataDir returns $XDG_DATA_HOME/ansitheme or ~/.local/share/ansitheme.
func DefaultDataDir() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, configDirName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", configDirName)
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "warn", Format: "console"},
		Store: StoreConfig{
			Enabled: false,
			Path:    filepath.Join(DefaultDataDir(), "palettes.db"),
		},
		Cache:   CacheConfig{Size: 32},
		Output:  OutputConfig{Format: "summary"},
		Preview: PreviewConfig{Theme: "tokyo-night"},
	}
}

// Load resolves configuration. An explicit path must exist; otherwise the
// default location is optional.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(ConfigDirFunc())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(ConfigDirFunc(), configFileName+"."+configFileType)
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("store.enabled", cfg.Store.Enabled)
	v.SetDefault("store.path", cfg.Store.Path)
	v.SetDefault("cache.size", cfg.Cache.Size)
	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("preview.theme", cfg.Preview.Theme)
}
