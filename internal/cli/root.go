// Package cli implements the ansitheme command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/ansitheme/internal/config"
	"github.com/opencode-ai/ansitheme/internal/logging"
)

var (
	cfgFile        string
	jsonOutput     bool
	jsonlOutput    bool
	logLevel       string
	themesDir      string
	nonInteractive bool
	noProgress     bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "ansitheme",
	Short: "Derive UI color schemes from terminal palettes",
	Long: `ansitheme turns a 16-color ANSI terminal palette into a complete UI
color scheme of surfaces, text, accents, widget states and categorical
colors, with guaranteed text contrast.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/ansitheme/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")
	rootCmd.PersistentFlags().BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&themesDir, "themes-dir", "", "extra directory searched for theme files")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "never prompt or start the TUI")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable progress output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Main runs the CLI and exits with a non-zero status on failure.
func Main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

func initApp() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if err := logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	appConfig = cfg
	log := logging.Component("cli")
	log.Debug().
		Str("config", config.Path()).
		Bool("store", cfg.Store.Enabled).
		Msg("configuration loaded")
	return nil
}

// GetConfig returns the loaded configuration, or nil before initialization.
func GetConfig() *config.Config {
	return appConfig
}

func currentConfig() *config.Config {
	if appConfig != nil {
		return appConfig
	}
	return config.DefaultConfig()
}
