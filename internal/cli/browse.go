// Package cli provides TUI launch commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencode-ai/ansitheme/internal/themes"
	"github.com/opencode-ai/ansitheme/internal/tui"
)

func init() {
	rootCmd.AddCommand(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:   "browse [theme]",
	Short: "Browse themes with a live palette preview",
	Long:  "Launch the terminal browser: move through themes and inspect every derived role group.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowser(args)
	},
}

func runBrowser(args []string) error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "browse requires an interactive terminal",
			Hint:     "Run with a TTY, or use the preview command for static output",
			NextStep: "ansitheme preview",
		}
	}

	list, err := themes.LoadThemesFromSearchPaths(themesDir)
	if err != nil {
		return err
	}

	initial := currentConfig().Preview.Theme
	if len(args) > 0 {
		initial = args[0]
	}
	return tui.Run(list, sharedCache(), initial)
}
