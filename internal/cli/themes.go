package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/ansitheme/internal/themes"
	"github.com/opencode-ai/ansitheme/internal/tui/components"
	"github.com/opencode-ai/ansitheme/internal/tui/styles"
)

func init() {
	rootCmd.AddCommand(themesCmd)
}

// ThemeSummary is one row of `ansitheme themes --json`.
type ThemeSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Dark        bool   `json:"dark"`
	Source      string `json:"source"`
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long:  "List built-in themes and themes found in the theme search paths.",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := themes.LoadThemesFromSearchPaths(themesDir)
		if err != nil {
			return err
		}

		summaries := make([]ThemeSummary, 0, len(list))
		for _, t := range list {
			summaries = append(summaries, ThemeSummary{
				Name:        t.Name,
				Description: t.Description,
				Dark:        t.Dark(),
				Source:      t.Source,
			})
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, summaries)
		}
		if len(summaries) == 0 {
			_, err := os.Stdout.WriteString(components.NoThemes().Render(styles.DefaultStyles()) + "\n")
			return err
		}

		rows := make([][]string, 0, len(summaries))
		for _, s := range summaries {
			rows = append(rows, []string{s.Name, formatMode(s.Dark), s.Source, formatOptional(s.Description)})
		}
		return writeTable(os.Stdout, []string{"NAME", "MODE", "SOURCE", "DESCRIPTION"}, rows)
	},
}
