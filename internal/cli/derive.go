package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/ansitheme/internal/db"
	"github.com/opencode-ai/ansitheme/internal/models"
	"github.com/opencode-ai/ansitheme/internal/palette"
	"github.com/opencode-ai/ansitheme/internal/themes"
)

var (
	deriveSource sourceFlags
	deriveFormat string
	deriveRoles  []string
	deriveSave   bool
)

func init() {
	rootCmd.AddCommand(deriveCmd)
	addSourceFlags(deriveCmd, &deriveSource)
	deriveCmd.Flags().StringVar(&deriveFormat, "format", "", "output format: summary, json or hex (default from config)")
	deriveCmd.Flags().StringSliceVar(&deriveRoles, "role", nil, "only print these roles (repeatable)")
	deriveCmd.Flags().BoolVar(&deriveSave, "save", false, "save the derived palette to the store")
}

func addSourceFlags(cmd *cobra.Command, flags *sourceFlags) {
	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "theme YAML file")
	cmd.Flags().StringVar(&flags.ansi, "ansi", "", "16 comma-separated hex colors instead of a theme")
	cmd.Flags().StringVar(&flags.bg, "bg", "", "background color override")
	cmd.Flags().StringVar(&flags.fg, "fg", "", "foreground color override")
	cmd.Flags().StringVar(&flags.cursor, "cursor", "", "cursor color override")
	cmd.Flags().StringVar(&flags.selection, "selection", "", "selection color override")
}

var deriveCmd = &cobra.Command{
	Use:   "derive [theme]",
	Short: "Derive a UI palette from a terminal theme",
	Long: `Derive every UI role from a terminal theme.

The theme is a built-in or user theme name, a YAML file (--file), or 16 inline
colors (--ansi). Without any, the configured preview theme is used.`,
	Example: `  ansitheme derive tokyo-night
  ansitheme derive --file ~/themes/mine.yaml --format hex
  ansitheme derive nord --role ui_text --role ui_bg --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, err := resolveTheme(args, deriveSource)
		if err != nil {
			return err
		}

		src := theme.Palette()
		p := sharedCache().Map(src)

		format, err := deriveOutputFormat()
		if err != nil {
			return err
		}

		if deriveSave || currentConfig().Store.Enabled {
			if err := savePalette(commandContext(cmd), theme, src, p); err != nil {
				return err
			}
		}

		return writeDerived(os.Stdout, theme, src, p, format, deriveRoles)
	},
}

func deriveOutputFormat() (string, error) {
	if IsJSONOutput() || IsJSONLOutput() {
		return "json", nil
	}
	format := strings.ToLower(strings.TrimSpace(deriveFormat))
	if format == "" {
		format = currentConfig().Output.Format
	}
	switch format {
	case "summary", "json", "hex":
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected summary, json or hex)", format)
	}
}

// DeriveResult is the payload printed by `ansitheme derive --json`.
type DeriveResult struct {
	Theme      string         `json:"theme"`
	SourceHash string         `json:"source_hash"`
	Dark       bool           `json:"dark"`
	Roles      map[string]any `json:"roles"`
}

func writeDerived(out io.Writer, theme *themes.Theme, src palette.Source, p *palette.Palette, format string, only []string) error {
	switch format {
	case "json", "hex":
		roles := p.Flat()
		if format == "hex" {
			roles = p.Hex()
		}
		roles, err := filterRoles(roles, only)
		if err != nil {
			return err
		}
		if format == "hex" && !IsJSONOutput() && !IsJSONLOutput() {
			return writeHexLines(out, roles)
		}
		return WriteOutput(out, DeriveResult{
			Theme:      theme.Name,
			SourceHash: src.Hash(),
			Dark:       p.Dark,
			Roles:      roles,
		})
	default:
		if len(only) > 0 {
			roles, err := filterRoles(p.Hex(), only)
			if err != nil {
				return err
			}
			return writeHexLines(out, roles)
		}
		fmt.Fprintf(out, "Theme: %s (%s)\n", theme.Name, formatMode(p.Dark))
		fmt.Fprintf(out, "Roles: %d, sets: %d\n", len(p.Swatches), len(p.Sets))
		fmt.Fprintf(out, "Text contrast: %.2f:1, selection: %.2f:1\n\n",
			contrastOf(p, "ui_text", "ui_bg"),
			contrastOf(p, "ui_selection_text", "ui_selection"),
		)
		_, err := io.WriteString(out, p.Summary())
		return err
	}
}

func filterRoles(roles map[string]any, only []string) (map[string]any, error) {
	if len(only) == 0 {
		return roles, nil
	}
	out := make(map[string]any, len(only))
	for _, name := range only {
		value, ok := roles[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", palette.ErrUnknownRole, name)
		}
		out[name] = value
	}
	return out, nil
}

func writeHexLines(out io.Writer, roles map[string]any) error {
	names := make([]string, 0, len(roles))
	for name := range roles {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		value := roles[name]
		if list, ok := value.([]string); ok {
			value = strings.Join(list, " ")
		}
		rows = append(rows, []string{name, fmt.Sprint(value)})
	}
	return writeTable(out, nil, rows)
}

func savePalette(ctx context.Context, theme *themes.Theme, src palette.Source, p *palette.Palette) error {
	record := &models.PaletteRecord{
		SourceHash: src.Hash(),
		ThemeName:  theme.Name,
		Dark:       p.Dark,
		Roles:      p.Hex(),
	}
	report := beginSave(os.Stderr, record.ThemeName, record.SourceHash)

	database, err := openStore(ctx)
	if err != nil {
		report.Failed(err)
		return err
	}
	defer database.Close()

	if err := db.NewPaletteRepository(database).Save(ctx, record); err != nil {
		report.Failed(err)
		return err
	}
	report.Saved(record)
	return nil
}
