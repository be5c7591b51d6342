package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/ansitheme/internal/db"
	"github.com/opencode-ai/ansitheme/internal/models"
	"github.com/opencode-ai/ansitheme/internal/tui/components"
	"github.com/opencode-ai/ansitheme/internal/tui/styles"
)

var (
	storeListTheme string
	storeListLimit int
	storePurgeYes  bool
)

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storeListCmd)
	storeCmd.AddCommand(storeShowCmd)
	storeCmd.AddCommand(storePurgeCmd)

	storeListCmd.Flags().StringVar(&storeListTheme, "theme", "", "only palettes derived from this theme")
	storeListCmd.Flags().IntVar(&storeListLimit, "limit", 50, "maximum palettes to list")
	storePurgeCmd.Flags().BoolVarP(&storePurgeYes, "yes", "y", false, "confirm deletion of every saved palette")
}

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage saved palettes",
	Long:  "Inspect and prune derived palettes saved in the local sqlite store.",
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved palettes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)
		database, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		query := models.PaletteQuery{Limit: storeListLimit}
		if storeListTheme != "" {
			query.ThemeName = &storeListTheme
		}
		records, err := db.NewPaletteRepository(database).List(ctx, query)
		if err != nil {
			return err
		}

		if IsJSONOutput() || IsJSONLOutput() {
			if records == nil {
				records = []*models.PaletteRecord{}
			}
			return WriteOutput(os.Stdout, records)
		}
		if len(records) == 0 {
			fmt.Println(components.NoStoredPalettes().Render(styles.DefaultStyles()))
			return nil
		}

		rows := make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, []string{
				shortID(r.ID),
				formatOptional(r.ThemeName),
				formatMode(r.Dark),
				fmt.Sprintf("%d", r.RoleCount),
				r.UpdatedAt.Local().Format("2006-01-02 15:04"),
			})
		}
		return writeTable(os.Stdout, []string{"ID", "THEME", "MODE", "ROLES", "UPDATED"}, rows)
	},
}

var storeShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved palette",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)
		database, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		record, err := findRecord(ctx, db.NewPaletteRepository(database), args[0])
		if err != nil {
			return err
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, record)
		}
		fmt.Printf("ID:      %s\n", record.ID)
		fmt.Printf("Theme:   %s\n", formatOptional(record.ThemeName))
		fmt.Printf("Mode:    %s\n", formatMode(record.Dark))
		fmt.Printf("Hash:    %s\n", record.SourceHash)
		fmt.Printf("Updated: %s\n\n", record.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
		return writeHexLines(os.Stdout, record.Roles)
	},
}

var storePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every saved palette",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !storePurgeYes {
			return &PreflightError{
				Message:  "purge deletes every saved palette",
				Hint:     "Re-run with --yes to confirm",
				NextStep: "ansitheme store purge --yes",
			}
		}

		ctx := commandContext(cmd)
		database, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		n, err := db.NewPaletteRepository(database).Purge(ctx)
		if err != nil {
			return err
		}
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, map[string]any{"deleted": n})
		}
		fmt.Printf("Deleted %d palette(s).\n", n)
		return nil
	},
}

func openStore(ctx context.Context) (*db.DB, error) {
	path := currentConfig().Store.Path
	database, err := db.Open(path)
	if err != nil {
		return nil, &PreflightError{
			Message:  "failed to open palette store",
			Hint:     "Check store.path in the config file",
			NextStep: "ansitheme --config <file> store list",
			Err:      err,
		}
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate palette store: %w", err)
	}
	return database, nil
}

// findRecord accepts a full ID, an ID prefix as printed by list, or a source hash.
func findRecord(ctx context.Context, repo *db.PaletteRepository, key string) (*models.PaletteRecord, error) {
	if record, err := repo.Get(ctx, key); err == nil {
		return record, nil
	}
	if record, err := repo.GetByHash(ctx, key); err == nil {
		return record, nil
	}

	records, err := repo.List(ctx, models.PaletteQuery{Limit: 1000})
	if err != nil {
		return nil, err
	}
	var match *models.PaletteRecord
	for _, r := range records {
		if len(key) >= 4 && len(r.ID) >= len(key) && r.ID[:len(key)] == key {
			if match != nil {
				return nil, fmt.Errorf("palette id %q is ambiguous", key)
			}
			match = r
		}
	}
	if match == nil {
		return nil, db.ErrPaletteNotFound
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
