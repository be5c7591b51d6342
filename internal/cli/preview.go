package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/ansitheme/internal/tui/components"
	"github.com/opencode-ai/ansitheme/internal/tui/styles"
)

var (
	previewSource sourceFlags
	previewGroups []string
)

func init() {
	rootCmd.AddCommand(previewCmd)
	addSourceFlags(previewCmd, &previewSource)
	previewCmd.Flags().StringSliceVar(&previewGroups, "group", nil, "only render these groups (surfaces, text, accents, widgets, states, syntax)")
}

var previewCmd = &cobra.Command{
	Use:   "preview [theme]",
	Short: "Render a derived palette as colored swatches",
	Long:  "Render role groups of a derived palette with swatches and contrast badges, without starting the TUI.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, err := resolveTheme(args, previewSource)
		if err != nil {
			return err
		}
		p := sharedCache().Map(theme.Palette())
		styleSet := styles.BuildStyles(styles.FromPalette(theme.Name, p))

		wanted := make(map[string]bool, len(previewGroups))
		for _, g := range previewGroups {
			wanted[strings.ToLower(g)] = true
		}

		sections := []string{
			fmt.Sprintf("%s  %s", styleSet.Title.Render(theme.Name), components.RenderModeBadge(styleSet, p.Dark)),
			components.RenderANSI(theme.Palette()),
		}
		for _, group := range components.DefaultGroups() {
			if len(wanted) > 0 && !wanted[strings.ToLower(group.Title)] {
				continue
			}
			sections = append(sections, components.RenderRoleGroup(styleSet, p, group))
		}
		if len(wanted) == 0 {
			var sets []string
			for _, name := range []string{"collection_colors", "node_type_colors", "strip_colors", "bone_color_normal"} {
				sets = append(sets, components.RenderSet(styleSet, p, name))
			}
			sections = append(sections, styleSet.Header.Render("Categorical")+"\n"+strings.Join(sets, "\n"))
		}

		_, err = fmt.Fprintln(os.Stdout, strings.Join(sections, "\n\n"))
		return err
	},
}
