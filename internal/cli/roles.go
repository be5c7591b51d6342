package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/ansitheme/internal/palette"
)

var rolesDeps bool

func init() {
	rootCmd.AddCommand(rolesCmd)
	rolesCmd.Flags().BoolVar(&rolesDeps, "deps", false, "show the roles each role is derived from")
}

var rolesCmd = &cobra.Command{
	Use:   "roles [prefix]",
	Short: "List derived roles",
	Long:  "List every role the mapper derives, in evaluation order, with its channel count.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}

		var roles []palette.RoleInfo
		for _, r := range palette.DefaultTable().Roles() {
			if strings.HasPrefix(r.Name, prefix) {
				roles = append(roles, r)
			}
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, roles)
		}

		headers := []string{"ROLE", "KIND", "CHANNELS"}
		if rolesDeps {
			headers = append(headers, "DEPENDS ON")
		}
		rows := make([][]string, 0, len(roles))
		for _, r := range roles {
			kind := "color"
			if r.Set {
				kind = "set"
			}
			row := []string{r.Name, kind, fmt.Sprintf("%d", r.Arity)}
			if rolesDeps {
				row = append(row, formatOptional(strings.Join(r.Deps, ", ")))
			}
			rows = append(rows, row)
		}
		return writeTable(os.Stdout, headers, rows)
	},
}
