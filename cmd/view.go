package cmd

import (
	"github.com/spf13/cobra"

	"minipack.dev/pkg/minipack/internal/domain"
	m "minipack.dev/pkg/minipack/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "View a previously saved dependency graph",
		Long:  "View a dependency graph saved with graph --output. The file is validated before it is shown.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{Input: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
