package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	m "minipack.dev/pkg/minipack/internal/model"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the Go version used to build minipack and the default lowering target.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("default target\t", m.DefaultTarget)

			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("minipack version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
