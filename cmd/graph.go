package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"minipack.dev/pkg/minipack/internal/domain"
	m "minipack.dev/pkg/minipack/internal/model"
)

var targetFlag string
var dedupeFlag bool
var maxAssetsFlag int
var outputFlag string

const graphLongDescription = `Build the dependency graph reachable from an entry module.

Only relative references ("./x.js", "../lib/y.js") declared by top-level
import statements are followed. Every module is lowered to --target and
shown with the identifiers its references map to.

By default each reference is extracted on its own, so a module imported
from two places appears twice and import cycles are reported as errors.
With --dedupe every file appears once and cycles are allowed.

The graph can be saved with --output; the file extension picks the format
(.json, .jsonl, .ndjson, .yaml, .yml).`

// graphCmd represents the graph command.
var graphCmd = newGraphCmd()

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <entry>",
		Short: "Build the dependency graph of an entry module",
		Long:  graphLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := m.ParseTarget(viper.GetString(targetConfigKey))
			if err != nil {
				return err
			}

			maxAssets := viper.GetInt(maxAssetsConfigKey)
			if maxAssets < 0 {
				return fmt.Errorf("%s must not be negative, got %d", maxAssetsFlagName, maxAssets)
			}

			return workflow.Graph(cmd.Context(), domain.GraphArgs{
				Entry:     m.Path(args[0]),
				Target:    target,
				Dedupe:    viper.GetBool(dedupeConfigKey),
				MaxAssets: maxAssets,
				Output:    m.Path(viper.GetString(outputConfigKey)),
			})
		},
	}

	configureGraphFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

func configureGraphFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&targetFlag, targetFlagName, viper.GetString(targetConfigKey), "language level modules are lowered to (es5 ... es2024, esnext)")
	bindFlagToConfig(cmd.Flags().Lookup(targetFlagName), targetConfigKey)

	cmd.Flags().BoolVar(&dedupeFlag, dedupeFlagName, viper.GetBool(dedupeConfigKey), "extract every file once and allow import cycles")
	bindFlagToConfig(cmd.Flags().Lookup(dedupeFlagName), dedupeConfigKey)

	cmd.Flags().IntVar(&maxAssetsFlag, maxAssetsFlagName, viper.GetInt(maxAssetsConfigKey), "maximum number of assets in the graph (0 disables the limit)")
	bindFlagToConfig(cmd.Flags().Lookup(maxAssetsFlagName), maxAssetsConfigKey)

	cmd.Flags().StringVarP(&outputFlag, outputFlagName, "o", viper.GetString(outputConfigKey), "save the graph to this file")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputConfigKey)
}
