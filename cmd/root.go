// Package cmd provides the root command and CLI setup for minipack.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"minipack.dev/pkg/minipack/internal/adapter"
	"minipack.dev/pkg/minipack/internal/controller"
	"minipack.dev/pkg/minipack/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var scriptAdapter adapter.ScriptAdapter
var transformAdapter adapter.TransformAdapter
var graphStore adapter.GraphStore
var extractor domain.Extractor
var graphBuilder domain.GraphBuilder
var workflow domain.Workflow
var ui controller.UI

// verboseFlag enables debug logging for every command.
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	scriptAdapter = adapter.NewLocalScriptAdapter()
	transformAdapter = adapter.NewLocalTransformAdapter()
	graphStore = adapter.NewGraphStore(fsAdapter)
	extractor = domain.NewExtractor(fsAdapter, scriptAdapter, transformAdapter)
	graphBuilder = domain.NewGraphBuilder(fsAdapter, extractor)
	workflow = domain.NewWorkflow(graphBuilder, graphStore, ui)
}

const rootLongDescription = `minipack builds the module dependency graph of a JavaScript project.

Starting from an entry file it follows every relative import, lowers each
module to the configured target and numbers the modules in breadth-first
order. The resulting graph is the input of a module bundler.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "minipack",
		Short: "Dependency graph builder for JavaScript modules",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "write debug logs to the log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
