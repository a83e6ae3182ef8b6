package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/topoviz/topoviz/pkg/buildinfo"
)

// Execute runs the topoviz CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (seed, render,
// inspect), configures logging based on the --verbose flag, and executes the
// command tree. The logger is attached to the context and accessible to all
// commands via loggerFromContext.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	var (
		verbose bool
		cfgPath string
	)

	root := &cobra.Command{
		Use:          "topoviz",
		Short:        "topoviz renders network topologies from a graph store",
		Long:         `topoviz pulls a network topology (base stations, routers, fiber nodes, user devices) from a Neo4j graph store and renders it as static raster, interactive force-directed, scatter, and 3D sphere visualizations.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default topoviz.toml)")

	root.AddCommand(newSeedCmd(&cfgPath))
	root.AddCommand(newRenderCmd(&cfgPath))
	root.AddCommand(newInspectCmd(&cfgPath))

	return root.ExecuteContext(ctx)
}
