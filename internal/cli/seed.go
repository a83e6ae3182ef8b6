package cli

import (
	"github.com/spf13/cobra"

	"github.com/topoviz/topoviz/pkg/config"
	neo4jsource "github.com/topoviz/topoviz/pkg/source/neo4j"
)

// newSeedCmd creates the seed command, which writes the demo network
// topology (10 nodes, 9 CONNECTED_TO relationships) into the graph store.
func newSeedCmd(cfgPath *string) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the demo network topology into the graph store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			if err := cfg.ValidateSource(); err != nil {
				return err
			}

			logger.Debugf("Connecting to %s", cfg.Source.URI)
			store, err := neo4jsource.Connect(ctx, cfg.Source)
			if err != nil {
				return err
			}
			defer store.Close(ctx)

			spinner := newSpinnerWithContext(ctx, "Seeding topology...")
			spinner.Start()
			if err := store.SeedTopology(ctx, reset); err != nil {
				spinner.StopWithError("Seed failed")
				return err
			}
			spinner.StopWithSuccess("Seeded demo topology (10 nodes, 9 connections)")

			printInfo("Store: %s", StyleHighlight.Render(store.URI()))
			printNextStep("Inspect it", "topoviz inspect")
			printNextStep("Render it", "topoviz render")
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "delete all existing nodes and relationships first")

	return cmd
}
