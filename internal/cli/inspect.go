package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/topoviz/topoviz/pkg/config"
	neo4jsource "github.com/topoviz/topoviz/pkg/source/neo4j"
)

// newInspectCmd creates the inspect command, which prints the store's
// directed connections without rendering anything. Useful for verifying a
// seed before a render run.
func newInspectCmd(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the graph store's connections",
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

			conns, err := store.Connections(ctx)
			if err != nil {
				return err
			}

			if len(conns) == 0 {
				printWarning("No connections found")
				printNextStep("Seed the demo topology", "topoviz seed")
				return nil
			}

			fmt.Println(StyleTitle.Render("Connections"))
			for _, c := range conns {
				printConnection(c.Source, c.SourceType, c.Target, c.TargetType)
			}
			printNewline()
			printKeyValue("Connections", fmt.Sprintf("%d", len(conns)))
			printKeyValue("Store", store.URI())
			return nil
		},
	}

	return cmd
}
