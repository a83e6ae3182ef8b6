package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/topoviz/topoviz/pkg/config"
	tverrors "github.com/topoviz/topoviz/pkg/errors"
	"github.com/topoviz/topoviz/pkg/pipeline"
	neo4jsource "github.com/topoviz/topoviz/pkg/source/neo4j"
	"github.com/topoviz/topoviz/pkg/topology"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	variants []string // render variants: static, force, scatter, sphere
	output   string   // output directory
	name     string   // artifact base name
	seed     uint64   // layout seed for the static variant
	title    string   // title drawn on each artifact
	demo     bool     // render the built-in demo topology instead of pulling from the store
}

// newRenderCmd creates the render command: pull records, build the model,
// and write one artifact per requested variant.
//
// Default settings:
//   - variants: all four (static, force, scatter, sphere)
//   - output: current directory (or [render].output_dir from the config)
//   - name: "topology"
func newRenderCmd(cfgPath *string) *cobra.Command {
	var variantsStr string
	opts := renderOpts{name: "topology"}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the network topology to visualization artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.variants = parseVariants(variantsStr)
			if err := pipeline.ValidateVariants(opts.variants); err != nil {
				return err
			}
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), cfg, &opts)
		},
	}

	cmd.Flags().StringVarP(&variantsStr, "variant", "t", "", "variant(s): static, force, scatter, sphere (comma-separated, default all)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default from config)")
	cmd.Flags().StringVar(&opts.name, "name", opts.name, "artifact base name")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "layout seed for the static variant (default from config)")
	cmd.Flags().StringVar(&opts.title, "title", "", "artifact title (default from config)")
	cmd.Flags().BoolVar(&opts.demo, "demo", false, "render the built-in demo topology without a graph store")

	return cmd
}

// parseVariants parses the --variant flag into a slice of variant names.
// Empty means all variants.
func parseVariants(s string) []string {
	if s == "" {
		return pipeline.AllVariants
	}
	parts := strings.Split(s, ",")
	variants := make([]string, 0, len(parts))
	for _, p := range parts {
		variants = append(variants, strings.TrimSpace(p))
	}
	return variants
}

// artifactPath builds the output path for one variant's artifact. The static
// raster is the unsuffixed <name>.png; the interactive documents carry a
// variant suffix, with sphere keeping its historical "_3d" name.
func artifactPath(dir, name, variant string) string {
	switch variant {
	case pipeline.VariantStatic:
		return filepath.Join(dir, name+".png")
	case pipeline.VariantSphere:
		return filepath.Join(dir, name+"_3d.html")
	default:
		return filepath.Join(dir, fmt.Sprintf("%s_%s.%s", name, variant, pipeline.Extension(variant)))
	}
}

// runRender resolves the record source, executes the pipeline, and writes
// each artifact to disk.
func runRender(ctx context.Context, cfg config.Config, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	source, cleanup, err := resolveSource(ctx, cfg, opts.demo)
	if err != nil {
		return err
	}
	defer cleanup()

	pipeOpts := pipeline.Options{
		Variants: opts.variants,
		Seed:     opts.seed,
		Title:    opts.title,
		Logger:   logger,
	}
	if pipeOpts.Seed == 0 {
		pipeOpts.Seed = cfg.Render.Seed
	}
	if pipeOpts.Title == "" {
		pipeOpts.Title = cfg.Render.Title
	}

	prog := newProgress(logger)
	runner := pipeline.NewRunner(source)
	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d artifacts", len(result.Artifacts)))

	outDir := opts.output
	if outDir == "" {
		outDir = cfg.Render.OutputDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return tverrors.Wrap(tverrors.ErrCodeInvalidOutput, err, "create output directory %s", outDir)
	}

	printSuccess("Rendered %s", pipeOpts.Title)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount)
	for _, variant := range opts.variants {
		path := artifactPath(outDir, opts.name, variant)
		if err := os.WriteFile(path, result.Artifacts[variant], 0o644); err != nil {
			return tverrors.Wrap(tverrors.ErrCodeInvalidOutput, err, "write %s", path)
		}
		printFile(path)
	}

	return nil
}

// resolveSource returns the record source for a render run: the in-memory
// demo fixture with --demo, otherwise a connected store. The cleanup closes
// the store connection when one was opened.
func resolveSource(ctx context.Context, cfg config.Config, demo bool) (topology.RecordSource, func(), error) {
	if demo {
		return topology.StaticSource(topology.DemoRecords()), func() {}, nil
	}

	if err := cfg.ValidateSource(); err != nil {
		return nil, nil, err
	}
	store, err := neo4jsource.Connect(ctx, cfg.Source)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close(ctx) }, nil
}
