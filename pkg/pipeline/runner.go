package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/google/uuid"

	tverrors "github.com/topoviz/topoviz/pkg/errors"
	"github.com/topoviz/topoviz/pkg/observability"
	"github.com/topoviz/topoviz/pkg/render/forcenet"
	"github.com/topoviz/topoviz/pkg/render/scatter"
	"github.com/topoviz/topoviz/pkg/render/sphere"
	"github.com/topoviz/topoviz/pkg/render/static"
	"github.com/topoviz/topoviz/pkg/topology"
)

// Runner executes the pull → build → render pipeline against one source.
//
// The Runner is stateless apart from its source and logger; it stores no run
// results. Multiple goroutines can safely share one Runner with different
// options.
type Runner struct {
	Source topology.RecordSource
}

// NewRunner creates a runner over the given record source.
func NewRunner(source topology.RecordSource) *Runner {
	return &Runner{Source: source}
}

// sourceName identifies the record source in hook events. Store-backed
// sources report their URI; in-memory sources report "static".
func sourceName(src topology.RecordSource) string {
	if s, ok := src.(interface{ URI() string }); ok {
		return s.URI()
	}
	return "static"
}

// Result contains the outputs of one pipeline run.
type Result struct {
	// RunID identifies this run in logs and hooks.
	RunID string

	// Model is the built topology model.
	Model *topology.Model

	// Artifacts contains rendered outputs keyed by variant name.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RecordCount int
	NodeCount   int
	EdgeCount   int
	PullTime    time.Duration
	BuildTime   time.Duration
	RenderTime  time.Duration
}

// Execute runs the complete pull → build → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := opts.Logger.With("run_id", result.RunID)
	hooks := observability.Pipeline()
	source := sourceName(r.Source)

	// Stage 1: Pull
	pullStart := time.Now()
	hooks.OnPullStart(ctx, source)
	records, err := r.Source.Records(ctx)
	result.Stats.PullTime = time.Since(pullStart)
	result.Stats.RecordCount = len(records)
	hooks.OnPullComplete(ctx, source, len(records), result.Stats.PullTime, err)
	if err != nil {
		return nil, err
	}

	logger.Info("pulled records",
		"records", len(records),
		"duration", result.Stats.PullTime)

	// Stage 2: Build
	buildStart := time.Now()
	hooks.OnBuildStart(ctx, len(records))
	model, err := topology.Build(records)
	result.Stats.BuildTime = time.Since(buildStart)
	if err != nil {
		hooks.OnBuildComplete(ctx, 0, 0, result.Stats.BuildTime, err)
		return nil, tverrors.Wrap(tverrors.ErrCodeMalformedRecord, err, "build topology model")
	}
	result.Model = model
	result.Stats.NodeCount = model.NodeCount()
	result.Stats.EdgeCount = model.EdgeCount()
	hooks.OnBuildComplete(ctx, model.NodeCount(), model.EdgeCount(), result.Stats.BuildTime, nil)

	logger.Info("built model",
		"nodes", model.NodeCount(),
		"edges", model.EdgeCount(),
		"duration", result.Stats.BuildTime)

	// Stage 3: Render fan-out
	renderStart := time.Now()
	for _, variant := range opts.Variants {
		variantStart := time.Now()
		hooks.OnRenderStart(ctx, variant)
		data, err := r.RenderVariant(ctx, model, variant, opts)
		hooks.OnRenderComplete(ctx, variant, len(data), time.Since(variantStart), err)
		if err != nil {
			return nil, err
		}
		result.Artifacts[variant] = data
		logger.Info("rendered variant",
			"variant", variant,
			"bytes", len(data),
			"duration", time.Since(variantStart))
	}
	result.Stats.RenderTime = time.Since(renderStart)

	return result, nil
}

// RenderVariant renders one variant from a built model.
func (r *Runner) RenderVariant(ctx context.Context, m *topology.Model, variant string, opts Options) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	switch variant {
	case VariantStatic:
		data, err = static.Render(ctx, m, opts.Styles, static.Options{Seed: opts.Seed, Title: opts.Title})
	case VariantForce:
		data, err = forcenet.RenderModel(m, opts.Styles, forcenet.Options{Title: opts.Title, Physics: opts.Physics})
	case VariantScatter:
		var buf bytes.Buffer
		err = scatter.RenderModel(&buf, m, opts.Styles, scatter.Options{Title: opts.Title})
		data = buf.Bytes()
	case VariantSphere:
		var buf bytes.Buffer
		err = sphere.RenderModel(&buf, m, opts.Styles, sphere.Options{Title: opts.Title})
		data = buf.Bytes()
	default:
		return nil, ValidateVariant(variant)
	}
	if err != nil {
		return nil, tverrors.Wrap(tverrors.ErrCodeRenderFailed, err, "render %s variant", variant)
	}
	return data, nil
}
