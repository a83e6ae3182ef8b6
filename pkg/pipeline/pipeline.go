// Package pipeline provides the core visualization pipeline for topoviz.
//
// This package implements the complete pull → build → render pipeline shared
// by every entry point. Centralizing it keeps CLI behavior consistent with
// any embedding caller.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Pull: Fetch raw node/relationship records from a RecordSource
//  2. Build: Assemble the immutable topology model from the records
//  3. Render: Fan out to the selected render variants
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(source)
//	opts := pipeline.Options{
//	    Variants: []string{pipeline.VariantStatic, pipeline.VariantForce},
//	    Seed:     42,
//	    Logger:   logger,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts[pipeline.VariantStatic]
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	tverrors "github.com/topoviz/topoviz/pkg/errors"
	"github.com/topoviz/topoviz/pkg/render/forcenet"
	"github.com/topoviz/topoviz/pkg/render/styles"
)

// Variant names for the four render adapters.
const (
	VariantStatic  = "static"
	VariantForce   = "force"
	VariantScatter = "scatter"
	VariantSphere  = "sphere"
)

// AllVariants lists every variant in render order.
var AllVariants = []string{VariantStatic, VariantForce, VariantScatter, VariantSphere}

// ValidVariants is the set of supported render variants.
var ValidVariants = map[string]bool{
	VariantStatic:  true,
	VariantForce:   true,
	VariantScatter: true,
	VariantSphere:  true,
}

// DefaultSeed is the default layout seed for reproducibility.
const DefaultSeed = uint64(42)

// DefaultTitle is the default artifact title.
const DefaultTitle = "Network Topology"

// Extension returns the file extension for a variant's artifact.
func Extension(variant string) string {
	if variant == VariantStatic {
		return "png"
	}
	return "html"
}

// ValidateVariant checks that a variant name is valid.
func ValidateVariant(variant string) error {
	if !ValidVariants[variant] {
		return tverrors.New(tverrors.ErrCodeInvalidVariant,
			"invalid variant: %q (must be one of: static, force, scatter, sphere)", variant)
	}
	return nil
}

// ValidateVariants checks that all variant names are valid.
func ValidateVariants(variants []string) error {
	for _, v := range variants {
		if err := ValidateVariant(v); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for one pipeline run.
type Options struct {
	// Variants selects the render adapters to run. Empty means all.
	Variants []string

	// Seed initializes deterministic layouts (static variant).
	Seed uint64

	// Title is drawn on each artifact.
	Title string

	// Physics tunes the force-directed variant's simulation.
	Physics forcenet.Physics

	// Styles maps node types to visual specs. Nil means the builtin registry.
	Styles *styles.Registry

	// Logger for stage progress. Nil means discard.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks variant names and applies defaults.
// Idempotent: calling it multiple times has the same effect as once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Variants) == 0 {
		o.Variants = AllVariants
	}
	if err := ValidateVariants(o.Variants); err != nil {
		return err
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Physics.Solver == "" {
		o.Physics = forcenet.DefaultPhysics()
	}
	if o.Styles == nil {
		o.Styles = styles.Builtin()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
