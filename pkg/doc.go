// Package pkg provides the core libraries for topoviz network-topology
// visualization.
//
// # Overview
//
// topoviz pulls a labeled graph of network elements (base stations, routers,
// fiber nodes, user devices) from a graph store and renders it in several
// visual forms. The pkg directory is organized into five main areas:
//
//  1. [topology] - Domain model (raw records, model builder, record sources)
//  2. [source/neo4j] - Graph store boundary (seeding, pulling, inspection)
//  3. [render] - Scene types, style registry, and the four render variants
//  4. [pipeline] - Orchestration (pull → build → render)
//  5. [config], [errors], [buildinfo], [observability] - Ambient layers
//
// # Architecture
//
// The typical data flow through topoviz:
//
//	Graph Store (Neo4j)
//	         ↓
//	    [source/neo4j] package (pull raw records)
//	         ↓
//	    [topology] package (build the immutable model)
//	         ↓
//	    [render] packages (static, forcenet, scatter, sphere)
//	         ↓
//	    PNG/HTML artifacts
//
// # Quick Start
//
// Render the built-in demo topology without a store:
//
//	import (
//	    "context"
//	    "github.com/topoviz/topoviz/pkg/pipeline"
//	    "github.com/topoviz/topoviz/pkg/topology"
//	)
//
//	runner := pipeline.NewRunner(topology.StaticSource(topology.DemoRecords()))
//	result, _ := runner.Execute(context.Background(), pipeline.Options{})
//	png := result.Artifacts[pipeline.VariantStatic]
//
// # Main Packages
//
// [topology] - The graph model. Raw records (as pulled from a store) are
// assembled into an immutable Model with insertion-ordered nodes, an ordered
// edge list, and a per-type index. Attribute values are normalized to
// string, bool, or float64 at ingestion.
//
// [source/neo4j] - Neo4j-backed record source plus the seed and inspection
// queries the CLI exposes.
//
// [render] - Shared scene types (positions, tooltips, edge labels) and the
// style registry mapping node types to colors, shapes, sizes, and icons.
//
//   - [render/static]: DOT generation and graphviz PNG rasterization
//   - [render/forcenet]: self-contained vis-network HTML document
//   - [render/scatter]: 2D per-type scatter chart (go-echarts)
//   - [render/sphere]: 3D sphere-surface layout with edge segments (go-echarts)
//
// [pipeline] - The pull → build → render fan-out used by every entry point.
//
// [config] - TOML configuration with .env and environment overrides.
//
// [topology]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/topology
// [source/neo4j]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/source/neo4j
// [render]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/render
// [render/static]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/render/static
// [render/forcenet]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/render/forcenet
// [render/scatter]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/render/scatter
// [render/sphere]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/render/sphere
// [pipeline]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/config
// [errors]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/buildinfo
// [observability]: https://pkg.go.dev/github.com/topoviz/topoviz/pkg/observability
package pkg
