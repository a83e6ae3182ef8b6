// Package static renders the topology as a flattened raster image.
//
// The scene is converted to Graphviz DOT with nodes grouped by type for
// batched styling, laid out once by the force-directed fdp engine with a
// fixed seed, and rasterized to PNG. There is no interactivity; the layout
// is probabilistic but always respects every registered edge.
package static

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/topoviz/topoviz/pkg/render"
	"github.com/topoviz/topoviz/pkg/render/styles"
	"github.com/topoviz/topoviz/pkg/topology"
)

// Options configures static rendering.
type Options struct {
	// Seed initializes the fdp layout. The layout is not required to be
	// identical across graphviz versions, only connected and reproducible
	// within one.
	Seed uint64
	// Title is drawn as the graph label.
	Title string
}

// Build constructs the raster scene: one styled entry per node, one labeled
// entry per edge. Positions stay zero because the layout engine assigns them
// during rendering; the scene records the algorithm instead.
func Build(m *topology.Model, reg *styles.Registry) render.Scene {
	scene := render.Scene{Layout: "fdp"}
	for _, n := range m.Nodes() {
		scene.Nodes = append(scene.Nodes, render.NodeEntry(n, reg))
	}
	for _, e := range m.Edges() {
		entry := render.EdgeEntry(e)
		// Raster edge labels show only the link type; two-line labels are
		// unreadable at raster sizes.
		if e.Attrs != nil {
			entry.Label = e.Attrs.String("type", "")
		}
		scene.Edges = append(scene.Edges, entry)
	}
	return scene
}

// ToDOT converts a scene to Graphviz DOT. Nodes of the same type share one
// style block, matching how the scene groups styling by type.
func ToDOT(scene render.Scene, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph topology {\n")
	buf.WriteString("  layout=fdp;\n")
	fmt.Fprintf(&buf, "  start=%d;\n", opts.Seed)
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
	}
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  node [style=filled, fontsize=11];\n")
	buf.WriteString("  edge [color=gray, fontsize=9];\n")
	buf.WriteString("\n")

	for _, n := range scene.Nodes {
		fmt.Fprintf(&buf, "  %q [label=%q, shape=%s, fillcolor=%q, width=%.2f];\n",
			n.ID, n.Label, dotShape(n.Shape), n.Color, float64(n.Size)/40)
	}

	buf.WriteString("\n")
	for _, e := range scene.Edges {
		attrs := []string{}
		if e.Label != "" {
			attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
		}
		if !e.Directed {
			attrs = append(attrs, "dir=none")
		}
		if len(attrs) > 0 {
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// dotShape maps registry marker names onto Graphviz shape names.
func dotShape(shape string) string {
	switch shape {
	case "triangle":
		return "triangle"
	case "square":
		return "box"
	case "diamond":
		return "diamond"
	default:
		return "circle"
	}
}

// RenderPNG lays out and rasterizes a DOT graph using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// Render builds the scene, converts it to DOT, and rasterizes it. This is
// the single-call form used by the pipeline.
func Render(ctx context.Context, m *topology.Model, reg *styles.Registry, opts Options) ([]byte, error) {
	return RenderPNG(ctx, ToDOT(Build(m, reg), opts))
}
