// Package sphere renders the topology as an interactive 3D scene.
//
// Node coordinates are computed by mapping node index to a point on a
// radius-2 sphere: azimuth and elevation are linearly spaced over [0, 2π)
// and [−π/2, π/2] in first-appearance order. Every edge is drawn as a 3D
// line segment between its resolved endpoint coordinates. Node colors come
// from a stable hash of the node type into a fixed palette.
package sphere

import (
	"hash/fnv"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/topoviz/topoviz/pkg/render"
	"github.com/topoviz/topoviz/pkg/render/styles"
	"github.com/topoviz/topoviz/pkg/topology"
)

// Radius of the sphere all node coordinates lie on.
const Radius = 2.0

// palette is a fixed Viridis-like color range; node types hash into it.
var palette = []string{
	"#440154", "#482878", "#3E4A89", "#31688E", "#26828E",
	"#1F9E89", "#35B779", "#6DCD59", "#B4DE2C", "#FDE725",
}

// Options configures the 3D document.
type Options struct {
	Title string
}

// Build constructs the 3D scene. Coordinates are assigned at build time so
// edge segments can reference resolved positions.
func Build(m *topology.Model, reg *styles.Registry) render.Scene {
	scene := render.Scene{}
	nodes := m.Nodes()
	for i, n := range nodes {
		entry := render.NodeEntry(n, reg)
		entry.Pos = Coordinate(i, len(nodes))
		entry.Color = TypeColor(n.Type)
		scene.Nodes = append(scene.Nodes, entry)
	}
	for _, e := range m.Edges() {
		scene.Edges = append(scene.Edges, render.EdgeEntry(e))
	}
	return scene
}

// Coordinate maps node index i of n total onto the radius-2 sphere. Azimuth
// is linearly spaced over [0, 2π) and elevation over [−π/2, π/2]; both hit
// their upper bound at i = n−1, matching linspace semantics.
func Coordinate(i, n int) render.Position {
	if n == 0 {
		return render.Position{}
	}
	step := 0.0
	if n > 1 {
		step = float64(i) / float64(n-1)
	}
	phi := 2 * math.Pi * step
	theta := -math.Pi/2 + math.Pi*step
	return render.Position{
		X: Radius * math.Cos(theta) * math.Cos(phi),
		Y: Radius * math.Cos(theta) * math.Sin(phi),
		Z: Radius * math.Sin(theta),
	}
}

// TypeColor hashes a node type into the fixed palette. The hash is stable
// across runs (FNV-1a), so a type always renders in the same color.
func TypeColor(t topology.NodeType) string {
	h := fnv.New32a()
	h.Write([]byte(t))
	return palette[int(h.Sum32())%len(palette)]
}

// Render writes the 3D document for a scene: one scatter3D series per node
// type plus one line3D series per edge, all sharing the cartesian3D grid.
func Render(w io.Writer, scene render.Scene, o Options) error {
	chart := charts.NewScatter3D()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			Width:     "100vw",
			Height:    "100vh",
		}),
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	for _, typ := range sceneTypes(scene) {
		chart.AddSeries(string(typ), nodeSeries(scene, typ),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: typeColorInScene(scene, typ)}),
		)
	}

	pos := positionIndex(scene)
	for _, e := range scene.Edges {
		from, okF := pos[e.From]
		to, okT := pos[e.To]
		if !okF || !okT {
			continue
		}
		chart.MultiSeries = append(chart.MultiSeries, charts.SingleSeries{
			Type:        "line3D",
			CoordSystem: "cartesian3D",
			Data: []any{
				[]float64{from.X, from.Y, from.Z},
				[]float64{to.X, to.Y, to.Z},
			},
			LineStyle: &opts.LineStyle{Color: e.Color, Width: 2},
		})
	}

	page := components.NewPage()
	page.AddCharts(chart)
	return page.Render(w)
}

// RenderModel builds the scene and renders it in one call.
func RenderModel(w io.Writer, m *topology.Model, reg *styles.Registry, o Options) error {
	return Render(w, Build(m, reg), o)
}

func sceneTypes(scene render.Scene) []topology.NodeType {
	var types []topology.NodeType
	seen := make(map[topology.NodeType]bool)
	for _, n := range scene.Nodes {
		if !seen[n.Type] {
			seen[n.Type] = true
			types = append(types, n.Type)
		}
	}
	return types
}

func nodeSeries(scene render.Scene, typ topology.NodeType) []opts.Chart3DData {
	var data []opts.Chart3DData
	for _, n := range scene.Nodes {
		if n.Type != typ {
			continue
		}
		data = append(data, opts.Chart3DData{
			Name:  n.ID,
			Value: []any{n.Pos.X, n.Pos.Y, n.Pos.Z},
		})
	}
	return data
}

func typeColorInScene(scene render.Scene, typ topology.NodeType) string {
	for _, n := range scene.Nodes {
		if n.Type == typ {
			return n.Color
		}
	}
	return ""
}

func positionIndex(scene render.Scene) map[string]render.Position {
	pos := make(map[string]render.Position, len(scene.Nodes))
	for _, n := range scene.Nodes {
		pos[n.ID] = n.Pos
	}
	return pos
}
