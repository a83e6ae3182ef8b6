// Package scatter renders the topology as an interactive scatter chart.
//
// Nodes are laid out on a single axis grouped by type: x is the node's index
// within its type group, y is constant, and each type becomes one colored
// series. Edges are deliberately omitted as line geometry - a known
// limitation of this variant, not a bug - but the scene still carries the
// full edge list so consumers and tests see the complete model.
package scatter

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/topoviz/topoviz/pkg/render"
	"github.com/topoviz/topoviz/pkg/render/styles"
	"github.com/topoviz/topoviz/pkg/topology"
)

// Options configures the scatter document.
type Options struct {
	Title string
}

// Build constructs the scatter scene. Positions are assigned here (they do
// not depend on a downstream layout engine): x = index within the node's
// type group, y = 0.
func Build(m *topology.Model, reg *styles.Registry) render.Scene {
	scene := render.Scene{}
	groupIndex := make(map[topology.NodeType]int)
	for _, n := range m.Nodes() {
		entry := render.NodeEntry(n, reg)
		entry.Pos = render.Position{X: float64(groupIndex[n.Type]), Y: 0}
		entry.Label = fmt.Sprintf("%s\n%s", n.Type, n.ID)
		groupIndex[n.Type]++
		scene.Nodes = append(scene.Nodes, entry)
	}
	for _, e := range m.Edges() {
		scene.Edges = append(scene.Edges, render.EdgeEntry(e))
	}
	return scene
}

// Render writes the scatter document for a scene. One series per node type,
// colored from the scene entries; an empty scene produces a valid chart with
// no series.
func Render(w io.Writer, scene render.Scene, opts Options) error {
	chart := newChart(opts)

	for _, typ := range sceneTypes(scene) {
		chart.AddSeries(string(typ), seriesData(scene, typ),
			charts.WithItemStyleOpts(typeStyle(scene, typ)),
		)
	}

	page := components.NewPage()
	page.AddCharts(chart)
	return page.Render(w)
}

// RenderModel builds the scene and renders it in one call.
func RenderModel(w io.Writer, m *topology.Model, reg *styles.Registry, o Options) error {
	return Render(w, Build(m, reg), o)
}

func newChart(o Options) *charts.Scatter {
	chart := charts.NewScatter()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			Width:     "100vw",
			Height:    "100vh",
		}),
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: tooltipFormatter,
		}),
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(false), Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(false), Type: "value"}),
	)
	return chart
}

// sceneTypes returns the node types in first-appearance order.
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

// tooltipFormatter renders the hover card: series name, node ID, and the
// attribute JSON carried as the point's third value element.
var tooltipFormatter = opts.FuncOpts(
	"function (params) { return params.seriesName + '<br/>' + params.name + '<br/>' + String(params.value[2]).replace(/\\n/g, '<br/>'); }",
)

func seriesData(scene render.Scene, typ topology.NodeType) []opts.ScatterData {
	var data []opts.ScatterData
	for _, n := range scene.Nodes {
		if n.Type != typ {
			continue
		}
		data = append(data, opts.ScatterData{
			Name:       n.ID,
			Value:      []any{n.Pos.X, n.Pos.Y, n.Tooltip},
			SymbolSize: n.Size,
		})
	}
	return data
}

func typeStyle(scene render.Scene, typ topology.NodeType) opts.ItemStyle {
	for _, n := range scene.Nodes {
		if n.Type == typ {
			return opts.ItemStyle{Color: n.Color}
		}
	}
	return opts.ItemStyle{}
}
