// Package forcenet renders the topology as a self-contained interactive
// HTML document driven by vis-network.
//
// The scene carries no precomputed positions: it ships the physics
// parameters (forceAtlas2Based solver, gravitational constant, spring
// settings, velocity bounds) and the consuming renderer runs its own
// simulation. Node tooltips show the full attribute set as structured text;
// edge labels are the two-line "type" / "speed" composite with "N/A"
// defaults. Node icons come from the style registry; when an icon is
// unreachable the document's brokenImage fallback degrades the node to its
// plain colored shape, so a missing resource never aborts the render.
package forcenet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/topoviz/topoviz/pkg/render"
	"github.com/topoviz/topoviz/pkg/render/styles"
	"github.com/topoviz/topoviz/pkg/topology"
)

// Physics holds the simulation parameters embedded in the document. The
// names mirror the vis-network option keys.
type Physics struct {
	GravitationalConstant float64 `json:"gravitationalConstant"`
	CentralGravity        float64 `json:"centralGravity"`
	SpringLength          float64 `json:"springLength"`
	SpringConstant        float64 `json:"springConstant"`
	MaxVelocity           float64 `json:"maxVelocity"`
	MinVelocity           float64 `json:"minVelocity"`
	Solver                string  `json:"solver"`
}

// DefaultPhysics returns the tuned forceAtlas2Based parameters.
func DefaultPhysics() Physics {
	return Physics{
		GravitationalConstant: -50,
		CentralGravity:        0.01,
		SpringLength:          200,
		SpringConstant:        0.08,
		MaxVelocity:           50,
		MinVelocity:           0.1,
		Solver:                "forceAtlas2Based",
	}
}

// Options configures the document.
type Options struct {
	Title   string
	Physics Physics
}

// Build constructs the force-directed scene. Positions stay zero; the
// consumer's physics simulation assigns them.
func Build(m *topology.Model, reg *styles.Registry) render.Scene {
	scene := render.Scene{Layout: "forceAtlas2Based"}
	for _, n := range m.Nodes() {
		scene.Nodes = append(scene.Nodes, render.NodeEntry(n, reg))
	}
	for _, e := range m.Edges() {
		scene.Edges = append(scene.Edges, render.EdgeEntry(e))
	}
	return scene
}

// node and edge are the vis-network wire shapes.
type node struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Title  string `json:"title"`
	Color  string `json:"color"`
	Shape  string `json:"shape"`
	Image  string `json:"image,omitempty"`
	Size   int    `json:"size"`
	Font   font   `json:"font"`
	Border int    `json:"borderWidth"`
}

type edge struct {
	From   string    `json:"from"`
	To     string    `json:"to"`
	Label  string    `json:"label"`
	Title  string    `json:"title"`
	Font   font      `json:"font"`
	Arrows *arrows   `json:"arrows,omitempty"`
	Color  edgeColor `json:"color"`
}

type font struct {
	Size int `json:"size"`
}

type arrows struct {
	To arrowhead `json:"to"`
}

type arrowhead struct {
	Enabled     bool    `json:"enabled"`
	ScaleFactor float64 `json:"scaleFactor"`
}

type edgeColor struct {
	Color     string `json:"color"`
	Highlight string `json:"highlight"`
}

// Render produces the self-contained HTML document for a scene. An empty
// scene yields a valid document with empty node and edge sets.
func Render(scene render.Scene, opts Options) ([]byte, error) {
	if opts.Physics == (Physics{}) {
		opts.Physics = DefaultPhysics()
	}

	nodes := make([]node, 0, len(scene.Nodes))
	for _, n := range scene.Nodes {
		shape := "dot"
		if n.Icon != "" {
			shape = "image"
		}
		nodes = append(nodes, node{
			ID:     n.ID,
			Label:  n.Label,
			Title:  n.Tooltip,
			Color:  n.Color,
			Shape:  shape,
			Image:  n.Icon,
			Size:   n.Size,
			Font:   font{Size: 12},
			Border: 2,
		})
	}

	edges := make([]edge, 0, len(scene.Edges))
	for _, e := range scene.Edges {
		we := edge{
			From:  e.From,
			To:    e.To,
			Label: e.Label,
			Title: e.Tooltip,
			Font:  font{Size: 8},
			Color: edgeColor{Color: e.Color, Highlight: "#1B4F72"},
		}
		if e.Directed {
			we.Arrows = &arrows{To: arrowhead{Enabled: true, ScaleFactor: 0.5}}
		}
		edges = append(edges, we)
	}

	nodesJSON, err := json.Marshal(nodes)
	if err != nil {
		return nil, fmt.Errorf("marshal nodes: %w", err)
	}
	edgesJSON, err := json.Marshal(edges)
	if err != nil {
		return nil, fmt.Errorf("marshal edges: %w", err)
	}
	physicsJSON, err := json.Marshal(opts.Physics)
	if err != nil {
		return nil, fmt.Errorf("marshal physics: %w", err)
	}

	var buf bytes.Buffer
	err = documentTmpl.Execute(&buf, documentData{
		Title:   opts.Title,
		Nodes:   template.JS(nodesJSON),
		Edges:   template.JS(edgesJSON),
		Physics: template.JS(physicsJSON),
	})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderModel builds the scene and renders it in one call.
func RenderModel(m *topology.Model, reg *styles.Registry, opts Options) ([]byte, error) {
	return Render(Build(m, reg), opts)
}
