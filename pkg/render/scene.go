// Package render defines the scene types shared by the visualization
// backends.
//
// Each backend lives in a subpackage and follows the same two-step contract:
// a pure Build step that maps an immutable topology.Model plus a style
// registry into a [Scene], and a Write step that turns the scene into the
// backend's output artifact. Keeping scene construction pure makes the
// per-node and per-edge entries directly testable without producing files.
//
// Backends:
//
//   - static: force-directed raster image via Graphviz
//   - forcenet: self-contained vis-network HTML with physics parameters
//   - scatter: per-type scatter chart HTML
//   - sphere: 3D spherical layout HTML
//
// An empty model yields a valid empty scene from every backend; renderers
// never fail on zero nodes.
package render

import (
	"encoding/json"

	"github.com/topoviz/topoviz/pkg/render/styles"
	"github.com/topoviz/topoviz/pkg/topology"
)

// Position is a point in the backend's coordinate space. Backends that
// delegate layout to the consumer (forcenet) leave positions zero and set
// the scene's layout algorithm instead.
type Position struct {
	X, Y, Z float64
}

// SceneNode is the backend-agnostic description of one rendered node.
type SceneNode struct {
	ID      string
	Type    topology.NodeType
	Pos     Position
	Color   string
	Shape   string
	Size    int
	Icon    string
	Label   string
	Tooltip string
}

// SceneEdge is the backend-agnostic description of one rendered edge.
type SceneEdge struct {
	From     string
	To       string
	Color    string
	Label    string
	Tooltip  string
	Directed bool
}

// Scene carries everything a backend writer needs: one entry per node and
// one per edge, plus the name of the layout algorithm for backends that run
// their own (empty when positions are precomputed).
type Scene struct {
	Nodes  []SceneNode
	Edges  []SceneEdge
	Layout string
}

// Tooltip serializes a node or relationship attribute set as indented JSON,
// the structured hover text every interactive backend shows. Returns "{}"
// for an empty attribute set.
func Tooltip(attrs *topology.Attrs) string {
	if attrs == nil || attrs.Len() == 0 {
		return "{}"
	}
	b, err := json.MarshalIndent(attrs.Map(), "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

// EdgeLabel composes the two-line edge label from the relationship's "type"
// and "speed" attributes, each defaulting to "N/A" when absent.
func EdgeLabel(attrs *topology.Attrs) string {
	if attrs == nil {
		return "N/A\nN/A"
	}
	return attrs.String("type", "N/A") + "\n" + attrs.String("speed", "N/A")
}

// NodeEntry builds the common scene entry for a node using the registry
// spec for its type. Backends adjust positions afterwards.
func NodeEntry(n *topology.Node, reg *styles.Registry) SceneNode {
	spec := reg.Lookup(n.Type)
	return SceneNode{
		ID:      n.ID,
		Type:    n.Type,
		Color:   spec.Color,
		Shape:   spec.Shape,
		Size:    spec.Size,
		Icon:    spec.Icon,
		Label:   n.ID,
		Tooltip: Tooltip(n.Attrs),
	}
}

// EdgeEntry builds the common scene entry for an edge.
func EdgeEntry(e topology.Edge) SceneEdge {
	return SceneEdge{
		From:     e.From,
		To:       e.To,
		Color:    "#848484",
		Label:    EdgeLabel(e.Attrs),
		Tooltip:  Tooltip(e.Attrs),
		Directed: true,
	}
}
