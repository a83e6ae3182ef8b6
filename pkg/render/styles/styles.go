// Package styles maps node types to display attributes.
//
// A [Registry] is an explicitly constructed, read-only lookup table from
// node type to [Spec]. Unknown types resolve to the registry's default spec,
// never an error, so renderers stay total over arbitrary models. Build the
// process-wide table once with [Builtin], or construct a custom Registry in
// tests for isolated, deterministic styling.
package styles

import "github.com/topoviz/topoviz/pkg/topology"

// Spec holds the per-type visual attributes a renderer may consult. Not
// every backend uses every field: the raster backend ignores Icon, the
// scatter backend ignores Shape.
type Spec struct {
	Color string // fill color, hex notation
	Shape string // marker name: "triangle", "square", "circle", "diamond"
	Size  int    // base marker size in display units
	Icon  string // icon URL for backends that support image markers
}

// Registry is the immutable lookup from node type to Spec.
type Registry struct {
	specs map[topology.NodeType]Spec
	def   Spec
}

// New builds a Registry from the given spec table and default. The table is
// copied; the Registry never observes later mutation of the argument.
func New(specs map[topology.NodeType]Spec, def Spec) *Registry {
	copied := make(map[topology.NodeType]Spec, len(specs))
	for t, s := range specs {
		copied[t] = s
	}
	return &Registry{specs: copied, def: def}
}

// Lookup returns the Spec for the given node type, or the default spec when
// the type is not registered.
func (r *Registry) Lookup(t topology.NodeType) Spec {
	if s, ok := r.specs[t]; ok {
		return s
	}
	return r.def
}

// Default returns the fallback spec used for unregistered types.
func (r *Registry) Default() Spec { return r.def }

const iconBase = "https://raw.githubusercontent.com/FortAwesome/Font-Awesome/master/svgs/solid/"

// Builtin returns the standard registry for the network-topology node types.
// The default spec (gray circle, minimum size) covers everything else.
func Builtin() *Registry {
	return New(map[topology.NodeType]Spec{
		topology.TypeBaseStation: {Color: "#FF9999", Shape: "triangle", Size: 30, Icon: iconBase + "broadcast-tower.svg"},
		topology.TypeRouter:      {Color: "#99FF99", Shape: "square", Size: 30, Icon: iconBase + "router.svg"},
		topology.TypeFiberNode:   {Color: "#9999FF", Shape: "circle", Size: 30, Icon: iconBase + "network-wired.svg"},
		topology.TypeUserDevice:  {Color: "#FFFF99", Shape: "diamond", Size: 30, Icon: iconBase + "mobile-alt.svg"},
	}, Spec{Color: "#CCCCCC", Shape: "circle", Size: 25, Icon: iconBase + "question.svg"})
}
