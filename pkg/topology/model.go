package topology

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Model.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Model.AddNode] when a node with the
	// same ID already exists. Node IDs are unique across all types.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Model.AddEdge] when the From node
	// has not been registered.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Model.AddEdge] when the To node
	// has not been registered.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Model is the deduplicated in-memory representation of one topology pull.
// Nodes are keyed by ID and kept in first-appearance order; edges are kept in
// insertion order, with parallel edges and self-loops preserved as distinct
// entries.
//
// A Model is built once per visualization run, read-only afterwards, and
// discarded when all renderers finish. It is safe for concurrent reads but
// not concurrent writes.
type Model struct {
	nodes  map[string]*Node
	order  []string          // node IDs in first-appearance order
	edges  []Edge
	byType map[NodeType][]string // type index, IDs in registration order
}

// NewModel returns an empty topology model.
func NewModel() *Model {
	return &Model{
		nodes:  make(map[string]*Node),
		byType: make(map[NodeType][]string),
	}
}

// AddNode registers a node. Returns ErrInvalidNodeID for an empty ID or
// ErrDuplicateNodeID if the ID is already registered. The node's Attrs field
// is initialized to an empty mapping if nil.
func (m *Model) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := m.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Attrs == nil {
		n.Attrs = NewAttrs()
	}
	node := &n
	m.nodes[node.ID] = node
	m.order = append(m.order, node.ID)
	m.byType[node.Type] = append(m.byType[node.Type], node.ID)
	return nil
}

// AddEdge appends a directed edge between two registered nodes. Returns
// ErrUnknownSourceNode or ErrUnknownTargetNode when an endpoint is missing
// (referential integrity). Multiple edges between the same pair are kept as
// distinct entries; self-loops are allowed.
func (m *Model) AddEdge(e Edge) error {
	if _, ok := m.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := m.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if e.Attrs == nil {
		e.Attrs = NewAttrs()
	}
	m.edges = append(m.edges, e)
	return nil
}

// Node returns the node with the given ID and true, or nil and false.
func (m *Model) Node(id string) (*Node, bool) {
	n, ok := m.nodes[id]
	return n, ok
}

// Nodes returns all nodes in first-appearance order. The slice is freshly
// allocated but the pointers refer to the registered nodes.
func (m *Model) Nodes() []*Node {
	nodes := make([]*Node, 0, len(m.order))
	for _, id := range m.order {
		nodes = append(nodes, m.nodes[id])
	}
	return nodes
}

// Edges returns a copy of the edge list in insertion order.
func (m *Model) Edges() []Edge { return slices.Clone(m.edges) }

// NodeCount returns the number of registered nodes.
func (m *Model) NodeCount() int { return len(m.nodes) }

// EdgeCount returns the number of edges.
func (m *Model) EdgeCount() int { return len(m.edges) }

// Types returns the node types present in the model, each appearing once,
// ordered by the first registration of a node of that type.
func (m *Model) Types() []NodeType {
	var types []NodeType
	seen := make(map[NodeType]bool)
	for _, id := range m.order {
		t := m.nodes[id].Type
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	return types
}

// NodesOfType returns the IDs of all nodes of the given type in registration
// order. The returned slice should be treated as read-only.
func (m *Model) NodesOfType(t NodeType) []string { return m.byType[t] }

// Index returns a map from node ID to its position in first-appearance
// order. Renderers use this for stable coordinate assignment.
func (m *Model) Index() map[string]int {
	idx := make(map[string]int, len(m.order))
	for i, id := range m.order {
		idx[id] = i
	}
	return idx
}
