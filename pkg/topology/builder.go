package topology

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is returned by [Build] when a record's relationship
// references an endpoint that cannot be resolved to a registered node. This
// indicates an inconsistency between the node and relationship passes of the
// source query, so the build aborts rather than silently dropping the edge.
var ErrMalformedRecord = errors.New("malformed record")

// RawNode is a node as it appears on the source wire: an identity, the label
// set, and an open property bag.
//
// Only the first label is authoritative for the node type; additional labels
// are ignored. A node with no labels is typed TypeUnknown.
type RawNode struct {
	ID     string
	Labels []string
	Props  map[string]any
}

// RawRecord is one row of the source's node/relationship pull. Any of Node,
// Rel, and Target may be nil: the source query uses an optional match, so a
// node without outgoing edges yields a record with only Node set.
type RawRecord struct {
	Node     *RawNode
	Rel      *RawRel
	Target   *RawNode
	RelType  string
	RelProps map[string]any
}

// RawRel marks a relationship as present on a record. The relationship's
// type and properties travel in the record's RelType and RelProps fields,
// mirroring the source query's separate return columns.
type RawRel struct{}

// Build consumes raw edge-records and produces a deduplicated Model.
//
// For each record, an unseen source node is registered (ID, type from the
// first label, normalized property set), then an unseen target node, then -
// if a relationship is present and both endpoints are known - an edge with
// the relationship type and property set. Node registration order is
// first-appearance order and edges keep input order, so building twice from
// the same input yields identical models.
//
// A relationship whose endpoints do not resolve to registered nodes fails
// the whole build with an error wrapping [ErrMalformedRecord].
func Build(records []RawRecord) (*Model, error) {
	m := NewModel()

	for i, rec := range records {
		if err := register(m, rec.Node); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if err := register(m, rec.Target); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		if rec.Rel == nil {
			continue
		}
		if rec.Node == nil || rec.Target == nil {
			return nil, fmt.Errorf("record %d: relationship without resolved endpoints: %w", i, ErrMalformedRecord)
		}
		edge := Edge{
			From:    rec.Node.ID,
			To:      rec.Target.ID,
			RelType: rec.RelType,
			Attrs:   NormalizeAttrs(rec.RelProps),
		}
		if err := m.AddEdge(edge); err != nil {
			return nil, fmt.Errorf("record %d: edge %s→%s: %w: %w", i, edge.From, edge.To, ErrMalformedRecord, err)
		}
	}

	return m, nil
}

// register adds the raw node to the model unless it is nil or already known.
func register(m *Model, rn *RawNode) error {
	if rn == nil {
		return nil
	}
	if _, ok := m.Node(rn.ID); ok {
		return nil
	}
	node := Node{
		ID:    rn.ID,
		Type:  typeOf(rn),
		Attrs: NormalizeAttrs(rn.Props),
	}
	return m.AddNode(node)
}

// typeOf takes the first label as the node type. Multi-label nodes are a
// latent limitation of the source data; labels beyond the first are dropped.
func typeOf(rn *RawNode) NodeType {
	if len(rn.Labels) == 0 {
		return TypeUnknown
	}
	return ParseNodeType(rn.Labels[0])
}
