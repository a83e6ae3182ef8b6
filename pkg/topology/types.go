package topology

import (
	"fmt"
	"slices"
	"strconv"
)

// NodeType classifies a topology node. The set is closed: records carrying
// any other label are mapped to TypeUnknown rather than rejected.
type NodeType string

// Known node types for the network topology domain.
const (
	TypeBaseStation NodeType = "BaseStation"
	TypeRouter      NodeType = "Router"
	TypeFiberNode   NodeType = "FiberNode"
	TypeUserDevice  NodeType = "UserDevice"
	TypeUnknown     NodeType = "Unknown"
)

// KnownTypes lists the closed set of recognized node types, excluding
// TypeUnknown, in a stable order.
var KnownTypes = []NodeType{TypeBaseStation, TypeRouter, TypeFiberNode, TypeUserDevice}

// ParseNodeType maps a raw label to a NodeType. Labels outside the closed
// set resolve to TypeUnknown - never an error, per the style fallback rules.
func ParseNodeType(label string) NodeType {
	t := NodeType(label)
	if slices.Contains(KnownTypes, t) {
		return t
	}
	return TypeUnknown
}

// Attrs is an attribute mapping with insertion-ordered keys. Values are
// restricted to the scalar kinds string, float64, and bool; use Set or
// NormalizeAttrs to coerce arbitrary property-bag values at ingestion time.
type Attrs struct {
	keys   []string
	values map[string]any
}

// NewAttrs returns an empty attribute mapping.
func NewAttrs() *Attrs {
	return &Attrs{values: make(map[string]any)}
}

// Set stores the normalized form of v under key, appending key to the
// iteration order on first appearance.
func (a *Attrs) Set(key string, v any) {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = normalizeScalar(v)
}

// Get returns the value for key and whether it is present.
func (a *Attrs) Get(key string) (any, bool) {
	v, ok := a.values[key]
	return v, ok
}

// String returns the value for key formatted as a string, or fallback when
// the key is absent. Used for display fields like edge labels.
func (a *Attrs) String(key, fallback string) string {
	v, ok := a.values[key]
	if !ok {
		return fallback
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// Len returns the number of stored attributes.
func (a *Attrs) Len() int { return len(a.keys) }

// Keys returns the attribute keys in insertion order.
// The returned slice is a copy and safe to modify.
func (a *Attrs) Keys() []string { return slices.Clone(a.keys) }

// Map returns the attributes as a plain map. The map is a copy; mutating it
// does not affect the Attrs.
func (a *Attrs) Map() map[string]any {
	m := make(map[string]any, len(a.values))
	for k, v := range a.values {
		m[k] = v
	}
	return m
}

// NormalizeAttrs converts an arbitrary property bag into an Attrs value with
// keys sorted for determinism (raw bags are unordered maps) and values
// coerced to the scalar kinds.
func NormalizeAttrs(props map[string]any) *Attrs {
	a := NewAttrs()
	for _, k := range slices.Sorted(mapKeys(props)) {
		a.Set(k, props[k])
	}
	return a
}

// normalizeScalar widens numeric kinds to float64, keeps strings and bools,
// and formats anything else with %v. Neo4j property bags are open-ended, so
// unsupported kinds degrade to strings instead of being rejected.
func normalizeScalar(v any) any {
	switch n := v.(type) {
	case nil:
		return ""
	case string, bool, float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		return fmt.Sprintf("%v", n)
	}
}

func mapKeys(m map[string]any) func(yield func(string) bool) {
	return func(yield func(string) bool) {
		for k := range m {
			if !yield(k) {
				return
			}
		}
	}
}

// Node is a typed, attributed vertex in the topology. ID is globally unique
// and Type is immutable once the node is registered.
type Node struct {
	ID    string
	Type  NodeType
	Attrs *Attrs
}

// Edge is a directed, attributed connection between two registered nodes.
// RelType carries the relationship type from the source record; Attrs carries
// the relationship property set ("type" and "speed" when present).
type Edge struct {
	From    string
	To      string
	RelType string
	Attrs   *Attrs
}
