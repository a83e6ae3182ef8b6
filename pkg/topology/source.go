package topology

import (
	"context"
	"slices"
)

// RecordSource abstracts the external graph store. Implementations yield all
// records for one pull, then complete; there is no partial or streaming
// consumption contract. The pull is the pipeline's single blocking call, so
// it takes a context for caller-imposed timeouts.
type RecordSource interface {
	Records(ctx context.Context) ([]RawRecord, error)
}

// StaticSource is an in-memory RecordSource backed by a fixed record slice.
// It is used in tests and for rendering without a live graph database.
type StaticSource []RawRecord

// Records returns a copy of the backing records.
func (s StaticSource) Records(_ context.Context) ([]RawRecord, error) {
	return slices.Clone(s), nil
}

// DemoRecords returns the record stream a source pull would yield for the
// demo topology: 10 nodes (3 base stations, 2 routers, 2 fiber nodes, 3 user
// devices) and 9 directed CONNECTED_TO edges. Nodes without outgoing edges
// appear as node-only records, mirroring the optional-match behavior of the
// store query.
func DemoRecords() []RawRecord {
	bs1 := &RawNode{ID: "BS_1001", Labels: []string{"BaseStation"}, Props: map[string]any{"id": "BS_1001", "location": "Sydney", "capacity": "5G", "status": "Active"}}
	bs2 := &RawNode{ID: "BS_1002", Labels: []string{"BaseStation"}, Props: map[string]any{"id": "BS_1002", "location": "Melbourne", "capacity": "4G", "status": "Active"}}
	bs3 := &RawNode{ID: "BS_1003", Labels: []string{"BaseStation"}, Props: map[string]any{"id": "BS_1003", "location": "Brisbane", "capacity": "5G", "status": "Inactive"}}
	r1 := &RawNode{ID: "R_2001", Labels: []string{"Router"}, Props: map[string]any{"id": "R_2001", "model": "Cisco 9000", "bandwidth": "10Gbps"}}
	r2 := &RawNode{ID: "R_2002", Labels: []string{"Router"}, Props: map[string]any{"id": "R_2002", "model": "Juniper MX100", "bandwidth": "5Gbps"}}
	f1 := &RawNode{ID: "FN_3001", Labels: []string{"FiberNode"}, Props: map[string]any{"id": "FN_3001", "provider": "Telstra Fiber", "latency": "5ms"}}
	f2 := &RawNode{ID: "FN_3002", Labels: []string{"FiberNode"}, Props: map[string]any{"id": "FN_3002", "provider": "Telstra Fiber", "latency": "7ms"}}
	u1 := &RawNode{ID: "U_4001", Labels: []string{"UserDevice"}, Props: map[string]any{"id": "U_4001", "type": "5G Mobile", "owner": "Alice"}}
	u2 := &RawNode{ID: "U_4002", Labels: []string{"UserDevice"}, Props: map[string]any{"id": "U_4002", "type": "4G Mobile", "owner": "Bob"}}
	u3 := &RawNode{ID: "U_4003", Labels: []string{"UserDevice"}, Props: map[string]any{"id": "U_4003", "type": "Home Broadband", "owner": "Charlie"}}

	conn := func(from, to *RawNode, linkType, speed string) RawRecord {
		return RawRecord{
			Node:     from,
			Rel:      &RawRel{},
			Target:   to,
			RelType:  "CONNECTED_TO",
			RelProps: map[string]any{"type": linkType, "speed": speed},
		}
	}

	return []RawRecord{
		conn(bs1, r1, "Fiber", "10Gbps"),
		conn(bs2, r2, "Fiber", "5Gbps"),
		conn(bs3, r1, "Fiber", "10Gbps"),
		conn(r1, f1, "Backbone", "100Gbps"),
		conn(r2, f2, "Backbone", "100Gbps"),
		conn(f1, f2, "Backbone", "100Gbps"),
		conn(u1, bs1, "5G", "1Gbps"),
		conn(u2, bs2, "4G", "100Mbps"),
		conn(u3, bs1, "Fiber", "1Gbps"),
		// Fiber node FN_3002 has no outgoing edges: node-only record.
		{Node: f2},
	}
}
