// Package neo4j implements a topology.RecordSource backed by a Neo4j
// database, plus the seed and inspection queries the CLI exposes.
package neo4j

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/topoviz/topoviz/pkg/config"
	tverrors "github.com/topoviz/topoviz/pkg/errors"
	"github.com/topoviz/topoviz/pkg/topology"
)

// pullQuery returns every node once, joined with each of its outgoing
// relationships. Nodes without outgoing relationships come back with nil
// relationship columns, which the model builder treats as node-only records.
const pullQuery = `
MATCH (n)
OPTIONAL MATCH (n)-[r]->(m)
RETURN n, r, m, type(r) as relType, properties(r) as relProps
`

const connectionsQuery = `
MATCH (n)-[r:CONNECTED_TO]->(m)
RETURN n.id AS source, labels(n)[0] AS source_type,
       m.id AS target, labels(m)[0] AS target_type
`

const clearQuery = `MATCH (n) DETACH DELETE n`

const seedNodesQuery = `
CREATE (bs1:BaseStation {id: "BS_1001", location: "Sydney", capacity: "5G", status: "Active"}),
       (bs2:BaseStation {id: "BS_1002", location: "Melbourne", capacity: "4G", status: "Active"}),
       (bs3:BaseStation {id: "BS_1003", location: "Brisbane", capacity: "5G", status: "Inactive"}),
       (r1:Router {id: "R_2001", model: "Cisco 9000", bandwidth: "10Gbps"}),
       (r2:Router {id: "R_2002", model: "Juniper MX100", bandwidth: "5Gbps"}),
       (f1:FiberNode {id: "FN_3001", provider: "Telstra Fiber", latency: "5ms"}),
       (f2:FiberNode {id: "FN_3002", provider: "Telstra Fiber", latency: "7ms"}),
       (u1:UserDevice {id: "U_4001", type: "5G Mobile", owner: "Alice"}),
       (u2:UserDevice {id: "U_4002", type: "4G Mobile", owner: "Bob"}),
       (u3:UserDevice {id: "U_4003", type: "Home Broadband", owner: "Charlie"})
`

// seedRelQuery links two seeded nodes by id with a typed CONNECTED_TO edge.
const seedRelQuery = `
MATCH (a {id: $from})
MATCH (b {id: $to})
CREATE (a)-[:CONNECTED_TO {type: $type, speed: $speed}]->(b)
`

// seedLinks are the demo topology's nine directed connections.
var seedLinks = []struct {
	From, To, Type, Speed string
}{
	{"BS_1001", "R_2001", "Fiber", "10Gbps"},
	{"BS_1002", "R_2002", "Fiber", "5Gbps"},
	{"BS_1003", "R_2001", "Fiber", "10Gbps"},
	{"R_2001", "FN_3001", "Backbone", "100Gbps"},
	{"R_2002", "FN_3002", "Backbone", "100Gbps"},
	{"FN_3001", "FN_3002", "Backbone", "100Gbps"},
	{"U_4001", "BS_1001", "5G", "1Gbps"},
	{"U_4002", "BS_1002", "4G", "100Mbps"},
	{"U_4003", "BS_1001", "Fiber", "1Gbps"},
}

// Store wraps a Neo4j driver as a topology.RecordSource.
type Store struct {
	driver neo4j.DriverWithContext
	uri    string
}

// Connect opens a driver against the configured store and verifies
// connectivity before returning.
func Connect(ctx context.Context, src config.Source) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(src.URI, neo4j.BasicAuth(src.Username, src.Password, ""))
	if err != nil {
		return nil, tverrors.Wrap(tverrors.ErrCodeSourceUnavailable, err, "create driver for %s", src.URI)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, tverrors.Wrap(tverrors.ErrCodeSourceUnavailable, err, "verify connectivity to %s", src.URI)
	}
	return &Store{driver: driver, uri: src.URI}, nil
}

// URI returns the connected store's URI for logging.
func (s *Store) URI() string { return s.uri }

// Close releases the underlying driver.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// SeedTopology writes the demo topology into the store. With reset set, all
// existing nodes and relationships are removed first.
func (s *Store) SeedTopology(ctx context.Context, reset bool) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	if reset {
		if _, err := session.Run(ctx, clearQuery, nil); err != nil {
			return tverrors.Wrap(tverrors.ErrCodeSeedFailed, err, "clear existing topology")
		}
	}

	if _, err := session.Run(ctx, seedNodesQuery, nil); err != nil {
		return tverrors.Wrap(tverrors.ErrCodeSeedFailed, err, "create topology nodes")
	}

	for _, link := range seedLinks {
		params := map[string]any{
			"from":  link.From,
			"to":    link.To,
			"type":  link.Type,
			"speed": link.Speed,
		}
		if _, err := session.Run(ctx, seedRelQuery, params); err != nil {
			return tverrors.Wrap(tverrors.ErrCodeSeedFailed, err, "create connection %s -> %s", link.From, link.To)
		}
	}

	return nil
}

// Records pulls every node and outgoing relationship from the store and
// decodes them into raw builder records. Implements topology.RecordSource.
func (s *Store) Records(ctx context.Context) ([]topology.RawRecord, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, pullQuery, nil)
	if err != nil {
		return nil, tverrors.Wrap(tverrors.ErrCodeSourceUnavailable, err, "pull topology records")
	}

	var records []topology.RawRecord
	for result.Next(ctx) {
		rec := result.Record()
		raw := topology.RawRecord{
			Node:   decodeNode(rec, "n"),
			Target: decodeNode(rec, "m"),
		}
		if v, ok := rec.Get("r"); ok && v != nil {
			raw.Rel = &topology.RawRel{}
		}
		if v, ok := rec.Get("relType"); ok {
			if t, ok := v.(string); ok {
				raw.RelType = t
			}
		}
		if v, ok := rec.Get("relProps"); ok {
			if props, ok := v.(map[string]any); ok {
				raw.RelProps = props
			}
		}
		records = append(records, raw)
	}
	if err := result.Err(); err != nil {
		return nil, tverrors.Wrap(tverrors.ErrCodeSourceUnavailable, err, "consume topology records")
	}

	return records, nil
}

// Connection is one row of the inspect summary.
type Connection struct {
	Source     string
	SourceType string
	Target     string
	TargetType string
}

// Connections returns the directed CONNECTED_TO pairs currently in the store.
func (s *Store) Connections(ctx context.Context) ([]Connection, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, connectionsQuery, nil)
	if err != nil {
		return nil, tverrors.Wrap(tverrors.ErrCodeSourceUnavailable, err, "query connections")
	}

	var conns []Connection
	for result.Next(ctx) {
		rec := result.Record()
		conns = append(conns, Connection{
			Source:     stringValue(rec, "source"),
			SourceType: stringValue(rec, "source_type"),
			Target:     stringValue(rec, "target"),
			TargetType: stringValue(rec, "target_type"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, tverrors.Wrap(tverrors.ErrCodeSourceUnavailable, err, "consume connections")
	}

	return conns, nil
}

// decodeNode extracts the named node column into a raw node, or nil when the
// column is absent or null (optional-match miss).
func decodeNode(rec *neo4j.Record, key string) *topology.RawNode {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return nil
	}
	node, ok := v.(neo4j.Node)
	if !ok {
		return nil
	}
	id, _ := node.Props["id"].(string)
	return &topology.RawNode{
		ID:     id,
		Labels: node.Labels,
		Props:  node.Props,
	}
}

func stringValue(rec *neo4j.Record, key string) string {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
