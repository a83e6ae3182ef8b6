// Package topology builds the renderer-agnostic graph model from raw store
// records.
//
// The package sits between the graph store boundary and the render backends:
//
//   - [RecordSource]: abstracts the store; yields raw edge-records
//   - [Build]: normalizes records into a [Model]
//   - [Model]: typed nodes and attributed edges, read-only after the build
//
// # Record shape
//
// Each [RawRecord] carries a source node, an optional relationship, and an
// optional target node, mirroring an optional-match pull from the store:
//
//	MATCH (n) OPTIONAL MATCH (n)-[r]->(m)
//	RETURN n, r, m, type(r), properties(r)
//
// A node without outgoing edges arrives as a node-only record and is still
// registered. A relationship whose endpoints cannot be resolved fails the
// build with [ErrMalformedRecord].
//
// # Determinism
//
// Node registration preserves first-appearance order and edges keep input
// order, so repeated builds over the same input yield identical models. This
// keeps layout tests deterministic even when downstream physics layouts are
// probabilistic.
//
// # Attributes
//
// Node and relationship property bags are normalized at ingestion to an
// ordered mapping of string keys to the scalar kinds string, float64, and
// bool (see [Attrs]). Open-ended dynamic typing stops at this boundary.
package topology
