// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	VertexCount int `json:"vertex_count"`
	EdgeCount   int `json:"edge_count"`
	// Sources counts vertices with no incoming edge; Sinks those with no outgoing edge.
	Sources int `json:"sources"`
	Sinks   int `json:"sinks"`
}

// Stats produces a snapshot of counts and source/sink tallies.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, snapshot vertex IDs.
//   - Stage 2: Under muEdgeAdj.RLock, count edges and in/out incidence.
//
// Locks are never held together, avoiding lock-order hazards.
// Complexity: O(V+E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{VertexCount: len(g.vertices)}
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	in := make(map[string]int, len(ids))
	out := make(map[string]int, len(ids))
	for _, e := range g.edges {
		out[e.From]++
		in[e.To]++
	}
	g.muEdgeAdj.RUnlock()

	for _, id := range ids {
		if in[id] == 0 {
			stats.Sources++
		}
		if out[id] == 0 {
			stats.Sinks++
		}
	}

	return &stats
}
