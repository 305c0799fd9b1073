// Package core provides a thread-safe in-memory Graph with a minimal,
// composable API surface. pourpath uses it to hold the transition graph of a
// puzzle: one vertex per canonical configuration, one directed edge per
// discovered pour.
//
// The Graph G = (V,E) supports:
//
//   - Directed edges, at most one per ordered pair, no self-loops
//   - Per-edge labels (WithEdgeLabel)
//   - Per-vertex metadata (SetVertexMetadata / VertexMetadata)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Core Methods:
//
//	AddVertex(id string) error                                   // O(1)
//	HasVertex(id string) bool                                    // O(1)
//	AddEdge(from, to string, opts ...EdgeOption) (string, error) // O(1)†
//	HasEdge(from, to string) bool                                // O(1)
//	Neighbors(id string) ([]*Edge, error)                        // O(d·log d)
//	Predecessors(id string) ([]string, error)                    // O(E)
//	Vertices() []string                                          // O(V·log V)
//	InsertionOrder() []string                                    // O(V)
//	Edges() []*Edge                                              // O(E·log E)
//	Stats() *GraphStats                                          // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – edge from a vertex to itself
//	ErrMultiEdgeNotAllowed – second edge between the same ordered pair
//
// † amortized constant time: atomic ID generation + nested-map insertion.
package core
