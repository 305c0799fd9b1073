// Package render writes solver results for people and tools: Graphviz DOT
// and JSON for the transition graph, plain text for the move list.
//
// All writers are deterministic. Vertices come out in discovery order and
// edges in creation order, so two runs on the same level diff cleanly.
package render
