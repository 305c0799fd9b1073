package render

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/katalvlaran/pourpath/solver"
)

// ErrNoResult is returned when a writer gets a nil result or graph.
var ErrNoResult = errors.New("render: nil result")

// Graph is the JSON document written by JSON.
type Graph struct {
	Initial  string    `json:"initial"`
	Target   string    `json:"target"`
	Nodes    []Node    `json:"nodes"`
	Edges    []Edge    `json:"edges"`
	Solution *Solution `json:"solution"`
	Stats    Stats     `json:"stats"`
}

// Node is one canonical configuration.
type Node struct {
	ID     string `json:"id"`
	State  string `json:"state"`
	Depth  int    `json:"depth"`
	Solved bool   `json:"solved"`
}

// Edge is one first-discovery transition.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Move string `json:"move"`
}

// Solution holds the move list as [from, to] pairs; null when unsolvable.
type Solution struct {
	Moves  [][2]int `json:"moves"`
	Length int      `json:"length"`
}

// Stats mirrors solver.Stats without timing, plus the shape of the graph.
// Leaves counts configurations with no outgoing first-discovery edge.
type Stats struct {
	Expanded    int  `json:"expanded"`
	Discovered  int  `json:"discovered"`
	Duplicates  int  `json:"duplicates"`
	MaxFrontier int  `json:"max_frontier"`
	Depth       int  `json:"depth"`
	Complete    bool `json:"complete"`
	Vertices    int  `json:"vertices"`
	Edges       int  `json:"edges"`
	Leaves      int  `json:"leaves"`
}

// NewGraph converts res into its JSON document.
func NewGraph(res *solver.Result) (*Graph, error) {
	if res == nil || res.Graph == nil {
		return nil, ErrNoResult
	}
	g := res.Graph
	shape := g.Stats()
	doc := &Graph{
		Initial: res.Initial.String(),
		Target:  res.Target.Key(),
		Nodes:   make([]Node, 0, g.VertexCount()),
		Edges:   make([]Edge, 0, g.EdgeCount()),
		Stats: Stats{
			Expanded:    res.Stats.Expanded,
			Discovered:  res.Stats.Discovered,
			Duplicates:  res.Stats.Duplicates,
			MaxFrontier: res.Stats.MaxFrontier,
			Depth:       res.Stats.Depth,
			Complete:    res.Stats.Complete,
			Vertices:    shape.VertexCount,
			Edges:       shape.EdgeCount,
			Leaves:      shape.Sinks,
		},
	}
	for _, id := range g.InsertionOrder() {
		n := Node{ID: id, Depth: res.Depth[id]}
		if v, ok := g.VertexMetadata(id, solver.MetaState); ok {
			n.State = v.(string)
		}
		if v, ok := g.VertexMetadata(id, solver.MetaSolved); ok {
			n.Solved = v.(bool)
		}
		doc.Nodes = append(doc.Nodes, n)
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{From: e.From, To: e.To, Move: e.Label})
	}
	if res.Solved() {
		sol := &Solution{Moves: make([][2]int, len(res.Moves)), Length: len(res.Moves)}
		for i, m := range res.Moves {
			sol.Moves[i] = [2]int{m.From, m.To}
		}
		doc.Solution = sol
	}

	return doc, nil
}

// JSON writes res as an indented JSON document.
func JSON(w io.Writer, res *solver.Result) error {
	doc, err := NewGraph(res)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
