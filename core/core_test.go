// SPDX-License-Identifier: MIT
// Package core_test keeps tests stdlib-only, with shared vertex fixtures.

package core_test

import (
	"errors"
	"reflect"
	"strconv"
	"sync"
	"testing"

	"github.com/katalvlaran/pourpath/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""
	VertexA     = "A"
	VertexB     = "B"
	VertexC     = "C"
	VertexD     = "D"
)

// TestAddVertex_Idempotent verifies AddVertex validation and idempotence.
func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex(VertexEmpty); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Fatalf("AddVertex(\"\"): want ErrEmptyVertexID, got %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := g.AddVertex(VertexA); err != nil {
			t.Fatalf("AddVertex(A) #%d: %v", i, err)
		}
	}
	if got := g.VertexCount(); got != 1 {
		t.Errorf("VertexCount = %d; want 1", got)
	}
	if !g.HasVertex(VertexA) || g.HasVertex(VertexB) || g.HasVertex(VertexEmpty) {
		t.Errorf("HasVertex mismatch")
	}
}

// TestAddEdge_Directed checks one-way adjacency and auto-created endpoints.
func TestAddEdge_Directed(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge(VertexA, VertexB, core.WithEdgeLabel("0->2"))
	if err != nil {
		t.Fatal(err)
	}
	if eid != "e1" {
		t.Errorf("edge ID = %q; want e1", eid)
	}
	if !g.HasEdge(VertexA, VertexB) || g.HasEdge(VertexB, VertexA) {
		t.Errorf("directed edge must be one-way")
	}
	e, err := g.GetEdge(eid)
	if err != nil {
		t.Fatal(err)
	}
	if e.Label != "0->2" || e.From != VertexA || e.To != VertexB {
		t.Errorf("edge = %+v; want A->B labelled 0->2", e)
	}
	if _, err := g.GetEdge("e99"); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Errorf("GetEdge(e99): want ErrEdgeNotFound, got %v", err)
	}
	if got := g.InsertionOrder(); !reflect.DeepEqual(got, []string{VertexA, VertexB}) {
		t.Errorf("InsertionOrder = %v", got)
	}
}

// TestAddEdge_Policies covers loop and multi-edge rejections.
func TestAddEdge_Policies(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge(VertexA, VertexA); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Errorf("loop: want ErrLoopNotAllowed, got %v", err)
	}
	if _, err := g.AddEdge(VertexEmpty, VertexA); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Errorf("empty from: want ErrEmptyVertexID, got %v", err)
	}
	g.AddEdge(VertexA, VertexB)
	if _, err := g.AddEdge(VertexA, VertexB); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Errorf("parallel: want ErrMultiEdgeNotAllowed, got %v", err)
	}
	if _, err := g.AddEdge(VertexB, VertexA); err != nil {
		t.Errorf("reverse edge: %v", err)
	}
	if got := g.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount = %d; want 2", got)
	}
}

// TestNeighborsAndPredecessors checks deterministic neighborhood queries.
func TestNeighborsAndPredecessors(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(VertexA, VertexC)
	g.AddEdge(VertexA, VertexB)
	g.AddEdge(VertexB, VertexD)
	g.AddEdge(VertexC, VertexD)

	edges, err := g.Neighbors(VertexA)
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 2 || edges[0].To != VertexC || edges[1].To != VertexB {
		t.Errorf("Neighbors(A) not in creation order: %+v", edges)
	}
	if edges, _ := g.Neighbors(VertexD); len(edges) != 0 {
		t.Errorf("Neighbors(D) = %+v; want none", edges)
	}
	preds, _ := g.Predecessors(VertexD)
	if !reflect.DeepEqual(preds, []string{VertexB, VertexC}) {
		t.Errorf("Predecessors(D) = %v", preds)
	}
	if _, err := g.Neighbors("Z"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("Neighbors(Z): want ErrVertexNotFound, got %v", err)
	}
	if _, err := g.Predecessors(VertexEmpty); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Errorf("Predecessors(\"\"): want ErrEmptyVertexID, got %v", err)
	}
}

// TestEdges_CreationOrder ensures e10 sorts after e9.
func TestEdges_CreationOrder(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		g.AddEdge(VertexA, string(rune('a'+i)))
	}
	edges := g.Edges()
	for i, e := range edges {
		if want := string(rune('a' + i)); e.To != want {
			t.Fatalf("Edges()[%d].To = %s; want %s", i, e.To, want)
		}
	}
}

// TestVertexMetadata covers metadata round-trips and missing vertices.
func TestVertexMetadata(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(VertexA)
	if err := g.SetVertexMetadata(VertexA, "depth", 3); err != nil {
		t.Fatal(err)
	}
	if v, ok := g.VertexMetadata(VertexA, "depth"); !ok || v.(int) != 3 {
		t.Errorf("VertexMetadata = %v, %v", v, ok)
	}
	if _, ok := g.VertexMetadata(VertexB, "depth"); ok {
		t.Errorf("missing vertex must report false")
	}
	if err := g.SetVertexMetadata(VertexB, "depth", 1); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("want ErrVertexNotFound, got %v", err)
	}
	if err := g.SetVertexMetadata(VertexEmpty, "depth", 1); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Errorf("want ErrEmptyVertexID, got %v", err)
	}
}

// TestStats checks counts and source/sink tallies on a diamond.
func TestStats(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(VertexA, VertexB)
	g.AddEdge(VertexA, VertexC)
	g.AddEdge(VertexB, VertexD)
	g.AddEdge(VertexC, VertexD)
	s := g.Stats()
	want := core.GraphStats{VertexCount: 4, EdgeCount: 4, Sources: 1, Sinks: 1}
	if *s != want {
		t.Errorf("Stats = %+v; want %+v", *s, want)
	}
}

// TestConcurrentAddEdge verifies that concurrent writers never lose edges.
// No *testing.T usage inside goroutines.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const writers, perWriter = 8, 50
	var wg sync.WaitGroup
	errs := make(chan error, writers*perWriter)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			from := "w" + strconv.Itoa(w)
			for i := 0; i < perWriter; i++ {
				if _, err := g.AddEdge(from, "v"+strconv.Itoa(i)); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("AddEdge: %v", err)
	}
	if got := g.EdgeCount(); got != writers*perWriter {
		t.Errorf("EdgeCount = %d; want %d", got, writers*perWriter)
	}
	if got := g.VertexCount(); got != writers+perWriter {
		t.Errorf("VertexCount = %d; want %d", got, writers+perWriter)
	}
}
