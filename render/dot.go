package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/pourpath/solver"
)

// DOTOptions tunes the Graphviz output.
type DOTOptions struct {
	// Name is the graph identifier. Defaults to "pourpath".
	Name string
	// EdgeLabels prints the "i->j" move on every edge.
	EdgeLabels bool
	// Positional labels vertices with the positional form of the first
	// representative instead of the canonical key.
	Positional bool
	// HighlightSolution draws the solution path in bold red.
	HighlightSolution bool
}

// DOT writes the transition graph of res in Graphviz format.
// A leading comment summarizes the graph size. The initial vertex gets a
// double border and solved vertices are filled.
func DOT(w io.Writer, res *solver.Result, opts DOTOptions) error {
	if res == nil || res.Graph == nil {
		return ErrNoResult
	}
	if opts.Name == "" {
		opts.Name = "pourpath"
	}
	onPath, pathEdges := solutionPath(res)

	g := res.Graph
	shape := g.Stats()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// %d configurations, %d transitions, %d leaves\n",
		shape.VertexCount, shape.EdgeCount, shape.Sinks)
	fmt.Fprintf(bw, "digraph %q {\n", opts.Name)
	fmt.Fprintln(bw, "  node [shape=box, fontname=\"monospace\"];")

	for _, id := range g.InsertionOrder() {
		label := id
		if opts.Positional {
			if v, ok := g.VertexMetadata(id, solver.MetaState); ok {
				label = v.(string)
			}
		}
		attrs := fmt.Sprintf("label=%q", label)
		if id == res.Initial.Key() {
			attrs += ", peripheries=2"
		}
		if v, ok := g.VertexMetadata(id, solver.MetaSolved); ok && v.(bool) {
			attrs += ", style=filled, fillcolor=\"lightgrey\""
		}
		if opts.HighlightSolution && onPath[id] {
			attrs += ", color=\"red\", penwidth=2"
		}
		fmt.Fprintf(bw, "  %q [%s];\n", id, attrs)
	}

	for _, e := range g.Edges() {
		var attrs []string
		if opts.EdgeLabels {
			attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
		}
		if opts.HighlightSolution && pathEdges[[2]string{e.From, e.To}] {
			attrs = append(attrs, "color=\"red\"", "penwidth=2")
		}
		fmt.Fprintf(bw, "  %q -> %q%s;\n", e.From, e.To, attrList(attrs))
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

// solutionPath returns the keys and edges on the path to the target.
func solutionPath(res *solver.Result) (map[string]bool, map[[2]string]bool) {
	keys := map[string]bool{}
	edges := map[[2]string]bool{}
	if !res.Solved() {
		return keys, edges
	}
	path, err := res.PathTo(res.Solution.Key())
	if err != nil {
		return keys, edges
	}
	for i, k := range path {
		keys[k] = true
		if i > 0 {
			edges[[2]string{path[i-1], k}] = true
		}
	}

	return keys, edges
}

func attrList(attrs []string) string {
	if len(attrs) == 0 {
		return ""
	}
	out := " ["
	for i, a := range attrs {
		if i > 0 {
			out += ", "
		}
		out += a
	}

	return out + "]"
}
