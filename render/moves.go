package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/pourpath/state"
	"github.com/katalvlaran/pourpath/tube"
)

// Moves writes one "i -> j" line per move.
func Moves(w io.Writer, moves []state.Move) error {
	bw := bufio.NewWriter(w)
	for _, m := range moves {
		fmt.Fprintf(bw, "%d -> %d\n", m.From, m.To)
	}

	return bw.Flush()
}

// Steps replays moves from initial and writes a numbered, human readable
// line per pour followed by the resulting configuration. colorName may be
// nil, in which case color codes are printed as is.
func Steps(w io.Writer, initial *state.State, moves []state.Move, colorName func(tube.Color) string) error {
	if colorName == nil {
		colorName = tube.Color.String
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "start: %s\n", initial)
	cur := initial
	for i, m := range moves {
		next, err := cur.Apply(m)
		if err != nil {
			return fmt.Errorf("render: step %d: %w", i+1, err)
		}
		src := cur.Tube(m.From)
		poured := next.Tube(m.From).Space() - src.Space()
		fmt.Fprintf(bw, "%3d. pour %d x %s from tube %d into tube %d: %s\n",
			i+1, poured, colorName(src.Top()), m.From, m.To, next)
		cur = next
	}

	return bw.Flush()
}
