package state

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pourpath/tube"
)

// ValidMoves lists every (i, j), i ≠ j, for which tube i can pour into tube j.
// Order: i ascending, then j ascending.
// Complexity: O(n²·c).
func (s *State) ValidMoves() []Move {
	var out []Move
	for i, src := range s.tubes {
		if src.IsEmpty() {
			continue
		}
		for j, dst := range s.tubes {
			if i == j {
				continue
			}
			if src.CanPourInto(dst) {
				out = append(out, Move{From: i, To: j})
			}
		}
	}

	return out
}

// Apply returns the successor of s after m. The receiver is not modified.
//
// Errors:
//   - ErrMoveOutOfRange for indices outside [0, Len()) or From == To.
//   - tube.ErrIllegalPour when the pour rule rejects m.
func (s *State) Apply(m Move) (*State, error) {
	n := len(s.tubes)
	if m.From < 0 || m.From >= n || m.To < 0 || m.To >= n || m.From == m.To {
		return nil, fmt.Errorf("%w: %s with %d tubes", ErrMoveOutOfRange, m, n)
	}
	tubes := make([]*tube.Tube, n)
	for i, t := range s.tubes {
		tubes[i] = t.Clone()
	}
	if err := tubes[m.From].PourInto(tubes[m.To]); err != nil {
		return nil, fmt.Errorf("state: move %s on %s: %w", m, s, err)
	}
	moves := make([]Move, len(s.moves), len(s.moves)+1)
	copy(moves, s.moves)
	moves = append(moves, m)

	return newState(tubes, moves), nil
}

// Successors applies every valid move in ValidMoves order.
func (s *State) Successors() ([]*State, error) {
	moves := s.ValidMoves()
	out := make([]*State, 0, len(moves))
	for _, m := range moves {
		next, err := s.Apply(m)
		if err != nil {
			return nil, err
		}
		out = append(out, next)
	}

	return out, nil
}

// Solved reports whether every tube is empty or full of a single color.
func (s *State) Solved() bool {
	for _, t := range s.tubes {
		if !t.Solved() {
			return false
		}
	}

	return true
}

// Colors returns the distinct non-empty colors present, sorted ascending.
func (s *State) Colors() []tube.Color {
	vol := s.Volumes()
	out := make([]tube.Color, 0, len(vol))
	for c := range vol {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Volumes returns the number of slots holding each non-empty color.
// The result is invariant under Apply.
func (s *State) Volumes() map[tube.Color]int {
	vol := make(map[tube.Color]int)
	for _, t := range s.tubes {
		for i := 0; i < t.Cap(); i++ {
			if c := t.Slot(i); c != tube.Empty {
				vol[c]++
			}
		}
	}

	return vol
}

// Target synthesizes the sorted configuration for this puzzle: one full tube
// per color followed by empty tubes. Tube positions are arbitrary; only the
// Key is meaningful.
//
// Errors:
//   - ErrTooManyColors when colors outnumber tubes.
//   - ErrUnevenColor when a color's volume is not exactly one capacity.
func (s *State) Target() (*State, error) {
	capacity := s.Cap()
	colors := s.Colors()
	if len(colors) > len(s.tubes) {
		return nil, fmt.Errorf("%w: %d colors, %d tubes", ErrTooManyColors, len(colors), len(s.tubes))
	}
	vol := s.Volumes()
	tubes := make([]*tube.Tube, 0, len(s.tubes))
	for _, c := range colors {
		if vol[c] != capacity {
			return nil, fmt.Errorf("%w: %s has %d slots, capacity is %d", ErrUnevenColor, c, vol[c], capacity)
		}
		t, err := tube.Full(c, capacity)
		if err != nil {
			return nil, err
		}
		tubes = append(tubes, t)
	}
	for len(tubes) < len(s.tubes) {
		t, err := tube.New(capacity)
		if err != nil {
			return nil, err
		}
		tubes = append(tubes, t)
	}

	return newState(tubes, nil), nil
}
