package state

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/pourpath/tube"
)

// tubeSeparator joins raw tube strings in String, Key and Parse.
const tubeSeparator = ","

// State is one puzzle configuration. Build it with New or Parse.
type State struct {
	tubes []*tube.Tube
	moves []Move
	key   string // canonical identity, computed once
}

// New builds a State owning copies of tubes.
//
// Errors:
//   - ErrNoTubes, ErrNilTube.
//   - ErrCapacityMismatch when tubes differ in length.
//   - ErrTooManyColors when there are fewer tubes than distinct colors.
//
// Complexity: O(n·c log n) for n tubes of capacity c (key construction).
func New(tubes []*tube.Tube) (*State, error) {
	if len(tubes) == 0 {
		return nil, ErrNoTubes
	}
	owned := make([]*tube.Tube, len(tubes))
	for i, t := range tubes {
		if t == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilTube, i)
		}
		if t.Cap() != tubes[0].Cap() {
			return nil, fmt.Errorf("%w: tube %d has %d slots, tube 0 has %d",
				ErrCapacityMismatch, i, t.Cap(), tubes[0].Cap())
		}
		owned[i] = t.Clone()
	}
	s := newState(owned, nil)
	if n := len(s.Colors()); n > len(owned) {
		return nil, fmt.Errorf("%w: %d colors, %d tubes", ErrTooManyColors, n, len(owned))
	}

	return s, nil
}

// Parse builds a State from comma-separated raw tubes, e.g. "RY,YR,EE".
// Surrounding whitespace around each tube is ignored.
func Parse(raw string) (*State, error) {
	parts := strings.Split(raw, tubeSeparator)
	tubes := make([]*tube.Tube, 0, len(parts))
	for i, p := range parts {
		t, err := tube.Parse(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("state: tube %d: %w", i, err)
		}
		tubes = append(tubes, t)
	}

	return New(tubes)
}

// MustParse is like Parse but panics on error. Intended for tests and fixtures.
func MustParse(raw string) *State {
	s, err := Parse(raw)
	if err != nil {
		panic(err)
	}

	return s
}

// newState takes ownership of tubes and moves without copying.
func newState(tubes []*tube.Tube, moves []Move) *State {
	s := &State{tubes: tubes, moves: moves}
	s.key = canonicalKey(tubes)

	return s
}

// canonicalKey sorts raw tube strings so tube position does not matter.
func canonicalKey(tubes []*tube.Tube) string {
	raws := make([]string, len(tubes))
	for i, t := range tubes {
		raws[i] = t.Raw()
	}
	sort.Strings(raws)

	return strings.Join(raws, tubeSeparator)
}

// Len returns the number of tubes.
func (s *State) Len() int { return len(s.tubes) }

// Cap returns the shared tube capacity.
func (s *State) Cap() int { return s.tubes[0].Cap() }

// Tube returns a copy of the tube at position i.
func (s *State) Tube(i int) *tube.Tube { return s.tubes[i].Clone() }

// Key returns the canonical, order-independent identity of s.
func (s *State) Key() string { return s.key }

// Equal reports canonical equality; move history is ignored.
func (s *State) Equal(o *State) bool {
	if s == nil || o == nil {
		return s == o
	}

	return s.key == o.key
}

// String returns the positional form, e.g. "RY,YR,EE".
func (s *State) String() string {
	raws := make([]string, len(s.tubes))
	for i, t := range s.tubes {
		raws[i] = t.Raw()
	}

	return strings.Join(raws, tubeSeparator)
}

// Moves returns a copy of the move history from the root to s.
func (s *State) Moves() []Move {
	out := make([]Move, len(s.moves))
	copy(out, s.moves)

	return out
}

// LastMove returns the move that produced s; false for a root state.
func (s *State) LastMove() (Move, bool) {
	if len(s.moves) == 0 {
		return Move{}, false
	}

	return s.moves[len(s.moves)-1], true
}

// Depth returns the number of moves from the root to s.
func (s *State) Depth() int { return len(s.moves) }

// Clone returns an independent copy of s, history included.
func (s *State) Clone() *State {
	tubes := make([]*tube.Tube, len(s.tubes))
	for i, t := range s.tubes {
		tubes[i] = t.Clone()
	}
	moves := make([]Move, len(s.moves))
	copy(moves, s.moves)

	return &State{tubes: tubes, moves: moves, key: s.key}
}
