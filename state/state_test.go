package state_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pourpath/state"
	"github.com/katalvlaran/pourpath/tube"
)

// TestParse_Errors covers every malformed-input sentinel.
func TestParse_Errors(t *testing.T) {
	_, err := state.Parse("RY,YRR")
	require.ErrorIs(t, err, state.ErrCapacityMismatch)

	_, err = state.Parse("RY,GB")
	require.ErrorIs(t, err, state.ErrTooManyColors)

	_, err = state.Parse("RY,R E")
	require.ErrorIs(t, err, tube.ErrBadColor)

	_, err = state.Parse("RE,EE")
	require.ErrorIs(t, err, tube.ErrGap)

	_, err = state.New(nil)
	require.ErrorIs(t, err, state.ErrNoTubes)

	_, err = state.New([]*tube.Tube{tube.MustParse("RR"), nil})
	require.ErrorIs(t, err, state.ErrNilTube)
}

// TestParse_TrimsWhitespace accepts spaced level literals.
func TestParse_TrimsWhitespace(t *testing.T) {
	s, err := state.Parse(" RY , YR ,EE ")
	require.NoError(t, err)
	assert.Equal(t, "RY,YR,EE", s.String())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2, s.Cap())
}

// TestNew_OwnsTubes verifies callers cannot mutate a built state.
func TestNew_OwnsTubes(t *testing.T) {
	a, b := tube.MustParse("ER"), tube.MustParse("ER")
	s, err := state.New([]*tube.Tube{a, b})
	require.NoError(t, err)
	require.NoError(t, a.PourInto(b))
	assert.Equal(t, "ER,ER", s.String())

	c := s.Tube(0)
	require.NoError(t, c.PourInto(tube.MustParse("EE")))
	assert.Equal(t, "ER,ER", s.String())
}

// TestCanonicalIdentity checks that tube order does not affect identity.
func TestCanonicalIdentity(t *testing.T) {
	a := state.MustParse("RY,EE")
	b := state.MustParse("EE,RY")
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "EE,RY", a.Key())
	assert.NotEqual(t, a.String(), b.String())

	c := state.MustParse("YR,EE")
	assert.False(t, a.Equal(c))

	var nilState *state.State
	assert.False(t, a.Equal(nilState))
	assert.True(t, nilState.Equal(nil))
}

// TestCanonicalIdentity_Equivalence checks reflexivity, symmetry and
// transitivity over every permutation of a four-tube state.
func TestCanonicalIdentity_Equivalence(t *testing.T) {
	raws := []string{"RYBG", "GBYR", "EEBB", "EEEE"}
	var perms []*state.State
	permute(raws, 0, func(p []string) {
		perms = append(perms, mustFromRaws(t, p))
	})
	require.Len(t, perms, 24)

	for _, a := range perms {
		assert.True(t, a.Equal(a))
		for _, b := range perms {
			assert.Equal(t, a.Equal(b), b.Equal(a))
			assert.True(t, a.Equal(b))
			assert.Equal(t, a.Key(), b.Key())
		}
	}
}

// TestIdentity_IgnoresHistory verifies that different paths meet at one key.
func TestIdentity_IgnoresHistory(t *testing.T) {
	s := state.MustParse("ER,ER,EE")
	viaA, err := s.Apply(state.Move{From: 0, To: 1})
	require.NoError(t, err)
	viaB, err := s.Apply(state.Move{From: 1, To: 0})
	require.NoError(t, err)
	assert.True(t, viaA.Equal(viaB))
	assert.NotEqual(t, viaA.Moves(), viaB.Moves())
}

// TestValidMoves covers the two-tube deadlock and the three-tube opening.
func TestValidMoves(t *testing.T) {
	assert.Empty(t, state.MustParse("RY,YR").ValidMoves())

	got := state.MustParse("RY,YR,EE").ValidMoves()
	assert.Equal(t, []state.Move{{From: 0, To: 2}, {From: 1, To: 2}}, got)
}

// TestApply_DoesNotMutateParent checks the copy-on-move contract.
func TestApply_DoesNotMutateParent(t *testing.T) {
	s := state.MustParse("RY,YR,EE")
	next, err := s.Apply(state.Move{From: 0, To: 2})
	require.NoError(t, err)

	assert.Equal(t, "RY,YR,EE", s.String())
	assert.Empty(t, s.Moves())
	assert.Equal(t, "EY,YR,ER", next.String())
	assert.Equal(t, []state.Move{{From: 0, To: 2}}, next.Moves())

	again, err := next.Apply(state.Move{From: 1, To: 0})
	require.NoError(t, err)
	assert.Equal(t, []state.Move{{From: 0, To: 2}, {From: 1, To: 0}}, again.Moves())
	assert.Len(t, next.Moves(), 1, "parent history must not grow")
}

// TestApply_Errors covers out-of-range and illegal moves.
func TestApply_Errors(t *testing.T) {
	s := state.MustParse("RY,YR,EE")
	for _, m := range []state.Move{{From: -1, To: 0}, {From: 0, To: 3}, {From: 1, To: 1}} {
		_, err := s.Apply(m)
		require.ErrorIs(t, err, state.ErrMoveOutOfRange, "move %s", m)
	}
	_, err := s.Apply(state.Move{From: 0, To: 1})
	require.ErrorIs(t, err, tube.ErrIllegalPour)
	assert.Equal(t, "RY,YR,EE", s.String())
}

// TestSolved covers sorted, empty and mixed configurations.
func TestSolved(t *testing.T) {
	assert.True(t, state.MustParse("RR,YY,EE").Solved())
	assert.True(t, state.MustParse("EE,EE").Solved())
	s := state.MustParse("RY,YR,EE")
	assert.False(t, s.Solved())
	assert.Equal(t, s.Solved(), s.Solved())
}

// TestColorsAndTarget covers the synthesized sorted configuration.
func TestColorsAndTarget(t *testing.T) {
	s := state.MustParse("RY,YR,EE")
	assert.Equal(t, []tube.Color{'R', 'Y'}, s.Colors())

	target, err := s.Target()
	require.NoError(t, err)
	assert.True(t, target.Solved())
	assert.Empty(t, target.Moves())
	for _, arrangement := range []string{"RR,YY,EE", "EE,RR,YY", "YY,EE,RR"} {
		assert.True(t, target.Equal(state.MustParse(arrangement)), arrangement)
	}
}

// TestTarget_Uneven rejects colors that cannot fill exactly one tube.
func TestTarget_Uneven(t *testing.T) {
	_, err := state.MustParse("RY,EE").Target()
	require.ErrorIs(t, err, state.ErrUnevenColor)

	_, err = state.MustParse("RRR,RRR,EEE").Target()
	require.ErrorIs(t, err, state.ErrUnevenColor)
}

// TestRandomWalk_Invariants applies random valid moves and checks that
// volumes are conserved and every tube keeps its empty prefix.
func TestRandomWalk_Invariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	s := state.MustParse("PRYY,PRYP,RYPR,EEEE,EEEE")
	want := s.Volumes()

	for step := 0; step < 200; step++ {
		moves := s.ValidMoves()
		if len(moves) == 0 {
			break
		}
		next, err := s.Apply(moves[rnd.Intn(len(moves))])
		require.NoError(t, err)
		s = next

		require.Equal(t, want, s.Volumes(), "step %d", step)
		for i := 0; i < s.Len(); i++ {
			_, err := tube.Parse(s.Tube(i).Raw())
			require.NoError(t, err, "step %d tube %d", step, i)
		}
	}
}

// TestRoundTrip_ReverseMove checks that undoing a pour restores both tubes
// whenever the reverse is legal and the pour did not merge onto a same-color run.
func TestRoundTrip_ReverseMove(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	s := state.MustParse("RYBR,YBRY,BRYB,EEEE,EEEE")
	checked := 0

	for step := 0; step < 300; step++ {
		moves := s.ValidMoves()
		if len(moves) == 0 {
			break
		}
		for _, m := range moves {
			merged := s.Tube(m.To).Top() != tube.Empty
			next, err := s.Apply(m)
			require.NoError(t, err)
			if merged || !next.Tube(m.To).CanPourInto(next.Tube(m.From)) {
				continue
			}
			back, err := next.Apply(m.Reverse())
			require.NoError(t, err)
			assert.Equal(t, s.Tube(m.From).Raw(), back.Tube(m.From).Raw())
			assert.Equal(t, s.Tube(m.To).Raw(), back.Tube(m.To).Raw())
			checked++
		}
		next, err := s.Apply(moves[rnd.Intn(len(moves))])
		require.NoError(t, err)
		s = next
	}
	assert.Positive(t, checked)
}

// TestClone copies history and identity.
func TestClone(t *testing.T) {
	s, err := state.MustParse("RY,YR,EE").Apply(state.Move{From: 0, To: 2})
	require.NoError(t, err)
	c := s.Clone()
	assert.True(t, c.Equal(s))
	assert.Equal(t, s.Moves(), c.Moves())
	assert.Equal(t, s.String(), c.String())
	assert.Equal(t, "0->2", state.Move{From: 0, To: 2}.String())
}

func mustFromRaws(t *testing.T, raws []string) *state.State {
	t.Helper()
	tubes := make([]*tube.Tube, len(raws))
	for i, r := range raws {
		tubes[i] = tube.MustParse(r)
	}
	s, err := state.New(tubes)
	require.NoError(t, err)

	return s
}

// permute calls fn with every permutation of a (Heap-style in-place swaps).
func permute(a []string, k int, fn func([]string)) {
	if k == len(a) {
		cp := make([]string, len(a))
		copy(cp, a)
		fn(cp)
		return
	}
	for i := k; i < len(a); i++ {
		a[k], a[i] = a[i], a[k]
		permute(a, k+1, fn)
		a[k], a[i] = a[i], a[k]
	}
}
