package tube

import "strings"

// Cap returns the fixed number of slots.
func (t *Tube) Cap() int { return len(t.slots) }

// Raw returns the slot codes as a string, open end first.
func (t *Tube) Raw() string {
	var b strings.Builder
	b.Grow(len(t.slots))
	for _, c := range t.slots {
		b.WriteByte(byte(c))
	}

	return b.String()
}

// String implements fmt.Stringer; identical to Raw.
func (t *Tube) String() string { return t.Raw() }

// Slot returns the code at index i. It panics if i is out of range.
func (t *Tube) Slot(i int) Color { return t.slots[i] }

// Clone returns an independent copy of t.
func (t *Tube) Clone() *Tube {
	out := &Tube{slots: make([]Color, len(t.slots))}
	copy(out.slots, t.slots)

	return out
}

// Top returns the color of the first non-empty slot, or Empty.
func (t *Tube) Top() Color {
	for _, c := range t.slots {
		if c != Empty {
			return c
		}
	}

	return Empty
}

// Space returns the number of empty slots. By the prefix invariant this is
// also the index of the first liquid slot.
func (t *Tube) Space() int {
	n := 0
	for _, c := range t.slots {
		if c != Empty {
			break
		}
		n++
	}

	return n
}

// IsEmpty reports whether t holds no liquid.
func (t *Tube) IsEmpty() bool { return t.Space() == len(t.slots) }

// TopRun returns the length of the contiguous run of the top color.
// For an empty tube it returns Cap(): the "run" of Empty spans the tube.
// That value is never a pourable volume; CanPourInto rejects empty sources.
func (t *Tube) TopRun() int {
	s := t.Space()
	if s == len(t.slots) {
		return len(t.slots)
	}
	top := t.slots[s]
	n := 0
	for _, c := range t.slots[s:] {
		if c != top {
			break
		}
		n++
	}

	return n
}

// CanPourInto reports whether the whole top run of t fits on top of dst.
func (t *Tube) CanPourInto(dst *Tube) bool {
	if dst == nil || dst == t {
		return false
	}
	top := t.Top()
	if top == Empty {
		return false // nothing to pour
	}
	dstTop := dst.Top()
	if dstTop != top && dstTop != Empty {
		return false
	}

	return dst.Space() >= t.TopRun()
}

// PourInto moves the top run of t onto dst. Both tubes are mutated in place.
// It returns ErrIllegalPour and changes nothing when CanPourInto(dst) is false.
func (t *Tube) PourInto(dst *Tube) error {
	if !t.CanPourInto(dst) {
		return ErrIllegalPour
	}
	top := t.Top()
	run := t.TopRun()
	src := t.Space()
	free := dst.Space()

	// Liquid lands directly above dst's current surface.
	for i := free - run; i < free; i++ {
		dst.slots[i] = top
	}
	// The vacated run joins the empty prefix of t.
	for i := src; i < src+run; i++ {
		t.slots[i] = Empty
	}

	return nil
}

// Solved reports whether t is empty or full of exactly one color.
func (t *Tube) Solved() bool {
	return t.Top() == Empty || t.TopRun() == len(t.slots)
}

// Count returns how many slots hold c.
func (t *Tube) Count(c Color) int {
	n := 0
	for _, s := range t.slots {
		if s == c {
			n++
		}
	}

	return n
}
