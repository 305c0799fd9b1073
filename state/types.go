// Package state models one full puzzle configuration: an ordered set of
// equal-capacity tubes, the move history that produced it, and an
// order-independent canonical identity.
//
// Identity
//
//	Key() = sort(raw tube strings) joined by ","
//
// Two states with permuted tubes share a Key and compare Equal. Move history
// never participates in identity: two paths reaching the same configuration
// are the same search node.
//
// # Lifecycle
//
// States are immutable once built. Apply returns a successor that owns a copy
// of every tube plus the parent's history with the new move appended; the
// parent is never touched, so queued states cannot alias each other.
package state

import (
	"errors"
	"fmt"
)

// Sentinel errors for state construction and moves.
var (
	// ErrNoTubes indicates a configuration with zero tubes.
	ErrNoTubes = errors.New("state: no tubes")

	// ErrNilTube indicates a nil *tube.Tube in the input slice.
	ErrNilTube = errors.New("state: nil tube")

	// ErrCapacityMismatch indicates tubes of unequal length.
	ErrCapacityMismatch = errors.New("state: tubes differ in capacity")

	// ErrTooManyColors indicates fewer tubes than distinct colors, so no
	// sorted configuration can exist.
	ErrTooManyColors = errors.New("state: fewer tubes than colors")

	// ErrUnevenColor indicates a color whose total volume differs from one
	// tube capacity; the sorted target is then undefined.
	ErrUnevenColor = errors.New("state: color volume does not fill exactly one tube")

	// ErrMoveOutOfRange indicates a move index outside [0, Len()).
	ErrMoveOutOfRange = errors.New("state: move index out of range")
)

// Move is a single pour from tube From to tube To (0-based, positional).
type Move struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// String renders m as "from->to".
func (m Move) String() string { return fmt.Sprintf("%d->%d", m.From, m.To) }

// Reverse returns the move pouring in the opposite direction.
func (m Move) Reverse() Move { return Move{From: m.To, To: m.From} }
