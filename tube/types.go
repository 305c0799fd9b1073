package tube

import (
	"errors"
	"fmt"
)

// Empty is the reserved slot code for "no liquid".
const Empty Color = 'E'

// Sentinel errors for tube construction and pouring.
var (
	// ErrZeroCapacity indicates a tube with no slots was requested.
	ErrZeroCapacity = errors.New("tube: capacity must be positive")

	// ErrBadColor indicates a slot code outside the accepted alphabet.
	ErrBadColor = errors.New("tube: invalid color code")

	// ErrGap indicates an empty slot positioned after a non-empty one.
	ErrGap = errors.New("tube: empty slot below liquid")

	// ErrIllegalPour indicates PourInto was called for a pour CanPourInto rejects.
	ErrIllegalPour = errors.New("tube: illegal pour")
)

// Color is a single-character color label. Empty is the only non-liquid value.
type Color byte

// String returns the one-character code of c.
func (c Color) String() string { return string(rune(c)) }

// Valid reports whether c is Empty or an accepted color code (ASCII letter or digit).
func (c Color) Valid() bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	default:
		return false
	}
}

// Tube is one fixed-capacity container. The zero value is not usable;
// build tubes with New, Parse or Full.
type Tube struct {
	slots []Color
}

// New returns an all-empty tube of the given capacity.
func New(capacity int) (*Tube, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrZeroCapacity, capacity)
	}
	t := &Tube{slots: make([]Color, capacity)}
	for i := range t.slots {
		t.slots[i] = Empty
	}

	return t, nil
}

// Full returns a tube of the given capacity filled with c.
func Full(c Color, capacity int) (*Tube, error) {
	if c == Empty || !c.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrBadColor, c)
	}
	t, err := New(capacity)
	if err != nil {
		return nil, err
	}
	for i := range t.slots {
		t.slots[i] = c
	}

	return t, nil
}

// Parse builds a tube from its raw slot string, open end first ("EERR").
// It rejects empty input, unknown codes and gaps below liquid.
func Parse(raw string) (*Tube, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty tube string", ErrZeroCapacity)
	}
	t := &Tube{slots: make([]Color, len(raw))}
	liquid := false
	for i := 0; i < len(raw); i++ {
		c := Color(raw[i])
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %q at slot %d of %q", ErrBadColor, raw[i], i, raw)
		}
		if c == Empty && liquid {
			return nil, fmt.Errorf("%w: slot %d of %q", ErrGap, i, raw)
		}
		if c != Empty {
			liquid = true
		}
		t.slots[i] = c
	}

	return t, nil
}

// MustParse is like Parse but panics on error. Intended for tests and fixtures.
func MustParse(raw string) *Tube {
	t, err := Parse(raw)
	if err != nil {
		panic(err)
	}

	return t
}
