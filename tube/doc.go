// Package tube models a single fixed-capacity tube of layered liquid and the
// pour mechanics between two tubes.
//
// What
//
//   - A Tube is an ordered, fixed-length slice of slots. Each slot holds a
//     Color or the reserved Empty code.
//   - Index 0 is the open end. Empty slots always form a contiguous prefix
//     and liquid forms the complementary suffix.
//   - Constructors reject raw strings that violate the prefix rule (ErrGap),
//     and PourInto never produces one, so the invariant holds structurally.
//
// Layout of "EERY":
//
//	index:  0 1 2 3
//	slots:  E E R Y      Top()=R  TopRun()=1  Space()=2
//
// Pour rule
//
//	src.CanPourInto(dst) ⇔ src.Top() ≠ Empty
//	                      ∧ (dst.Top() = src.Top() ∨ dst is empty)
//	                      ∧ dst.Space() ≥ src.TopRun()
//
// PourInto moves the whole top run at once: there are no partial pours.
// Calling PourInto when CanPourInto is false returns ErrIllegalPour and
// leaves both tubes untouched.
//
// Complexity
//
//   - Top, Space, TopRun, Solved: O(capacity).
//   - PourInto: O(capacity).
//
// Errors
//
//   - ErrZeroCapacity  capacity < 1.
//   - ErrBadColor      a slot code is not a letter or digit.
//   - ErrGap           an empty slot sits below liquid.
//   - ErrIllegalPour   PourInto without a valid CanPourInto.
package tube
