package textstore

import "fmt"

// Position binds the three coordinates of one point in a Store.
// Line and Col are 0-indexed; Col counts grapheme clusters into the visible
// line; Offset is the absolute character offset from the buffer start.
//
// A Position is a value: it is copied, never shared, and it is recomputed
// rather than trusted across mutations that precede it in the buffer. The
// invariant Offset == GraphemeColToOffset(Line, Col) must hold for every
// Position handed to a caller; ValidatePosition panics when it does not.
type Position struct {
	Line   int
	Col    int
	Offset int
}

// NewPosition creates a position from its three coordinates.
func NewPosition(line, col, offset int) Position {
	return Position{Line: line, Col: col, Offset: offset}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d@%d)", p.Line, p.Col, p.Offset)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other,
// ordered by offset.
func (p Position) Compare(other Position) int {
	if p.Offset < other.Offset {
		return -1
	}
	if p.Offset > other.Offset {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Offset > other.Offset
}

// Equals returns true if both positions have identical coordinates.
func (p Position) Equals(other Position) bool {
	return p.Line == other.Line && p.Col == other.Col && p.Offset == other.Offset
}

// IsZero returns true if this is the origin position (0:0@0).
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Col == 0 && p.Offset == 0
}
