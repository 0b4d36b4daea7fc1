package cursor

import (
	"fmt"

	"github.com/dshills/modalcore/internal/textstore"
)

// Position is an alias for textstore.Position for convenience.
type Position = textstore.Position

// Cursor is one editing point: an anchor/active pair of Positions plus a
// sticky preferred column consulted by vertical motion. The pair being equal
// means no selection is active.
type Cursor struct {
	anchor       Position
	active       Position
	preferredCol int
	hasPreferred bool
}

// New creates a cursor at the origin with no selection and no preferred
// column.
func New() Cursor {
	return Cursor{}
}

// At returns a cursor with the given anchor and active positions, both
// clamped through MoveTo. Equal positions yield a collapsed cursor.
func At(st *textstore.Store, anchor, active Position) Cursor {
	c := New()
	a := c.MoveTo(st, anchor, MoveOptions{})
	c.MoveTo(st, active, MoveOptions{Anchor: &a, UpdatePreferred: true})
	return c
}

// Position returns the active position, where the cursor visibly sits.
func (c *Cursor) Position() Position {
	return c.active
}

// Anchor returns the fixed end of the selection. Equal to Position() when no
// selection is active.
func (c *Cursor) Anchor() Position {
	return c.anchor
}

// HasSelection returns true if anchor and active differ.
func (c *Cursor) HasSelection() bool {
	return c.anchor != c.active
}

// PreferredColumn returns the sticky column consulted by vertical motion,
// and whether one is set.
func (c *Cursor) PreferredColumn() (int, bool) {
	return c.preferredCol, c.hasPreferred
}

// SelectionSpan returns the inclusive selection range ordered by offset,
// with the end extended one grapheme past the active endpoint so the
// character under it is included. ok is false when the cursor is collapsed.
func (c *Cursor) SelectionSpan(st *textstore.Store) (start, end Position, ok bool) {
	if !c.HasSelection() {
		return Position{}, Position{}, false
	}
	start, end = c.anchor, c.active
	if end.Before(start) {
		start, end = end, start
	}
	return start, st.PositionAt(st.NextGraphemeOffset(end.Offset)), true
}

// MoveOptions controls how MoveTo treats the anchor and the preferred
// column. A nil Anchor collapses the selection onto the destination; a
// supplied one keeps or extends it.
type MoveOptions struct {
	Anchor          *Position
	UpdatePreferred bool
}

// MoveTo is the canonical position setter. The destination line is clamped
// to the buffer, the column to the line's grapheme length, and the offset
// recomputed, so any in-range request produces a valid Position.
func (c *Cursor) MoveTo(st *textstore.Store, dest Position, opts MoveOptions) Position {
	line := dest.Line
	if line < 0 {
		line = 0
	}
	if last := st.LineCount() - 1; line > last {
		line = last
	}
	col := dest.Col
	if col < 0 {
		col = 0
	}
	if max := st.GraphemeLen(line); col > max {
		col = max
	}
	pos := textstore.NewPosition(line, col, st.GraphemeColToOffset(line, col))

	c.active = pos
	if opts.Anchor != nil {
		st.ValidatePosition(*opts.Anchor)
		c.anchor = *opts.Anchor
	} else {
		c.anchor = pos
	}
	if opts.UpdatePreferred {
		c.preferredCol, c.hasPreferred = col, true
	}
	return pos
}

// AdjustForMode reconciles the cursor with a mode change. Leaving an
// insert-like mode pulls a column sitting one past the last cluster back
// onto it; entering visual mode seeds the anchor so motions start selecting.
func (c *Cursor) AdjustForMode(st *textstore.Store, mode Mode) {
	switch mode {
	case ModeNormal:
		c.anchor = c.active
		cur := c.active
		if n := st.GraphemeLen(cur.Line); n > 0 && cur.Col >= n {
			col := n - 1
			pos := textstore.NewPosition(cur.Line, col, st.GraphemeColToOffset(cur.Line, col))
			c.active = pos
			c.anchor = pos
			c.preferredCol, c.hasPreferred = col, true
		}
	case ModeInsert:
		c.anchor = c.active
	case ModeVisual:
		// Anchor stays put; a collapsed cursor begins selecting as it moves.
	}
}

// apply commits a motion result: the active position moves, the anchor
// follows unless the mode is visual, and the preferred column updates when
// the motion owns it.
func (c *Cursor) apply(pos Position, mode Mode, updatePreferred bool) {
	c.active = pos
	if mode != ModeVisual {
		c.anchor = pos
	}
	if updatePreferred {
		c.preferredCol, c.hasPreferred = pos.Col, true
	}
}

// String returns a string representation of the cursor.
func (c *Cursor) String() string {
	if c.HasSelection() {
		return fmt.Sprintf("Cursor(%s..%s)", c.anchor, c.active)
	}
	return fmt.Sprintf("Cursor(%s)", c.active)
}
