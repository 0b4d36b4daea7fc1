package cursor

import "github.com/dshills/modalcore/internal/textstore"

// MoveLeft moves one grapheme left within the current line. Returns false at
// column 0.
func (c *Cursor) MoveLeft(st *textstore.Store, mode Mode) (Position, bool) {
	cur := c.active
	st.ValidatePosition(cur)

	if cur.Col == 0 {
		return Position{}, false
	}
	col := cur.Col - 1
	pos := textstore.NewPosition(cur.Line, col, st.GraphemeColToOffset(cur.Line, col))
	c.apply(pos, mode, true)
	return pos, true
}

// MoveRight moves one grapheme right within the current line. The reachable
// maximum depends on the mode: one past the last cluster in insert mode,
// capped at the last cluster otherwise.
func (c *Cursor) MoveRight(st *textstore.Store, mode Mode) (Position, bool) {
	cur := c.active
	st.ValidatePosition(cur)

	if cur.Col >= maxColumn(st, mode, cur.Line) {
		return Position{}, false
	}
	col := cur.Col + 1
	pos := textstore.NewPosition(cur.Line, col, st.GraphemeColToOffset(cur.Line, col))
	c.apply(pos, mode, true)
	return pos, true
}

// MoveUp moves to the previous line, keeping the preferred column when one
// is set. The preferred column itself is not updated, so a chain of vertical
// motions remembers the column the user started from.
func (c *Cursor) MoveUp(st *textstore.Store, mode Mode) (Position, bool) {
	cur := c.active
	st.ValidatePosition(cur)

	if cur.Line == 0 {
		return Position{}, false
	}
	return c.moveVertical(st, mode, cur, cur.Line-1), true
}

// MoveDown moves to the next line with the same column rules as MoveUp.
func (c *Cursor) MoveDown(st *textstore.Store, mode Mode) (Position, bool) {
	cur := c.active
	st.ValidatePosition(cur)

	if cur.Line+1 >= st.LineCount() {
		return Position{}, false
	}
	return c.moveVertical(st, mode, cur, cur.Line+1), true
}

func (c *Cursor) moveVertical(st *textstore.Store, mode Mode, cur Position, target int) Position {
	col := cur.Col
	if c.hasPreferred {
		col = c.preferredCol
	}
	if max := maxColumn(st, mode, target); col > max {
		col = max
	}
	pos := textstore.NewPosition(target, col, st.GraphemeColToOffset(target, col))
	c.apply(pos, mode, false)
	return pos
}
