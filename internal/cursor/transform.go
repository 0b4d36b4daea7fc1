package cursor

import "github.com/dshills/modalcore/internal/textstore"

// Edit is an alias for textstore.Edit for convenience.
type Edit = textstore.Edit

// TransformOffset rebases a character offset through an edit that has
// already been applied to the buffer.
//
// Rules:
//   - edit entirely before the offset (insertions at the offset included):
//     shift by the edit's delta
//   - edit starting at or after the offset (deletions starting at it
//     included): offset unchanged
//   - edit spanning the offset: collapse to the end of the new text
func TransformOffset(offset int, edit Edit) int {
	if edit.End <= offset {
		return offset - edit.OldLen() + edit.NewLen()
	}
	if edit.Start >= offset {
		return offset
	}
	return edit.Start + edit.NewLen()
}

// TransformPosition rebases a position through an edit, re-deriving line and
// column from the shifted offset against current buffer content.
func TransformPosition(st *textstore.Store, pos Position, edit Edit) Position {
	return st.PositionAt(TransformOffset(pos.Offset, edit))
}

// TransformCursor rebases both ends of a cursor through an edit. The
// preferred column survives untouched: rebase moves the cursor with the
// text, it does not express a new column intent.
func TransformCursor(st *textstore.Store, c *Cursor, edit Edit) {
	c.anchor = TransformPosition(st, c.anchor, edit)
	c.active = TransformPosition(st, c.active, edit)
}
