// Package cursor implements editing points over a textstore.Store: single
// cursors with selections and vim-style motions, and the Set coordinating
// many cursors sharing one buffer.
//
// A Cursor is an anchor/active pair of Positions. Equality of the two
// encodes "no selection"; the inclusive selection range is the min/max of
// the pair by offset with the end extended by one grapheme so the character
// under the active endpoint is included. A sticky preferred column keeps
// vertical motion on the visually intended column across lines of different
// lengths.
//
// Motions return (Position, bool); false means the motion was a no-op at a
// boundary and the cursor is unchanged. That is a legitimate steady state,
// not an error. Coordinate-invariant violations, by contrast, panic: they
// indicate a stale Position reused after a mutation it did not account for.
//
// The Set enforces two protocols so edits at one cursor cannot corrupt the
// positions of the others: batched insertions apply in ascending offset
// order and deletions in descending order, and after each single-cursor edit
// every other cursor is rebased through the edit record. Any batch ends with
// an overlap merge, so no two cursors ever share an active offset.
package cursor
