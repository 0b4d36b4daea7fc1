// Package textstore provides Unicode-correct text storage for the editing core.
//
// A Store owns the character content of one buffer and translates between the
// three coordinate systems the rest of the core works in:
//
//   - character offsets: absolute rune counts from the start of the buffer,
//     the store's native addressing unit
//   - line indexes: derived from a line-start index maintained incrementally
//     across edits
//   - grapheme columns: cluster counts into the visible part of a line, the
//     unit cursors use so that a multi-codepoint emoji or combining sequence
//     is one column
//
// The store has no notion of cursors. Raw mutation (InsertText, Remove)
// shifts content only; all offset and column bookkeeping belongs to the
// caller.
//
// Out-of-range arguments and coordinate mismatches are programming errors,
// not runtime conditions: ValidateOffset and ValidatePosition panic with a
// descriptive message rather than repairing a corrupted coordinate.
package textstore
