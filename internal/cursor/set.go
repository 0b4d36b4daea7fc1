package cursor

import (
	"sort"

	"github.com/dshills/modalcore/internal/textstore"
)

// Span is an ordered pair of Positions delimiting a selection, end
// exclusive.
type Span struct {
	Start Position
	End   Position
}

// Set coordinates many cursors sharing one Store so edits and motions behave
// as if issued against independent cursors while physically mutating one
// shared sequence. One cursor is marked primary; its position drives
// UI-facing single-cursor concerns.
//
// Storage order is not semantically meaningful: offset order is re-derived
// whenever an operation needs it.
type Set struct {
	cursors      []Cursor
	primaryIndex int
}

// NewSet creates a set with a single cursor at the origin.
func NewSet() *Set {
	return &Set{cursors: []Cursor{New()}}
}

// Count returns the number of cursors. Always at least 1.
func (s *Set) Count() int {
	return len(s.cursors)
}

// All returns a copy of the cursors, safe to inspect without affecting the
// set.
func (s *Set) All() []Cursor {
	out := make([]Cursor, len(s.cursors))
	copy(out, s.cursors)
	return out
}

// Primary returns the primary cursor.
func (s *Set) Primary() Cursor {
	return s.cursors[s.primaryIndex]
}

// PrimaryIndex returns the index of the primary cursor.
func (s *Set) PrimaryIndex() int {
	return s.primaryIndex
}

// PrimaryPosition returns the active position of the primary cursor.
func (s *Set) PrimaryPosition() Position {
	return s.cursors[s.primaryIndex].active
}

// Positions returns the active position of every cursor in storage order.
func (s *Set) Positions() []Position {
	out := make([]Position, len(s.cursors))
	for i := range s.cursors {
		out[i] = s.cursors[i].active
	}
	return out
}

// SelectionSpans returns the inclusive selection span of every selecting
// cursor.
func (s *Set) SelectionSpans(st *textstore.Store) []Span {
	var out []Span
	for i := range s.cursors {
		if start, end, ok := s.cursors[i].SelectionSpan(st); ok {
			out = append(out, Span{Start: start, End: end})
		}
	}
	return out
}

// AddCursor adds a cursor at the given position, clamped through MoveTo, and
// merges immediately so a duplicate offset is absorbed.
func (s *Set) AddCursor(st *textstore.Store, pos Position) {
	c := New()
	c.MoveTo(st, pos, MoveOptions{UpdatePreferred: true})
	s.cursors = append(s.cursors, c)
	s.MergeOverlapping()
}

// Replace swaps in a new cursor layout, merging duplicates. An empty slice
// resets the set to a single cursor at the origin. primary indexes the
// pre-merge slice; out-of-range values fall back to 0.
func (s *Set) Replace(st *textstore.Store, cursors []Cursor, primary int) {
	if len(cursors) == 0 {
		s.cursors = []Cursor{New()}
		s.primaryIndex = 0
		return
	}
	s.cursors = make([]Cursor, len(cursors))
	copy(s.cursors, cursors)
	if primary < 0 || primary >= len(s.cursors) {
		primary = 0
	}
	s.primaryIndex = primary
	s.MergeOverlapping()
}

// ClearSecondary discards every cursor but the primary.
func (s *Set) ClearSecondary() {
	if len(s.cursors) <= 1 {
		return
	}
	primary := s.cursors[s.primaryIndex]
	s.cursors = s.cursors[:1]
	s.cursors[0] = primary
	s.primaryIndex = 0
}

// MergeOverlapping sorts cursors by active offset and collapses duplicates,
// keeping the first occurrence. The primary survives by offset lookup; when
// its offset was the duplicate removed, primacy falls back to index 0.
// Merging an already-merged set is a no-op.
func (s *Set) MergeOverlapping() {
	if len(s.cursors) <= 1 {
		return
	}
	primaryOffset := s.cursors[s.primaryIndex].active.Offset

	sort.SliceStable(s.cursors, func(i, j int) bool {
		return s.cursors[i].active.Offset < s.cursors[j].active.Offset
	})

	merged := s.cursors[:1]
	for _, c := range s.cursors[1:] {
		if c.active.Offset == merged[len(merged)-1].active.Offset {
			continue
		}
		merged = append(merged, c)
	}
	s.cursors = merged

	s.primaryIndex = 0
	for i := range s.cursors {
		if s.cursors[i].active.Offset == primaryOffset {
			s.primaryIndex = i
			break
		}
	}
}

// RefreshPositions re-derives every cursor's offset from its stored
// (line, col) against current buffer content, clamping coordinates that no
// longer exist. This catches cursors whose line/col is still nominally
// correct but whose offset went stale through indirect effects, such as an
// earlier line changing length without the cursor itself moving.
func (s *Set) RefreshPositions(st *textstore.Store) {
	for i := range s.cursors {
		c := &s.cursors[i]
		c.anchor = refreshPosition(st, c.anchor)
		c.active = refreshPosition(st, c.active)
	}
}

func refreshPosition(st *textstore.Store, pos Position) Position {
	line := pos.Line
	if last := st.LineCount() - 1; line > last {
		line = last
	}
	col := pos.Col
	if max := st.GraphemeLen(line); col > max {
		col = max
	}
	return textstore.NewPosition(line, col, st.GraphemeColToOffset(line, col))
}

// Motion broadcast

// MoveLeft broadcasts a left motion to every cursor.
func (s *Set) MoveLeft(st *textstore.Store, mode Mode) {
	for i := range s.cursors {
		s.cursors[i].MoveLeft(st, mode)
	}
	s.MergeOverlapping()
}

// MoveRight broadcasts a right motion to every cursor.
func (s *Set) MoveRight(st *textstore.Store, mode Mode) {
	for i := range s.cursors {
		s.cursors[i].MoveRight(st, mode)
	}
	s.MergeOverlapping()
}

// MoveUp broadcasts an up motion to every cursor.
func (s *Set) MoveUp(st *textstore.Store, mode Mode) {
	for i := range s.cursors {
		s.cursors[i].MoveUp(st, mode)
	}
	s.MergeOverlapping()
}

// MoveDown broadcasts a down motion to every cursor.
func (s *Set) MoveDown(st *textstore.Store, mode Mode) {
	for i := range s.cursors {
		s.cursors[i].MoveDown(st, mode)
	}
	s.MergeOverlapping()
}

// MoveWordForward broadcasts a forward word motion to every cursor.
func (s *Set) MoveWordForward(st *textstore.Store, mode Mode, bigWord bool) {
	for i := range s.cursors {
		s.cursors[i].MoveWordForward(st, mode, bigWord)
	}
	s.MergeOverlapping()
}

// MoveWordBackward broadcasts a backward word motion to every cursor.
func (s *Set) MoveWordBackward(st *textstore.Store, mode Mode, bigWord bool) {
	for i := range s.cursors {
		s.cursors[i].MoveWordBackward(st, mode, bigWord)
	}
	s.MergeOverlapping()
}

// MoveWordEnd broadcasts a word-end motion to every cursor.
func (s *Set) MoveWordEnd(st *textstore.Store, mode Mode, bigWord bool) {
	for i := range s.cursors {
		s.cursors[i].MoveWordEnd(st, mode, bigWord)
	}
	s.MergeOverlapping()
}

// AdjustForMode reconciles every cursor with a mode change.
func (s *Set) AdjustForMode(st *textstore.Store, mode Mode) {
	for i := range s.cursors {
		s.cursors[i].AdjustForMode(st, mode)
	}
	s.MergeOverlapping()
}

// Editing

// InsertChar inserts a character at every cursor, applying insertions in
// ascending offset order and rebasing the rest after each one.
func (s *Set) InsertChar(st *textstore.Store, r rune) {
	s.insertAtEach(st, func(Position) string { return string(r) })
}

// InsertText inserts the same text at every cursor in ascending offset
// order.
func (s *Set) InsertText(st *textstore.Store, text string) {
	s.insertAtEach(st, func(Position) string { return text })
}

// InsertNewline inserts a line break at every cursor in ascending offset
// order, leaving each cursor at the start of its new line.
func (s *Set) InsertNewline(st *textstore.Store) {
	s.insertAtEach(st, func(Position) string { return "\n" })
}

// insertAtEach applies the ordering protocol for insertions: ascending
// offset order keeps every not-yet-processed cursor's offset valid, the
// edited cursor advances by the inserted length, and everyone else is
// rebased through the edit record.
func (s *Set) insertAtEach(st *textstore.Store, textFor func(pos Position) string) {
	for _, i := range s.orderedIndices(false, nil) {
		pos := s.cursors[i].Position()
		st.ValidatePosition(pos)

		realized := st.Apply(textstore.Insertion(pos.Offset, textFor(pos)))
		dest := st.PositionAt(pos.Offset + realized.NewLen())
		s.cursors[i].MoveTo(st, dest, MoveOptions{UpdatePreferred: true})
		s.rebaseOthers(st, i, realized)
	}
	s.MergeOverlapping()
	s.RefreshPositions(st)
}

// Backspace removes the grapheme before every cursor in descending offset
// order. A cursor at offset 0 is a no-op. Removing a line's leading break
// joins it onto the previous line and the cursor lands at that line's
// original end.
func (s *Set) Backspace(st *textstore.Store) {
	for _, i := range s.orderedIndices(true, nil) {
		pos := s.cursors[i].Position()
		st.ValidatePosition(pos)
		if pos.Offset == 0 {
			continue
		}

		start := st.PrevGraphemeOffset(pos.Offset)
		realized := st.Apply(textstore.Deletion(start, pos.Offset))
		s.cursors[i].MoveTo(st, st.PositionAt(start), MoveOptions{UpdatePreferred: true})
		s.rebaseOthers(st, i, realized)
	}
	s.MergeOverlapping()
	s.RefreshPositions(st)
}

// Delete removes the grapheme under every cursor in descending offset
// order. A cursor at the very end of the buffer is a no-op.
func (s *Set) Delete(st *textstore.Store) {
	for _, i := range s.orderedIndices(true, nil) {
		pos := s.cursors[i].Position()
		st.ValidatePosition(pos)

		end := st.NextGraphemeOffset(pos.Offset)
		if end == pos.Offset {
			continue
		}
		realized := st.Apply(textstore.Deletion(pos.Offset, end))
		s.cursors[i].MoveTo(st, st.PositionAt(pos.Offset), MoveOptions{UpdatePreferred: true})
		s.rebaseOthers(st, i, realized)
	}
	s.MergeOverlapping()
	s.RefreshPositions(st)
}

// DeleteSelection removes every selecting cursor's inclusive span in
// descending span-start order and collapses each cursor to the start of its
// removed range. Collapsed cursors are no-ops.
func (s *Set) DeleteSelection(st *textstore.Store) {
	key := func(i int) int {
		if start, _, ok := s.cursors[i].SelectionSpan(st); ok {
			return start.Offset
		}
		return s.cursors[i].active.Offset
	}
	for _, i := range s.orderedIndices(true, key) {
		start, end, ok := s.cursors[i].SelectionSpan(st)
		if !ok {
			continue
		}
		realized := st.Apply(textstore.Deletion(start.Offset, end.Offset))
		s.cursors[i].MoveTo(st, st.PositionAt(start.Offset), MoveOptions{UpdatePreferred: true})
		s.rebaseOthers(st, i, realized)
	}
	s.MergeOverlapping()
	s.RefreshPositions(st)
}

// rebaseOthers shifts every cursor but the edited one through an applied
// edit. The edited cursor already computed its own destination.
func (s *Set) rebaseOthers(st *textstore.Store, edited int, edit textstore.Edit) {
	for j := range s.cursors {
		if j == edited {
			continue
		}
		TransformCursor(st, &s.cursors[j], edit)
	}
}

// orderedIndices returns cursor indices sorted by the key (active offset
// when nil), ascending or descending. The ordering is a correctness
// requirement for batched edits, not an optimization.
func (s *Set) orderedIndices(descending bool, key func(i int) int) []int {
	if key == nil {
		key = func(i int) int { return s.cursors[i].active.Offset }
	}
	idx := make([]int, len(s.cursors))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if descending {
			return key(idx[a]) > key(idx[b])
		}
		return key(idx[a]) < key(idx[b])
	})
	return idx
}
