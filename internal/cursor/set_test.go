package cursor

import (
	"testing"

	"github.com/dshills/modalcore/internal/textstore"
)

// Cursor Set Tests

func setAt(st *textstore.Store, offsets ...int) *Set {
	s := NewSet()
	cursors := make([]Cursor, len(offsets))
	for i, o := range offsets {
		pos := st.PositionAt(o)
		cursors[i] = At(st, pos, pos)
	}
	s.Replace(st, cursors, 0)
	return s
}

func offsets(s *Set) []int {
	out := make([]int, 0, s.Count())
	for _, pos := range s.Positions() {
		out = append(out, pos.Offset)
	}
	return out
}

func assertDistinctOffsets(t *testing.T, s *Set) {
	t.Helper()
	seen := make(map[int]bool)
	for _, o := range offsets(s) {
		if seen[o] {
			t.Errorf("duplicate cursor offset %d", o)
		}
		seen[o] = true
	}
}

func TestNewSet(t *testing.T) {
	s := NewSet()
	if s.Count() != 1 {
		t.Errorf("expected 1 cursor, got %d", s.Count())
	}
	if !s.PrimaryPosition().IsZero() {
		t.Errorf("expected primary at origin, got %s", s.PrimaryPosition())
	}
}

func TestAddCursorMergesDuplicate(t *testing.T) {
	st := textstore.New("abcdef", "test")
	s := setAt(st, 2)
	s.AddCursor(st, st.PositionAt(2))
	if s.Count() != 1 {
		t.Errorf("duplicate cursor should be absorbed, got %d cursors", s.Count())
	}
}

func TestAddCursorDistinct(t *testing.T) {
	st := textstore.New("abcdef", "test")
	s := setAt(st, 2)
	s.AddCursor(st, st.PositionAt(4))
	if s.Count() != 2 {
		t.Errorf("expected 2 cursors, got %d", s.Count())
	}
	assertDistinctOffsets(t, s)
}

func TestClearSecondary(t *testing.T) {
	st := textstore.New("abcdef", "test")
	s := setAt(st, 4, 1)
	s.ClearSecondary()
	if s.Count() != 1 {
		t.Errorf("expected 1 cursor, got %d", s.Count())
	}
	if got := s.PrimaryPosition().Offset; got != 4 {
		t.Errorf("expected primary offset 4 to survive, got %d", got)
	}
	if s.PrimaryIndex() != 0 {
		t.Errorf("expected primary index 0, got %d", s.PrimaryIndex())
	}
}

func TestMergeIdempotent(t *testing.T) {
	st := textstore.New("abcdef", "test")
	s := setAt(st, 5, 2, 2, 4)
	before := offsets(s)
	beforePrimary := s.PrimaryIndex()

	s.MergeOverlapping()
	after := offsets(s)

	if len(before) != len(after) || s.PrimaryIndex() != beforePrimary {
		t.Fatalf("merge of a merged set changed it: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("offset %d changed: %d -> %d", i, before[i], after[i])
		}
	}
}

func TestMergeKeepsPrimaryByOffset(t *testing.T) {
	st := textstore.New("abcdef", "test")
	s := NewSet()
	a := At(st, st.PositionAt(4), st.PositionAt(4))
	b := At(st, st.PositionAt(1), st.PositionAt(1))
	s.Replace(st, []Cursor{a, b}, 0)

	// Sorting moved the offset-4 cursor to index 1; primacy must follow it.
	if got := s.PrimaryPosition().Offset; got != 4 {
		t.Errorf("expected primary offset 4, got %d", got)
	}
	if s.PrimaryIndex() != 1 {
		t.Errorf("expected primary index 1, got %d", s.PrimaryIndex())
	}
}

func TestBroadcastMotion(t *testing.T) {
	st := textstore.New("abc\ndef", "test")
	s := setAt(st, 0, 4)
	s.MoveRight(st, ModeNormal)

	want := []int{1, 5}
	got := offsets(s)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cursor %d: expected offset %d, got %d", i, want[i], got[i])
		}
	}
}

func TestBroadcastMotionMergesAtBoundary(t *testing.T) {
	st := textstore.New("abc", "test")
	s := setAt(st, 1, 2)
	// Both cursors push right; the one already at the cap stays and the other
	// lands on it, so they merge.
	s.MoveRight(st, ModeNormal)
	if s.Count() != 1 {
		t.Errorf("expected merge to 1 cursor, got %d", s.Count())
	}
	assertDistinctOffsets(t, s)
}

func TestMultiCursorInsertChar(t *testing.T) {
	// Ascending application with rebase: insert at 2 first, the offset-5
	// cursor shifts to 6, insert there into "abXcdef".
	st := textstore.New("abcdef", "test")
	s := setAt(st, 2, 5)
	s.InsertChar(st, 'X')

	if got := st.String(); got != "abXcdeXf" {
		t.Errorf("expected %q, got %q", "abXcdeXf", got)
	}
	want := []int{3, 7}
	got := offsets(s)
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected cursor offsets %v, got %v", want, got)
	}
	assertDistinctOffsets(t, s)
}

func TestMultiCursorInsertOrderIndependent(t *testing.T) {
	// The batched insert must equal one-at-a-time application from the
	// rightmost offset leftward.
	st := textstore.New("abcdef", "test")
	s := setAt(st, 5, 1, 3) // deliberately unsorted
	s.InsertText(st, "ZZ")

	manual := textstore.New("abcdef", "test")
	for _, o := range []int{5, 3, 1} {
		manual.InsertText(o, "ZZ")
	}
	if st.String() != manual.String() {
		t.Errorf("expected %q, got %q", manual.String(), st.String())
	}
	assertDistinctOffsets(t, s)
}

func TestMultiCursorInsertNewline(t *testing.T) {
	st := textstore.New("abc", "test")
	s := setAt(st, 1)
	s.InsertNewline(st)

	if got := st.String(); got != "a\nbc" {
		t.Errorf("expected %q, got %q", "a\nbc", got)
	}
	pos := s.PrimaryPosition()
	if pos.Line != 1 || pos.Col != 0 {
		t.Errorf("expected cursor at start of new line, got %s", pos)
	}
}

func TestBackspaceJoinsLines(t *testing.T) {
	// Backspace at column 0 of a non-first line removes the break and lands
	// at the previous line's original end.
	st := textstore.New("hello\nworld", "test")
	s := NewSet()
	pos := textstore.NewPosition(1, 0, 6)
	s.Replace(st, []Cursor{At(st, pos, pos)}, 0)

	s.Backspace(st)

	if got := st.String(); got != "helloworld" {
		t.Errorf("expected %q, got %q", "helloworld", got)
	}
	got := s.PrimaryPosition()
	if got.Line != 0 || got.Col != 5 {
		t.Errorf("expected (0, 5), got %s", got)
	}
}

func TestBackspaceAtBufferStart(t *testing.T) {
	st := textstore.New("abc", "test")
	s := setAt(st, 0)
	s.Backspace(st)
	if got := st.String(); got != "abc" {
		t.Errorf("backspace at offset 0 should be a no-op, got %q", got)
	}
}

func TestMultiCursorBackspace(t *testing.T) {
	st := textstore.New("abc\ndef", "test")
	s := setAt(st, 2, 6)
	s.Backspace(st)

	if got := st.String(); got != "ac\ndf" {
		t.Errorf("expected %q, got %q", "ac\ndf", got)
	}
	want := []int{1, 4}
	got := offsets(s)
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected cursor offsets %v, got %v", want, got)
	}
}

func TestDeleteUnderCursor(t *testing.T) {
	st := textstore.New("abc", "test")
	s := setAt(st, 1)
	s.Delete(st)
	if got := st.String(); got != "ac" {
		t.Errorf("expected %q, got %q", "ac", got)
	}
	if got := s.PrimaryPosition().Offset; got != 1 {
		t.Errorf("expected cursor to stay at 1, got %d", got)
	}
}

func TestDeleteAtBufferEnd(t *testing.T) {
	st := textstore.New("abc", "test")
	s := setAt(st, 3)
	s.Delete(st)
	if got := st.String(); got != "abc" {
		t.Errorf("delete at buffer end should be a no-op, got %q", got)
	}
}

func TestDeleteSelectionAcrossLines(t *testing.T) {
	// The inclusive span (active extended one grapheme) disappears and the
	// cursor collapses to the span start.
	st := textstore.New("hello\nworld", "test")
	s := NewSet()
	c := At(st, st.PositionAt(2), st.PositionAt(7))
	s.Replace(st, []Cursor{c}, 0)

	s.DeleteSelection(st)

	if got := st.String(); got != "herld" {
		t.Errorf("expected %q, got %q", "herld", got)
	}
	pos := s.PrimaryPosition()
	if pos.Line != 0 || pos.Col != 2 || pos.Offset != 2 {
		t.Errorf("expected collapse to (0:2@2), got %s", pos)
	}
	primary := s.Primary()
	if primary.HasSelection() {
		t.Error("selection should have collapsed")
	}
}

func TestDeleteSelectionSkipsCollapsed(t *testing.T) {
	st := textstore.New("abcdef", "test")
	s := NewSet()
	selecting := At(st, st.PositionAt(3), st.PositionAt(4))
	collapsed := At(st, st.PositionAt(0), st.PositionAt(0))
	s.Replace(st, []Cursor{selecting, collapsed}, 0)

	s.DeleteSelection(st)

	if got := st.String(); got != "abcf" {
		t.Errorf("expected %q, got %q", "abcf", got)
	}
	if s.Count() != 2 {
		t.Errorf("expected 2 cursors, got %d", s.Count())
	}
}

func TestRefreshPositions(t *testing.T) {
	st := textstore.New("abc\ndef", "test")
	s := setAt(st, 5) // (1, 1)

	// Mutate behind the set's back, then refresh: line/col is kept, offset
	// re-derived.
	st.InsertText(0, "XY")
	s.RefreshPositions(st)

	pos := s.PrimaryPosition()
	if pos.Line != 1 || pos.Col != 1 || pos.Offset != 7 {
		t.Errorf("expected (1:1@7), got %s", pos)
	}
	st.ValidatePosition(pos)
}

func TestRefreshPositionsClamps(t *testing.T) {
	st := textstore.New("abc\ndef", "test")
	s := setAt(st, 6) // (1, 2)

	st.Remove(3, 7) // drop the second line
	s.RefreshPositions(st)

	pos := s.PrimaryPosition()
	if pos.Line != 0 || pos.Col != 2 {
		t.Errorf("expected clamp to (0, 2), got %s", pos)
	}
	st.ValidatePosition(pos)
}

func TestEditsMergeColliders(t *testing.T) {
	// Two cursors whose edits land them on the same offset end as one.
	st := textstore.New("ab", "test")
	s := setAt(st, 1, 2)
	s.Backspace(st)

	if got := st.String(); got != "" {
		t.Errorf("expected empty buffer, got %q", got)
	}
	if s.Count() != 1 {
		t.Errorf("expected cursors merged to 1, got %d", s.Count())
	}
	assertDistinctOffsets(t, s)
}
