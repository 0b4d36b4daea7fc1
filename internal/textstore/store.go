package textstore

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingLF:
		return "\\n"
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// ParseLineEnding returns the line ending named by s ("lf", "crlf", "cr").
func ParseLineEnding(s string) (LineEnding, bool) {
	switch strings.ToLower(s) {
	case "lf":
		return LineEndingLF, true
	case "crlf":
		return LineEndingCRLF, true
	case "cr":
		return LineEndingCR, true
	default:
		return LineEndingLF, false
	}
}

// Label returns the configuration name of the line ending.
func (le LineEnding) Label() string {
	switch le {
	case LineEndingCRLF:
		return "crlf"
	case LineEndingCR:
		return "cr"
	default:
		return "lf"
	}
}

// terminator returns the rune that marks the end of a line. For CRLF this is
// the trailing LF; the line index is derived from it.
func (le LineEnding) terminator() rune {
	if le == LineEndingCR {
		return '\r'
	}
	return '\n'
}

// Store owns the character content of one buffer plus its display name.
// Content is held as a rune sequence alongside an incrementally maintained
// index of line-start offsets, so line lookups are binary searches and edits
// only touch the index entries at or after the mutation point.
//
// Invariants: content is valid Unicode text, and the line count is at least
// one (an empty buffer has exactly one empty line).
type Store struct {
	name       string
	text       []rune
	lineStarts []int // char offset of each line start; first entry is always 0
	lineEnding LineEnding
}

// New creates a store from an initial string and display name.
// Line endings in the content are normalized to the configured style.
func New(content, name string, opts ...Option) *Store {
	s := &Store{
		name:       name,
		lineEnding: LineEndingLF,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.text = []rune(s.normalizeLineEndings(content))
	s.rebuildLineIndex()
	return s
}

// normalizeLineEndings converts all line endings to the store's style.
func (s *Store) normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if seq := s.lineEnding.Sequence(); seq != "\n" {
		text = strings.ReplaceAll(text, "\n", seq)
	}
	return text
}

// rebuildLineIndex recomputes the line-start index from scratch.
func (s *Store) rebuildLineIndex() {
	term := s.lineEnding.terminator()
	s.lineStarts = s.lineStarts[:0]
	s.lineStarts = append(s.lineStarts, 0)
	for i, r := range s.text {
		if r == term {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
}

// Read accessors

// Name returns the display name of the buffer.
func (s *Store) Name() string { return s.name }

// SetName changes the display name of the buffer.
func (s *Store) SetName(name string) { s.name = name }

// LineEnding returns the store's line ending style.
func (s *Store) LineEnding() LineEnding { return s.lineEnding }

// String returns the full buffer content.
func (s *Store) String() string { return string(s.text) }

// Len returns the total character count of the buffer.
func (s *Store) Len() int { return len(s.text) }

// LineCount returns the number of lines. Always at least 1.
func (s *Store) LineCount() int { return len(s.lineStarts) }

// RuneAt returns the character at the given offset.
func (s *Store) RuneAt(offset int) (rune, bool) {
	if offset < 0 || offset >= len(s.text) {
		return 0, false
	}
	return s.text[offset], true
}

// LineStartOffset returns the character offset of the start of a line.
func (s *Store) LineStartOffset(line int) int {
	s.mustLine(line)
	return s.lineStarts[line]
}

// lineOf returns the line containing the given offset. An offset equal to
// Len() belongs to the last line.
func (s *Store) lineOf(offset int) int {
	return sort.SearchInts(s.lineStarts, offset+1) - 1
}

// visibleEndOffset returns the offset just past the last visible character of
// a line, before any terminator characters.
func (s *Store) visibleEndOffset(line int) int {
	end := len(s.text)
	if line+1 < len(s.lineStarts) {
		end = s.lineStarts[line+1]
	}
	start := s.lineStarts[line]
	for end > start && (s.text[end-1] == '\n' || s.text[end-1] == '\r') {
		end--
	}
	return end
}

// VisibleLineContent returns the text of a line with trailing line-terminator
// characters stripped. Panics if line is out of range.
func (s *Store) VisibleLineContent(line int) string {
	s.mustLine(line)
	return string(s.text[s.lineStarts[line]:s.visibleEndOffset(line)])
}

// VisualLineLength returns the character count of the visible line content.
func (s *Store) VisualLineLength(line int) int {
	s.mustLine(line)
	return s.visibleEndOffset(line) - s.lineStarts[line]
}

// Mutation

// InsertText inserts text at the given character offset and returns the
// number of characters actually inserted after line-ending normalization.
func (s *Store) InsertText(offset int, text string) int {
	s.ValidateOffset(offset)
	runes := []rune(s.normalizeLineEndings(text))
	if len(runes) == 0 {
		return 0
	}
	s.text = slices.Insert(s.text, offset, runes...)
	s.spliceLineIndexInsert(offset, runes)
	return len(runes)
}

// InsertChar inserts a single character at the given offset and returns the
// number of characters inserted (more than one when the character is a
// newline and the store uses CRLF endings).
func (s *Store) InsertChar(offset int, r rune) int {
	return s.InsertText(offset, string(r))
}

// InsertNewline inserts a line break at the given offset and returns the
// number of characters inserted.
func (s *Store) InsertNewline(offset int) int {
	return s.InsertText(offset, "\n")
}

// Remove deletes the character span [start, end) and returns the number of
// characters removed. Panics on an invalid span.
func (s *Store) Remove(start, end int) int {
	if start < 0 || start > end || end > len(s.text) {
		panic(fmt.Sprintf("textstore: invalid span [%d, %d) for buffer of %d chars", start, end, len(s.text)))
	}
	if start == end {
		return 0
	}
	s.text = slices.Delete(s.text, start, end)
	s.spliceLineIndexRemove(start, end)
	return end - start
}

// spliceLineIndexInsert updates the line-start index for an insertion of the
// given runes at offset. Starts after the insertion point shift right; a new
// start is added after every inserted terminator.
func (s *Store) spliceLineIndexInsert(offset int, runes []rune) {
	n := len(runes)
	i := sort.SearchInts(s.lineStarts, offset+1)
	for j := i; j < len(s.lineStarts); j++ {
		s.lineStarts[j] += n
	}
	term := s.lineEnding.terminator()
	var added []int
	for j, r := range runes {
		if r == term {
			added = append(added, offset+j+1)
		}
	}
	if len(added) > 0 {
		s.lineStarts = slices.Insert(s.lineStarts, i, added...)
	}
}

// spliceLineIndexRemove updates the line-start index for a removal of the
// span [start, end). Starts inside the span disappear with their
// terminators; starts after it shift left.
func (s *Store) spliceLineIndexRemove(start, end int) {
	n := end - start
	lo := sort.SearchInts(s.lineStarts, start+1)
	hi := sort.SearchInts(s.lineStarts, end+1)
	s.lineStarts = slices.Delete(s.lineStarts, lo, hi)
	for j := lo; j < len(s.lineStarts); j++ {
		s.lineStarts[j] -= n
	}
}

// Apply applies a single edit record to the buffer and returns the realized
// edit (NewText normalized, coordinates unchanged).
func (s *Store) Apply(edit Edit) Edit {
	s.Remove(edit.Start, edit.End)
	normalized := s.normalizeLineEndings(edit.NewText)
	if normalized != "" {
		s.InsertText(edit.Start, normalized)
	}
	return Edit{Start: edit.Start, End: edit.End, NewText: normalized}
}

// Correctness

// ValidateOffset panics if the offset lies outside [0, Len()].
func (s *Store) ValidateOffset(offset int) {
	if offset < 0 || offset > len(s.text) {
		panic(fmt.Sprintf("textstore: offset %d out of range [0, %d]", offset, len(s.text)))
	}
}

// ValidatePosition panics unless the position's three coordinates agree with
// the current buffer content. This is the correctness backbone of the cursor
// subsystem: a failure here means a caller reused a stale Position.
func (s *Store) ValidatePosition(pos Position) {
	if pos.Line < 0 || pos.Line >= len(s.lineStarts) {
		panic(fmt.Sprintf("textstore: line %d out of range [0, %d)", pos.Line, len(s.lineStarts)))
	}
	s.ValidateOffset(pos.Offset)
	if got := s.GraphemeColToOffset(pos.Line, pos.Col); got != pos.Offset {
		panic(fmt.Sprintf("textstore: position %s does not match line/col (offset should be %d)", pos, got))
	}
}

// mustLine panics if line is out of range.
func (s *Store) mustLine(line int) {
	if line < 0 || line >= len(s.lineStarts) {
		panic(fmt.Sprintf("textstore: line %d out of range [0, %d)", line, len(s.lineStarts)))
	}
}
