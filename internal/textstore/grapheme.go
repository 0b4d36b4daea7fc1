package textstore

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// eachCluster calls fn for every grapheme cluster of s in order, stopping
// early when fn returns false.
func eachCluster(s string, fn func(cluster string) bool) {
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if !fn(cluster) {
			return
		}
	}
}

// GraphemeLen returns the number of grapheme clusters in the visible content
// of a line. This is the unit cursors use for columns: a multi-codepoint
// emoji or combining sequence counts as one.
func (s *Store) GraphemeLen(line int) int {
	return uniseg.GraphemeClusterCount(s.VisibleLineContent(line))
}

// GraphemeSubstring returns up to count grapheme clusters of a line starting
// at cluster index start. Used for horizontal viewport clipping.
func (s *Store) GraphemeSubstring(line, start, count int) string {
	content := s.VisibleLineContent(line)
	var b strings.Builder
	i := 0
	eachCluster(content, func(cluster string) bool {
		if i >= start+count {
			return false
		}
		if i >= start {
			b.WriteString(cluster)
		}
		i++
		return true
	})
	return b.String()
}

// GraphemeColToOffset translates (line, grapheme column) to an absolute
// character offset by walking the line's clusters and summing their
// character counts. col == GraphemeLen(line) is valid and denotes the
// position just past the last cluster. Panics when col exceeds that.
func (s *Store) GraphemeColToOffset(line, col int) int {
	content := s.VisibleLineContent(line)
	if col < 0 {
		panic(fmt.Sprintf("textstore: negative column %d", col))
	}
	chars := 0
	i := 0
	eachCluster(content, func(cluster string) bool {
		if i == col {
			return false
		}
		chars += utf8.RuneCountInString(cluster)
		i++
		return true
	})
	if i < col {
		panic(fmt.Sprintf("textstore: column %d exceeds grapheme length %d of line %d", col, i, line))
	}
	return s.lineStarts[line] + chars
}

// OffsetToLineCol translates an absolute character offset back to
// (line, grapheme column). Offsets inside a cluster floor to the cluster
// start; offsets on a line terminator map to the end-of-line column.
func (s *Store) OffsetToLineCol(offset int) (line, col int) {
	s.ValidateOffset(offset)
	line = s.lineOf(offset)
	rel := offset - s.lineStarts[line]
	chars := 0
	eachCluster(s.VisibleLineContent(line), func(cluster string) bool {
		n := utf8.RuneCountInString(cluster)
		if chars+n > rel {
			return false
		}
		chars += n
		col++
		return true
	})
	return line, col
}

// PositionAt returns the fully synchronized Position for an offset. Offsets
// that do not sit on a cluster boundary snap back to the enclosing boundary
// so the returned Position always satisfies the coordinate invariant.
func (s *Store) PositionAt(offset int) Position {
	line, col := s.OffsetToLineCol(offset)
	return Position{Line: line, Col: col, Offset: s.GraphemeColToOffset(line, col)}
}

// PrevGraphemeOffset returns the previous grapheme boundary before offset,
// saturating at 0. Stepping from a line start crosses onto the end of the
// previous line, skipping the whole terminator sequence.
func (s *Store) PrevGraphemeOffset(offset int) int {
	s.ValidateOffset(offset)
	if offset == 0 {
		return 0
	}
	line := s.lineOf(offset)
	start := s.lineStarts[line]
	if offset == start {
		return s.visibleEndOffset(line - 1)
	}
	vend := s.visibleEndOffset(line)
	if offset > vend {
		return vend
	}
	last := start
	pos := start
	eachCluster(s.VisibleLineContent(line), func(cluster string) bool {
		if pos >= offset {
			return false
		}
		last = pos
		pos += utf8.RuneCountInString(cluster)
		return true
	})
	return last
}

// NextGraphemeOffset returns the next grapheme boundary after offset,
// saturating at Len(). Stepping from the visible end of a line crosses onto
// the start of the next line, skipping the whole terminator sequence.
func (s *Store) NextGraphemeOffset(offset int) int {
	s.ValidateOffset(offset)
	total := len(s.text)
	if offset >= total {
		return total
	}
	line := s.lineOf(offset)
	vend := s.visibleEndOffset(line)
	if offset >= vend {
		if line+1 < len(s.lineStarts) {
			return s.lineStarts[line+1]
		}
		return total
	}
	pos := s.lineStarts[line]
	eachCluster(s.VisibleLineContent(line), func(cluster string) bool {
		n := utf8.RuneCountInString(cluster)
		pos += n
		return pos <= offset
	})
	return pos
}
