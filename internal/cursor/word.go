package cursor

import (
	"unicode"

	"github.com/dshills/modalcore/internal/textstore"
)

// charClass drives the word motions. In big-word mode every non-whitespace
// character is a word character and punctuation boundaries disappear.
type charClass uint8

const (
	classWhitespace charClass = iota
	classWord
	classPunct
)

func classOf(r rune, bigWord bool) charClass {
	switch {
	case unicode.IsSpace(r):
		return classWhitespace
	case bigWord:
		return classWord
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	default:
		return classPunct
	}
}

func classAt(st *textstore.Store, offset int, bigWord bool) charClass {
	r, ok := st.RuneAt(offset)
	if !ok {
		return classWhitespace
	}
	return classOf(r, bigWord)
}

// MoveWordForward moves to the start of the next word: skip the run of the
// current class, then any whitespace. Landing on a punctuation run hops past
// the whole run, stopping on the character after it even when that is a
// single trailing whitespace.
//
// In visual mode a collapsed cursor selects the landed class run exactly:
// the anchor moves to the run start and the active end to its last cluster.
func (c *Cursor) MoveWordForward(st *textstore.Store, mode Mode, bigWord bool) (Position, bool) {
	cur := c.active
	st.ValidatePosition(cur)

	total := st.Len()
	idx := cur.Offset
	if idx >= total {
		return Position{}, false
	}

	start := classAt(st, idx, bigWord)
	for idx < total && classAt(st, idx, bigWord) == start {
		idx++
	}
	for idx < total && classAt(st, idx, bigWord) == classWhitespace {
		idx++
	}
	if idx >= total {
		return Position{}, false
	}

	landed := classAt(st, idx, bigWord)
	runStart := idx
	runEnd := idx
	for runEnd < total && classAt(st, runEnd, bigWord) == landed {
		runEnd++
	}

	if mode == ModeVisual && !c.HasSelection() {
		activeOff := st.PrevGraphemeOffset(runEnd)
		if activeOff < runStart {
			activeOff = runStart
		}
		anchor := st.PositionAt(runStart)
		pos := st.PositionAt(activeOff)
		c.anchor = anchor
		c.active = pos
		c.preferredCol, c.hasPreferred = pos.Col, true
		return pos, true
	}

	target := runStart
	if landed == classPunct {
		target = runEnd
	}
	pos := st.PositionAt(target)
	// A hop past a buffer-final punctuation run would land one past the last
	// cluster; the mode's column cap still applies.
	if max := maxColumn(st, mode, pos.Line); pos.Col > max {
		pos = textstore.NewPosition(pos.Line, max, st.GraphemeColToOffset(pos.Line, max))
	}
	c.apply(pos, mode, true)
	return pos, true
}

// MoveWordBackward moves to the start of the previous word: step back one
// character, skip whitespace backward, then scan back over the landed class
// run to its start. Starting mid-word lands on the word's own start;
// starting right after a line-leading punctuation run lands on the run
// start.
func (c *Cursor) MoveWordBackward(st *textstore.Store, mode Mode, bigWord bool) (Position, bool) {
	cur := c.active
	st.ValidatePosition(cur)

	idx := cur.Offset
	if idx == 0 {
		return Position{}, false
	}
	idx--

	for idx > 0 && classAt(st, idx, bigWord) == classWhitespace {
		idx--
	}
	landed := classAt(st, idx, bigWord)
	for idx > 0 && classAt(st, idx-1, bigWord) == landed {
		idx--
	}

	pos := st.PositionAt(idx)
	c.apply(pos, mode, true)
	return pos, true
}

// MoveWordEnd moves to the last character of the next word: advance one
// character, skip whitespace, then extend to the end of the class run.
func (c *Cursor) MoveWordEnd(st *textstore.Store, mode Mode, bigWord bool) (Position, bool) {
	cur := c.active
	st.ValidatePosition(cur)

	total := st.Len()
	idx := cur.Offset
	if idx+1 >= total {
		return Position{}, false
	}
	idx++

	for idx < total && classAt(st, idx, bigWord) == classWhitespace {
		idx++
	}
	if idx >= total {
		return Position{}, false
	}

	landed := classAt(st, idx, bigWord)
	last := idx
	for idx < total && classAt(st, idx, bigWord) == landed {
		last = idx
		idx++
	}

	pos := st.PositionAt(last)
	c.apply(pos, mode, true)
	return pos, true
}
