package editor

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/modalcore/internal/cursor"
	"github.com/dshills/modalcore/internal/textstore"
)

// Re-export commonly used types for convenience.
type (
	// Position binds (line, grapheme column, character offset).
	Position = textstore.Position

	// LineEnding specifies the line ending style.
	LineEnding = textstore.LineEnding

	// Mode is the active editing mode.
	Mode = cursor.Mode

	// Span delimits a selection, end exclusive.
	Span = cursor.Span
)

// Re-export constants.
const (
	ModeNormal = cursor.ModeNormal
	ModeInsert = cursor.ModeInsert
	ModeVisual = cursor.ModeVisual

	LineEndingLF   = textstore.LineEndingLF
	LineEndingCRLF = textstore.LineEndingCRLF
	LineEndingCR   = textstore.LineEndingCR
)

// Editor combines one text store, one cursor set, and the active editing
// mode behind a thread-safe API. It is the single entry point the
// key-handling and rendering layers talk to.
type Editor struct {
	mu sync.RWMutex

	store   *textstore.Store
	cursors *cursor.Set
	mode    cursor.Mode

	sessionID  string
	maxCursors int

	// Initialization
	initContent string
	name        string
	lineEnding  textstore.LineEnding
}

// New creates an editor session with the given options.
func New(opts ...Option) *Editor {
	e := &Editor{
		mode:       ModeNormal,
		maxCursors: DefaultMaxCursors,
		name:       DefaultName,
		lineEnding: LineEndingLF,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.store = textstore.New(e.initContent, e.name, textstore.WithLineEnding(e.lineEnding))
	e.cursors = cursor.NewSet()
	e.sessionID = uuid.New().String()
	return e
}

// Read accessors

// SessionID returns the unique identifier of this editor session.
func (e *Editor) SessionID() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sessionID
}

// Name returns the buffer's display name.
func (e *Editor) Name() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.Name()
}

// Text returns the full buffer content.
func (e *Editor) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.String()
}

// LineCount returns the number of lines.
func (e *Editor) LineCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.LineCount()
}

// LineText returns the visible text of a line, terminator stripped.
func (e *Editor) LineText(line int) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.VisibleLineContent(line)
}

// GraphemeLen returns the grapheme-cluster count of a line.
func (e *Editor) GraphemeLen(line int) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.GraphemeLen(line)
}

// GraphemeSubstring returns up to count clusters of a line starting at
// cluster index start, for horizontal viewport clipping.
func (e *Editor) GraphemeSubstring(line, start, count int) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.GraphemeSubstring(line, start, count)
}

// Mode returns the active editing mode.
func (e *Editor) Mode() Mode {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.mode
}

// CursorCount returns the number of cursors.
func (e *Editor) CursorCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursors.Count()
}

// PrimaryPosition returns the active position of the primary cursor.
func (e *Editor) PrimaryPosition() Position {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursors.PrimaryPosition()
}

// Positions returns the active position of every cursor.
func (e *Editor) Positions() []Position {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursors.Positions()
}

// SelectionSpans returns the inclusive selection span of every selecting
// cursor.
func (e *Editor) SelectionSpans() []Span {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursors.SelectionSpans(e.store)
}

// Mode and cursor management

// SetMode switches the editing mode, reconciling every cursor with the new
// mode's column and selection rules.
func (e *Editor) SetMode(mode Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = mode
	e.cursors.AdjustForMode(e.store, mode)
}

// AddCursorAt adds a secondary cursor at the given position, clamped to the
// buffer. A duplicate offset is absorbed by merge.
func (e *Editor) AddCursorAt(pos Position) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cursors.Count() >= e.maxCursors {
		return ErrTooManyCursors
	}
	e.cursors.AddCursor(e.store, pos)
	return nil
}

// AddCursorBelow adds a cursor one line below the primary at its column
// (clamped to the shorter line). On the last line it goes one column right
// instead; when neither position exists, no cursor is added.
func (e *Editor) AddCursorBelow() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cursors.Count() >= e.maxCursors {
		return ErrTooManyCursors
	}

	cur := e.cursors.PrimaryPosition()
	var dest Position
	if cur.Line+1 < e.store.LineCount() {
		line := cur.Line + 1
		col := cur.Col
		if n := e.store.GraphemeLen(line); col > n {
			col = n
		}
		dest = textstore.NewPosition(line, col, e.store.GraphemeColToOffset(line, col))
	} else if cur.Col < e.store.GraphemeLen(cur.Line) {
		col := cur.Col + 1
		dest = textstore.NewPosition(cur.Line, col, e.store.GraphemeColToOffset(cur.Line, col))
	} else {
		return ErrNoRoomForCursor
	}

	e.cursors.AddCursor(e.store, dest)
	return nil
}

// ClearSecondaryCursors discards every cursor but the primary.
func (e *Editor) ClearSecondaryCursors() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.ClearSecondary()
}

// Motions

// MoveLeft moves every cursor one grapheme left.
func (e *Editor) MoveLeft() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.MoveLeft(e.store, e.mode)
}

// MoveRight moves every cursor one grapheme right, capped by the mode's
// maximum column.
func (e *Editor) MoveRight() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.MoveRight(e.store, e.mode)
}

// MoveUp moves every cursor to the previous line.
func (e *Editor) MoveUp() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.MoveUp(e.store, e.mode)
}

// MoveDown moves every cursor to the next line.
func (e *Editor) MoveDown() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.MoveDown(e.store, e.mode)
}

// MoveWordForward moves every cursor to the next word start.
func (e *Editor) MoveWordForward(bigWord bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.MoveWordForward(e.store, e.mode, bigWord)
}

// MoveWordBackward moves every cursor to the previous word start.
func (e *Editor) MoveWordBackward(bigWord bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.MoveWordBackward(e.store, e.mode, bigWord)
}

// MoveWordEnd moves every cursor to the next word end.
func (e *Editor) MoveWordEnd(bigWord bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.MoveWordEnd(e.store, e.mode, bigWord)
}

// Edits

// InsertChar inserts a character at every cursor.
func (e *Editor) InsertChar(r rune) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.InsertChar(e.store, r)
}

// InsertText inserts text at every cursor.
func (e *Editor) InsertText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.InsertText(e.store, text)
}

// InsertNewline inserts a line break at every cursor.
func (e *Editor) InsertNewline() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.InsertNewline(e.store)
}

// Backspace removes the grapheme before every cursor.
func (e *Editor) Backspace() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.Backspace(e.store)
}

// Delete removes the grapheme under every cursor.
func (e *Editor) Delete() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.Delete(e.store)
}

// DeleteSelection removes every selecting cursor's inclusive span.
func (e *Editor) DeleteSelection() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.DeleteSelection(e.store)
}
