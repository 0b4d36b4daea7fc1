package textstore

import "unicode/utf8"

// Edit describes a single replacement of the span [Start, End) with NewText.
// All coordinates are character offsets. An insertion has Start == End; a
// deletion has empty NewText.
type Edit struct {
	Start   int
	End     int
	NewText string
}

// Insertion returns an edit inserting text at the given offset.
func Insertion(at int, text string) Edit {
	return Edit{Start: at, End: at, NewText: text}
}

// Deletion returns an edit removing the span [start, end).
func Deletion(start, end int) Edit {
	return Edit{Start: start, End: end}
}

// OldLen returns the character length of the replaced span.
func (e Edit) OldLen() int {
	return e.End - e.Start
}

// NewLen returns the character length of the replacement text.
func (e Edit) NewLen() int {
	return utf8.RuneCountInString(e.NewText)
}

// Delta returns the change in buffer length caused by the edit.
func (e Edit) Delta() int {
	return e.NewLen() - e.OldLen()
}

// IsInsert returns true if the edit inserts without removing.
func (e Edit) IsInsert() bool {
	return e.Start == e.End && e.NewText != ""
}

// IsDelete returns true if the edit removes without inserting.
func (e Edit) IsDelete() bool {
	return e.Start < e.End && e.NewText == ""
}
