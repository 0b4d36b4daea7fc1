package cursor

import "github.com/dshills/modalcore/internal/textstore"

// Mode is the active editing mode. It governs the maximum reachable column
// (the insert cursor may sit one past the last cluster, the normal cursor
// always sits on one) and whether motions extend the selection.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeVisual:
		return "visual"
	default:
		return "unknown"
	}
}

// ParseMode returns the mode named by s, or false for an unknown name.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "normal":
		return ModeNormal, true
	case "insert":
		return ModeInsert, true
	case "visual":
		return ModeVisual, true
	default:
		return ModeNormal, false
	}
}

// maxColumn returns the highest column a cursor may occupy on the given line
// in the given mode.
func maxColumn(st *textstore.Store, mode Mode, line int) int {
	n := st.GraphemeLen(line)
	if mode == ModeInsert {
		return n
	}
	if n == 0 {
		return 0
	}
	return n - 1
}
