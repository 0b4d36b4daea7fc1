package editor

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/modalcore/internal/cursor"
	"github.com/dshills/modalcore/internal/textstore"
)

// StateJSON serializes the session identity, editing mode, and cursor layout
// to a JSON snapshot. Buffer content is not included; persistence belongs to
// the caller.
func (e *Editor) StateJSON() (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := `{"cursors":[]}`
	var err error
	set := func(path string, value any) {
		if err == nil {
			out, err = sjson.Set(out, path, value)
		}
	}

	set("session", e.sessionID)
	set("name", e.store.Name())
	set("mode", e.mode.String())
	set("line_ending", e.store.LineEnding().Label())

	primary := e.cursors.PrimaryIndex()
	for i, c := range e.cursors.All() {
		base := fmt.Sprintf("cursors.%d", i)
		setPosition(set, base+".anchor", c.Anchor())
		setPosition(set, base+".active", c.Position())
		set(base+".primary", i == primary)
	}
	if err != nil {
		return "", fmt.Errorf("encoding editor state: %w", err)
	}
	return out, nil
}

func setPosition(set func(path string, value any), base string, pos Position) {
	set(base+".line", pos.Line)
	set(base+".col", pos.Col)
	set(base+".offset", pos.Offset)
}

// RestoreState applies a snapshot produced by StateJSON. The mode and cursor
// layout are restored; positions are clamped against current buffer content
// rather than trusted, so a snapshot taken against different content cannot
// corrupt the coordinate invariant.
func (e *Editor) RestoreState(data string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !gjson.Valid(data) {
		return fmt.Errorf("%w: malformed JSON", ErrBadState)
	}
	root := gjson.Parse(data)

	if m := root.Get("mode"); m.Exists() {
		mode, ok := cursor.ParseMode(m.String())
		if !ok {
			return fmt.Errorf("%w: unknown mode %q", ErrBadState, m.String())
		}
		e.mode = mode
	}

	if cursorsVal := root.Get("cursors"); cursorsVal.IsArray() {
		var restored []cursor.Cursor
		primary := 0
		for i, item := range cursorsVal.Array() {
			anchor := positionFromJSON(item.Get("anchor"))
			active := positionFromJSON(item.Get("active"))
			restored = append(restored, cursor.At(e.store, anchor, active))
			if item.Get("primary").Bool() {
				primary = i
			}
		}
		e.cursors.Replace(e.store, restored, primary)
	}

	e.cursors.AdjustForMode(e.store, e.mode)
	return nil
}

func positionFromJSON(v gjson.Result) Position {
	return textstore.NewPosition(
		int(v.Get("line").Int()),
		int(v.Get("col").Int()),
		int(v.Get("offset").Int()),
	)
}
