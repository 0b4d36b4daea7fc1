package editor

import (
	"github.com/dshills/modalcore/internal/config"
	"github.com/dshills/modalcore/internal/cursor"
	"github.com/dshills/modalcore/internal/textstore"
)

// Default configuration values.
const (
	DefaultName       = "untitled"
	DefaultMaxCursors = 32
)

// Option configures an Editor during creation.
type Option func(*Editor)

// WithContent sets the initial buffer content.
func WithContent(content string) Option {
	return func(e *Editor) {
		e.initContent = content
	}
}

// WithName sets the buffer's display name.
func WithName(name string) Option {
	return func(e *Editor) {
		if name != "" {
			e.name = name
		}
	}
}

// WithLineEnding sets the line ending style for the buffer.
func WithLineEnding(le textstore.LineEnding) Option {
	return func(e *Editor) {
		e.lineEnding = le
	}
}

// WithMode sets the initial editing mode.
func WithMode(mode cursor.Mode) Option {
	return func(e *Editor) {
		e.mode = mode
	}
}

// WithMaxCursors sets the maximum number of simultaneous cursors.
func WithMaxCursors(max int) Option {
	return func(e *Editor) {
		if max > 0 {
			e.maxCursors = max
		}
	}
}

// WithConfig applies a loaded configuration: buffer name, line ending,
// default mode, and cursor limit.
func WithConfig(cfg *config.Config) Option {
	return func(e *Editor) {
		if cfg == nil {
			return
		}
		if cfg.Editor.Name != "" {
			e.name = cfg.Editor.Name
		}
		if le, ok := textstore.ParseLineEnding(cfg.Editor.LineEnding); ok {
			e.lineEnding = le
		}
		if mode, ok := cursor.ParseMode(cfg.Editor.DefaultMode); ok {
			e.mode = mode
		}
		if cfg.Cursors.MaxCount > 0 {
			e.maxCursors = cfg.Cursors.MaxCount
		}
	}
}
