package config

import "errors"

// Errors returned by configuration loading and validation.
var (
	// ErrBadLineEnding indicates an unknown line_ending value.
	ErrBadLineEnding = errors.New("unknown line ending")

	// ErrBadMode indicates an unknown default_mode value.
	ErrBadMode = errors.New("unknown editing mode")

	// ErrBadCursorLimit indicates a non-positive cursors.max_count.
	ErrBadCursorLimit = errors.New("cursor limit must be positive")
)
