package editor

import "errors"

// Errors returned by editor operations.
var (
	// ErrTooManyCursors indicates the configured cursor limit was reached.
	ErrTooManyCursors = errors.New("cursor limit reached")

	// ErrNoRoomForCursor indicates no valid position exists for a new cursor.
	ErrNoRoomForCursor = errors.New("no position available for a new cursor")

	// ErrBadState indicates a state snapshot could not be parsed or applied.
	ErrBadState = errors.New("invalid state snapshot")
)
