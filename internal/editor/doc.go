// Package editor is the facade over the editing core: one text store, one
// cursor set, and the active editing mode, combined behind a thread-safe API
// in the shape the surrounding key-handling and rendering layers consume.
//
// The facade owns no policy of its own. Motions and edits delegate to the
// cursor set with the active mode; read accessors expose exactly what a
// renderer needs (visible line text, grapheme lengths, cluster substrings,
// cursor positions and selection spans). Loading and saving buffer content
// is entirely the caller's responsibility.
//
// Each editor carries a unique session ID and can serialize its cursor and
// mode state to JSON and restore it later in the same or an equivalent
// buffer; restored positions are clamped, never trusted.
package editor
