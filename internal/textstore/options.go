package textstore

// Option configures a Store during creation.
type Option func(*Store)

// WithLineEnding sets the line ending style. Content passed to New and
// InsertText is normalized to this style.
func WithLineEnding(le LineEnding) Option {
	return func(s *Store) {
		s.lineEnding = le
	}
}
