package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dshills/modalcore/internal/cursor"
	"github.com/dshills/modalcore/internal/textstore"
)

// Config holds the editing-core options.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Cursors CursorsConfig `toml:"cursors"`
}

// EditorConfig holds buffer defaults.
type EditorConfig struct {
	// Name is the default display name for unnamed buffers. Empty keeps the
	// built-in default.
	Name string `toml:"name"`

	// LineEnding is "lf", "crlf", or "cr".
	LineEnding string `toml:"line_ending"`

	// DefaultMode is the startup editing mode: "normal", "insert", or
	// "visual".
	DefaultMode string `toml:"default_mode"`
}

// CursorsConfig holds multi-cursor options.
type CursorsConfig struct {
	// MaxCount caps the number of simultaneous cursors.
	MaxCount int `toml:"max_count"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			LineEnding:  "lf",
			DefaultMode: "normal",
		},
		Cursors: CursorsConfig{
			MaxCount: 32,
		},
	}
}

// Load reads configuration from a TOML file. A missing file is not an error:
// defaults are returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its legal values.
func (c *Config) Validate() error {
	if _, ok := textstore.ParseLineEnding(c.Editor.LineEnding); !ok {
		return fmt.Errorf("%w: %q", ErrBadLineEnding, c.Editor.LineEnding)
	}
	if _, ok := cursor.ParseMode(c.Editor.DefaultMode); !ok {
		return fmt.Errorf("%w: %q", ErrBadMode, c.Editor.DefaultMode)
	}
	if c.Cursors.MaxCount <= 0 {
		return fmt.Errorf("%w: %d", ErrBadCursorLimit, c.Cursors.MaxCount)
	}
	return nil
}
