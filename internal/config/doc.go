// Package config loads editor options from TOML files and watches them for
// live reload.
//
// Configuration is deliberately small: the editing core has no rendering or
// key-binding surface, so the file covers buffer defaults (line ending,
// startup mode, display name) and the cursor limit. A missing file yields
// defaults; a malformed or invalid one is an error and the previous
// configuration stays in effect.
package config
