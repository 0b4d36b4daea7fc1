package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Watcher Tests

func TestWatchReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modalcore.toml")
	if err := os.WriteFile(path, []byte("[cursors]\nmax_count = 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloads := make(chan *Config, 4)
	w, err := Watch(path, func(cfg *Config) { reloads <- cfg })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[cursors]\nmax_count = 16\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloads:
		if cfg.Cursors.MaxCount != 16 {
			t.Errorf("expected max_count 16, got %d", cfg.Cursors.MaxCount)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatchIgnoresInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modalcore.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	reloads := make(chan *Config, 4)
	w, err := Watch(path, func(cfg *Config) { reloads <- cfg })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	// An invalid revision is dropped; the next valid one still arrives.
	if err := os.WriteFile(path, []byte("[cursors]\nmax_count = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(300 * time.Millisecond)
	if err := os.WriteFile(path, []byte("[cursors]\nmax_count = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloads:
		if cfg.Cursors.MaxCount != 2 {
			t.Errorf("expected max_count 2, got %d", cfg.Cursors.MaxCount)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modalcore.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	reloads := make(chan *Config, 4)
	w, err := Watch(path, func(cfg *Config) { reloads <- cfg })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloads:
		t.Error("unexpected reload for an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatchCloseTwice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modalcore.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path, func(*Config) {})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second close should be a no-op, got %v", err)
	}
}
