// Package main is a small inspection harness for the modalcore editing
// engine: it opens a file, reports buffer geometry, and can emit or replay
// session state snapshots.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/modalcore/internal/config"
	"github.com/dshills/modalcore/internal/editor"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	ConfigPath string
	StatePath  string
	EmitState  bool
	Files      []string
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var content string
	name := "untitled"
	if len(opts.Files) > 0 {
		name = opts.Files[0]
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading %s: %v\n", name, err)
			return 1
		}
		content = string(data)
	}

	ed := editor.New(
		editor.WithConfig(cfg),
		editor.WithName(name),
		editor.WithContent(content),
	)

	if opts.StatePath != "" {
		data, err := os.ReadFile(opts.StatePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading state %s: %v\n", opts.StatePath, err)
			return 1
		}
		if err := ed.RestoreState(string(data)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: restoring state: %v\n", err)
			return 1
		}
	}

	if opts.EmitState {
		state, err := ed.StateJSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(state)
		return 0
	}

	report(ed)
	return 0
}

func report(ed *editor.Editor) {
	fmt.Printf("Session:     %s\n", ed.SessionID())
	fmt.Printf("Buffer:      %s\n", ed.Name())
	fmt.Printf("Mode:        %s\n", ed.Mode())
	fmt.Printf("Lines:       %d\n", ed.LineCount())
	fmt.Printf("Cursors:     %d\n", ed.CursorCount())
	fmt.Printf("Primary:     %s\n", ed.PrimaryPosition())

	longest, longestLine := 0, 0
	for line := 0; line < ed.LineCount(); line++ {
		if n := ed.GraphemeLen(line); n > longest {
			longest, longestLine = n, line
		}
	}
	fmt.Printf("Longest:     line %d (%d graphemes)\n", longestLine, longest)
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.StatePath, "state", "", "Path to a session state snapshot to restore")
	flag.BoolVar(&opts.EmitState, "emit-state", false, "Print the session state snapshot as JSON and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "modalcore-inspect - editing engine inspection harness\n\n")
		fmt.Fprintf(os.Stderr, "Usage: modalcore-inspect [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  modalcore-inspect file.go              Report buffer geometry\n")
		fmt.Fprintf(os.Stderr, "  modalcore-inspect -emit-state file.go  Print session snapshot\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("modalcore-inspect %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	opts.Files = flag.Args()
	return opts
}
