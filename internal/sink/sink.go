// Package sink persists report results as flat snapshot files.
package sink

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sink writes named artifacts under a base directory. JSON targets are
// rewritten whole on every run; .txt targets are appended to.
type Sink struct {
	dir string
}

// New creates a sink rooted at dir.
func New(dir string) *Sink {
	return &Sink{dir: dir}
}

// Write serializes value into the named artifact. JSON output keeps the
// struct field order and leaves non-ASCII text unescaped.
func (s *Sink) Write(name string, value any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, name)

	if strings.HasSuffix(name, ".txt") {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		if _, err := fmt.Fprintln(f, value); err != nil {
			return fmt.Errorf("failed to append to %s: %w", path, err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
