// Package theme tracks the binary light/dark preference. The preference
// defaults to dark on first run and is persisted to a single file under
// the user config directory, read once at startup and rewritten on every
// toggle. It has no interaction with filtering or projection.
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Variant is one of the two appearance variants.
type Variant string

const (
	Dark  Variant = "dark"
	Light Variant = "light"
)

// prefFile is the file name holding the persisted variant.
const prefFile = "theme"

// Store owns the persisted preference. It is exclusively owned by the
// process; there is no cross-process locking for a single-user viewer.
type Store struct {
	path    string
	variant Variant
}

// NewStore loads the preference from dir. A missing or unreadable file,
// or any value other than "light", yields the dark default.
func NewStore(dir string) *Store {
	s := &Store{
		path:    filepath.Join(dir, prefFile),
		variant: Dark,
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return s
	}
	if Variant(strings.TrimSpace(string(raw))) == Light {
		s.variant = Light
	}
	return s
}

// Current returns the active variant.
func (s *Store) Current() Variant {
	return s.variant
}

// Toggle flips the variant and persists it. The in-memory value flips
// even when the write fails, so the session keeps the user's choice and
// only persistence is lost.
func (s *Store) Toggle() (Variant, error) {
	if s.variant == Dark {
		s.variant = Light
	} else {
		s.variant = Dark
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return s.variant, fmt.Errorf("failed to create preference directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(s.variant+"\n"), 0644); err != nil {
		return s.variant, fmt.Errorf("failed to persist theme preference: %w", err)
	}
	return s.variant, nil
}
