package settings

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store holds the live summary configuration. When path is non-empty the
// configuration overlay is loaded from it at startup and rewritten after
// every change. Store is the only writer; everything else reads snapshots.
type Store struct {
	mu   sync.Mutex
	path string
	cur  Summary
}

// NewStore builds a store seeded with defaults, overlaid with the contents
// of path when that file exists. path may be empty for an in-memory store.
func NewStore(path string, defaults Summary) (*Store, error) {
	s := &Store{path: path, cur: defaults}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// First run; defaults apply until the first Update persists.
		case err != nil:
			return nil, fmt.Errorf("settings: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &s.cur); err != nil {
				return nil, fmt.Errorf("settings: parse %s: %w", path, err)
			}
		}
	}

	if err := s.cur.Validate(); err != nil {
		return nil, fmt.Errorf("settings: validate: %w", err)
	}
	return s, nil
}

// Snapshot returns a copy of the current configuration.
func (s *Store) Snapshot() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Update applies fn to a copy of the current configuration, validates the
// result, installs it, and persists it. Invalid updates change nothing.
func (s *Store) Update(fn func(*Summary)) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cur
	fn(&next)
	if err := next.Validate(); err != nil {
		return Summary{}, fmt.Errorf("settings: %w", err)
	}

	if s.path != "" {
		data, err := yaml.Marshal(next)
		if err != nil {
			return Summary{}, fmt.Errorf("settings: marshal: %w", err)
		}
		// 0600: the overlay carries the API key.
		if err := os.WriteFile(s.path, data, 0o600); err != nil {
			return Summary{}, fmt.Errorf("settings: write %s: %w", s.path, err)
		}
	}

	s.cur = next
	return next, nil
}
