// Package statefile persists the lifecycle handoff record between the
// restore and save phases of a pipeline run, using a flat JSON file.
package statefile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.cachet.dev/cachet/internal/core/domain"
	"go.cachet.dev/cachet/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StateStore = (*Store)(nil)

// Store implements ports.StateStore backed by the file at path. Entries are
// keyed by run key so that several runs can share a state directory without
// clobbering each other.
type Store struct {
	path  string
	mu    sync.Mutex
	cache map[string]domain.LifecycleState
}

// NewStore creates a StateStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.LifecycleState),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read lifecycle state file")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal lifecycle state file")
	}

	return nil
}

// persist must be called with s.mu held.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal lifecycle state")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create state directory")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write lifecycle state file")
	}

	return nil
}

// Put stores the state under the run key, replacing any previous record.
func (s *Store) Put(runKey string, state domain.LifecycleState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[runKey] = state
	return s.persist()
}

// Take retrieves and removes the state for the run key, enforcing the
// read-once discipline of the handoff record. Returns nil, nil if not found.
func (s *Store) Take(runKey string) (*domain.LifecycleState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.cache[runKey]
	if !ok {
		return nil, nil
	}

	delete(s.cache, runKey)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &state, nil
}
