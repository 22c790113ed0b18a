// Package session persists the signed-in user's token between invocations.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tbtb-research/riset/internal/models"
	"gopkg.in/yaml.v3"
)

// ErrNoSession is returned when nobody is signed in
var ErrNoSession = errors.New("not logged in")

// Store keeps the session in a small YAML file readable only by the owner.
// It is safe for concurrent use within one process.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a store backed by path. The file is created on first Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.path
}

// Load reads the session. A missing file or an empty token is ErrNoSession.
func (s *Store) Load() (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var session models.Session
	if err := yaml.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session file %s: %w", s.path, err)
	}
	if !session.Valid() {
		return nil, ErrNoSession
	}
	return &session, nil
}

// Save replaces the stored session
func (s *Store) Save(session *models.Session) error {
	if !session.Valid() {
		return fmt.Errorf("refusing to save a session without a token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := yaml.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create session file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to restrict session file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}

// Invalidate removes the stored session. Removing a missing session is not an error.
func (s *Store) Invalidate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
