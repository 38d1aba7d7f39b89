// Package session persists the operator's credential between console runs.
// The token's presence is all the client tracks: no expiry metadata, no
// refresh. The backend answering 401 is the only invalidation signal.
package session

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/dribbleops/orderadmin/internal/domain/model"
)

// Session is the stored credential plus a snapshot of who logged in.
type Session struct {
	AccessToken string      `json:"access_token"`
	User        *model.User `json:"user,omitempty"`
}

// Store keeps the session in a permission-restricted JSON file. Token reads
// go back to the file every time, so a login, logout or eviction from any
// code path is visible to the next outgoing request without coordination.
type Store struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewStore creates a file-backed session store.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load reads the stored session. A missing or unreadable file is an
// unauthenticated state, not an error.
func (s *Store) Load() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Save persists the session after a successful login.
func (s *Store) Save(session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	encoded, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, encoded, 0o600)
}

// Clear discards the stored session on logout or credential eviction.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("failed to remove session file", slog.String("error", err.Error()))
	}
}

// Token returns the stored bearer token, re-read from disk on every call.
// Implements the transport's TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session := s.read(); session != nil {
		return session.AccessToken
	}
	return ""
}

// Evict clears the credential after the backend rejected it.
func (s *Store) Evict() {
	s.Clear()
}

// Authenticated reports whether a credential is currently stored.
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

func (s *Store) read() *Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		s.logger.Warn("discarding corrupt session file", slog.String("error", err.Error()))
		return nil
	}
	if session.AccessToken == "" {
		return nil
	}
	return &session
}
