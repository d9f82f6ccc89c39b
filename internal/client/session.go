package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// SessionFile holds a bearer token, optionally mirrored to a JSON file so
// a new process can pick up an existing login. Tokens expire server-side;
// nothing here tracks expiry.
type SessionFile struct {
	path string

	mu       sync.Mutex
	token    string
	username string
}

type sessionPayload struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func NewSessionFile(path string) *SessionFile {
	return &SessionFile{path: path}
}

// Load reads the session file into memory. A missing file leaves the
// session empty and returns nil.
func (s *SessionFile) Load() error {
	if s.path == "" {
		return nil
	}
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session file: %w", err)
	}
	var payload sessionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("parse session file: %w", err)
	}
	s.mu.Lock()
	s.token = payload.Token
	s.username = payload.Username
	s.mu.Unlock()
	return nil
}

// Store sets the session and, when a path is configured, persists it with
// owner-only permissions.
func (s *SessionFile) Store(token, username string) error {
	s.mu.Lock()
	s.token = token
	s.username = username
	s.mu.Unlock()

	if s.path == "" {
		return nil
	}
	raw, err := json.Marshal(sessionPayload{Token: token, Username: username})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Clear drops the in-memory session and removes the session file.
func (s *SessionFile) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.username = ""
	s.mu.Unlock()

	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (s *SessionFile) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *SessionFile) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username
}
