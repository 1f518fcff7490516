// Package session persists the CLI's login state between invocations. The
// session file holds the bearer token together with the identity it belongs
// to, stored with owner-only permissions.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Session is the persisted login state of the CLI.
type Session struct {
	Token       string `json:"token"`
	CaregiverID int64  `json:"caregiver_id"`
	DisplayName string `json:"display_name"`
	Admin       bool   `json:"admin"`

	path string
}

// DefaultPath returns the default session file location under the user's
// home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".nhplus-session.json"
	}
	return filepath.Join(home, ".nhplus", "session.json")
}

// Load reads the session file at path. A missing file yields an empty,
// logged-out session rather than an error.
func Load(path string) (*Session, error) {
	if path == "" {
		path = DefaultPath()
	}

	s := &Session{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading session file: %w", err)
	}

	if err := json.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("parsing session file: %w", err)
	}
	return s, nil
}

// LoggedIn reports whether the session holds a token.
func (s *Session) LoggedIn() bool {
	return s.Token != ""
}

// Save writes the session back to its file, creating the parent directory if
// needed.
func (s *Session) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Clear removes the session file and wipes the in-memory state.
func (s *Session) Clear() error {
	s.Token = ""
	s.CaregiverID = 0
	s.DisplayName = ""
	s.Admin = false

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
