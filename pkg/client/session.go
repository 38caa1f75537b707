// Package client is the API client used by command line tools. It keeps the
// signed-in account in a Session that survives restarts.
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

// User is the account projection returned by signup and login.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Name        string `json:"name,omitempty"`
	ClinicName  string `json:"clinicName,omitempty"`
	UserName    string `json:"userName,omitempty"`
	UserType    string `json:"userType,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}

type sessionFile struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Session holds the current token and user in memory, backed by a file.
type Session struct {
	mu    sync.RWMutex
	path  string
	token string
	user  *User
}

// LoadSession reads the session file once. A missing file, or one without
// both a token and a user, yields a signed-out session.
func LoadSession(path string) (*Session, error) {
	s := &Session{path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var f sessionFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if f.Token != "" && f.User != nil {
		s.token, s.user = f.Token, f.User
	}
	return s, nil
}

// Login stores the user and token in memory and on disk.
func (s *Session) Login(user User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(sessionFile{Token: token, User: &user}); err != nil {
		return err
	}
	s.token, s.user = token, &user
	return nil
}

// Logout clears memory and removes the file.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token, s.user = "", nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the signed-in user, or nil.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// persist writes through a temp file so a crash never leaves half a session.
func (s *Session) persist(f sessionFile) error {
	raw, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}
