package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"classorder/internal/auth"
)

var ErrNoSession = errors.New("no session")

// Session is the client-side login state: the sole source of truth for
// access control on every render. Created on login, destroyed on logout.
type Session struct {
	Role   string `json:"role"`
	UserID int    `json:"user_id"`
	Token  string `json:"token"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == auth.RoleAdmin
}

func (s *Session) IsCoach() bool {
	return s != nil && s.Role == auth.RoleCoach
}

// FromToken builds a session by decoding the token payload. The signature is
// not verified here; the server rejects tampered tokens on every call.
func FromToken(token string) (*Session, error) {
	claims, err := auth.PeekClaims(token)
	if err != nil {
		return nil, err
	}

	return &Session{
		Role:   claims.Role,
		UserID: claims.UserID,
		Token:  token,
	}, nil
}

// Store is the durable key/value holder for the session, written by login
// and cleared by logout.
type Store interface {
	Load() (*Session, error)
	Save(*Session) error
	Clear() error
}

// FileStore keeps the session in a JSON file, the desktop analog of browser
// local storage.
type FileStore struct {
	path string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, "session.json")}
}

func (f *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, ErrNoSession
	}
	if s.Token == "" {
		return nil, ErrNoSession
	}

	return &s, nil
}

func (f *FileStore) Save(s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemStore is the in-memory Store used by tests and short-lived tools.
type MemStore struct {
	session *Session
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Load() (*Session, error) {
	if m.session == nil {
		return nil, ErrNoSession
	}
	return m.session, nil
}

func (m *MemStore) Save(s *Session) error {
	m.session = s
	return nil
}

func (m *MemStore) Clear() error {
	m.session = nil
	return nil
}
