package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Store holds the signed-in identity: auth token, role and user id. The
// three fields are persisted together as one flat JSON file so login and
// logout update them atomically. Access is not locked; the client is
// single-flow and only login/logout ever write.
type Store struct {
	path string

	token  string
	role   string
	userID string
}

// storedSession is the on-disk shape
type storedSession struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID string `json:"userId"`
}

// Load reads the session file at path. A missing file yields an empty
// (unauthenticated) store, not an error.
func Load(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}

	var stored storedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		// A corrupt session file behaves like a logged-out state
		return s, nil
	}

	s.token = stored.Token
	s.role = stored.Role
	s.userID = stored.UserID
	return s, nil
}

// SetCredentials records a successful login or registration and persists it
func (s *Store) SetCredentials(token, role, userID string) error {
	s.token = token
	s.role = role
	s.userID = userID
	return s.save()
}

// Clear wipes all fields and removes the session file (logout)
func (s *Store) Clear() error {
	s.token = ""
	s.role = ""
	s.userID = ""

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Token implements api.TokenSource
func (s *Store) Token() string { return s.token }

// Role returns the stored role string
func (s *Store) Role() string { return s.role }

// UserID returns the stored user identifier
func (s *Store) UserID() string { return s.userID }

// Authenticated reports whether a usable token is present. Tokens whose
// claims carry an expiry in the past count as absent.
func (s *Store) Authenticated() bool {
	if s.token == "" {
		return false
	}
	claims, err := ParseClaims(s.token)
	if err != nil {
		// Opaque tokens are accepted; the server is the judge
		return true
	}
	return !claims.Expired()
}

func (s *Store) save() error {
	stored := storedSession{Token: s.token, Role: s.role, UserID: s.userID}
	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o600)
}
