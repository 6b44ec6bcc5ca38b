// Package storage caches the authenticated user on disk.
//
// The cache is not a source of truth: the server is authoritative and
// the cached record exists only so the UI can greet the user before
// the next auth check resolves.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/krish230803/Ai-Interview-System/internal/api"
)

const userFile = "user.json"
const pendingFile = "pending_view"

// Store reads and writes the cached user record under dir.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// SaveUser writes the user record, replacing any previous one.
func (s *Store) SaveUser(u *api.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, userFile), data, 0600); err != nil {
		return fmt.Errorf("writing user cache: %w", err)
	}
	return nil
}

// LoadUser returns the cached user, or (nil, nil) when none is cached.
func (s *Store) LoadUser() (*api.User, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading user cache: %w", err)
	}

	var u api.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("decoding user cache: %w", err)
	}
	return &u, nil
}

// ClearUser removes the cached user. Removing an absent cache is not
// an error.
func (s *Store) ClearUser() error {
	err := os.Remove(filepath.Join(s.dir, userFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clearing user cache: %w", err)
	}
	return nil
}

// SavePendingTarget records the view the user was heading to before an
// auth-gated redirect, so login can resume there.
func (s *Store) SavePendingTarget(view string) error {
	if err := os.WriteFile(filepath.Join(s.dir, pendingFile), []byte(view), 0600); err != nil {
		return fmt.Errorf("writing pending target: %w", err)
	}
	return nil
}

// TakePendingTarget returns the saved target and removes it. Returns
// "" when none is saved.
func (s *Store) TakePendingTarget() (string, error) {
	path := filepath.Join(s.dir, pendingFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading pending target: %w", err)
	}
	_ = os.Remove(path)
	return string(data), nil
}
