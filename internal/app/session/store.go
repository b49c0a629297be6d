/*
Package session owns the client's persisted credential.

The credential is an opaque bearer token issued by the server on login
or registration. It lives in a single file, the command-line analog of
the browser's one localStorage key: present means authenticated, absent
means every request goes out without an Authorization header.
*/
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store abstracts the credential location so the HTTP client layer can
// read the current token without callers threading it explicitly, and
// so tests can substitute a fake.
type Store interface {
	// Get returns the stored token, or "" when no credential exists.
	Get() (string, error)

	// Set replaces the stored token.
	Set(token string) error

	// Clear removes the credential. Clearing an absent credential is not an error.
	Clear() error
}

// FileStore keeps the token in a single file with owner-only permissions.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore rooted at the given path. The parent
// directory is created lazily on the first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get reads the token file. A missing file means no credential.
func (s *FileStore) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Set writes the token with 0600 permissions, creating the parent
// directory when needed.
func (s *FileStore) Set(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear deletes the token file if it exists.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemStore is an in-memory Store used in tests.
type MemStore struct {
	mu    sync.Mutex
	token string
}

// Get returns the current token.
func (s *MemStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

// Set replaces the current token.
func (s *MemStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear removes the current token.
func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
