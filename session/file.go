package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileBackend persists the session as a JSON file, the durable store available
// to every client host. The file is created with 0600 permissions because it
// names the signed-in account.
type FileBackend struct {
	mu   sync.Mutex
	path string
}

// NewFileBackend describes the newfilebackend operation and its observable behavior.
//
// NewFileBackend may return an error when input validation, dependency calls, or security checks fail.
// NewFileBackend does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewFileBackend(path string) (*FileBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return &FileBackend{path: path}, nil
}

// Load reads the persisted session. A missing file means no session.
func (b *FileBackend) Load(_ context.Context) (*Session, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the session, replacing any previous one.
func (b *FileBackend) Save(_ context.Context, s Session) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write never leaves a torn session file.
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, b.path)
}

// Clear removes the persisted session. Clearing an absent session is a no-op.
func (b *FileBackend) Clear(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := os.Remove(b.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
