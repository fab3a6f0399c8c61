package session

import (
	"context"
	"sync"
)

// MemoryBackend keeps the session in process memory only. Useful for tests
// and for hosts that explicitly opt out of durability.
type MemoryBackend struct {
	mu sync.Mutex
	s  *Session
}

// NewMemoryBackend describes the newmemorybackend operation and its observable behavior.
//
// NewMemoryBackend does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load(_ context.Context) (*Session, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.s == nil {
		return nil, nil
	}
	cp := *b.s
	return &cp, nil
}

func (b *MemoryBackend) Save(_ context.Context, s Session) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	cp := s
	b.s = &cp
	return nil
}

func (b *MemoryBackend) Clear(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.s = nil
	return nil
}
