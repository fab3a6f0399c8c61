package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEmptyEmail is an exported constant or variable used by the session store.
var ErrEmptyEmail = errors.New("session email must not be empty")

// Backend is the persistence contract behind a [Store]. Load returns
// (nil, nil) when no session has been persisted.
type Backend interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

// Store defines a public type used by appcore APIs.
//
// Store holds the in-memory copy of the signed-in identity and mirrors it to a
// Backend. At most one session is active per Store. Store methods are safe for
// concurrent use.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	current *Session
	log     *zap.Logger
}

// NewStore describes the newstore operation and its observable behavior.
//
// NewStore may return an error when input validation, dependency calls, or security checks fail.
// NewStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewStore(backend Backend, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		backend: backend,
		log:     logger,
	}
}

// Restore reads the persisted identity into memory. It never returns an
// error: backend read failures are logged and reported as "no session".
func (s *Store) Restore(ctx context.Context) (Session, bool) {
	if s == nil || s.backend == nil {
		return Session{}, false
	}

	persisted, err := s.backend.Load(ctx)
	if err != nil {
		s.log.Warn("session restore failed, treating as signed out", zap.Error(err))
		return Session{}, false
	}
	if persisted == nil || persisted.Email == "" {
		return Session{}, false
	}

	s.mu.Lock()
	cp := *persisted
	s.current = &cp
	s.mu.Unlock()

	return cp, true
}

// Login validates and records the signed-in identity. The in-memory state is
// updated first; a persistence failure is logged and swallowed so the session
// stays usable for the process lifetime even when durability fails.
func (s *Store) Login(ctx context.Context, email string) error {
	if email == "" {
		return ErrEmptyEmail
	}

	sess := Session{
		Email:     email,
		DeviceID:  s.deviceID(ctx),
		CreatedAt: time.Now().Unix(),
	}

	s.mu.Lock()
	cp := sess
	s.current = &cp
	s.mu.Unlock()

	if s.backend == nil {
		return nil
	}
	if err := s.backend.Save(ctx, sess); err != nil {
		s.log.Warn("session persist failed, session is memory-only", zap.Error(err))
	}
	return nil
}

// Logout clears the signed-in identity. The in-memory state is cleared before
// the backend so no reader observes a stale session mid-clear; backend
// failures are logged and swallowed.
func (s *Store) Logout(ctx context.Context) {
	if s == nil {
		return
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if s.backend == nil {
		return
	}
	if err := s.backend.Clear(ctx); err != nil {
		s.log.Warn("session clear failed", zap.Error(err))
	}
}

// Current returns the in-memory session, if any.
func (s *Store) Current() (Session, bool) {
	if s == nil {
		return Session{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// deviceID reuses the device identity already known in memory or on disk and
// mints a fresh one otherwise. Backend failures here only cost ID continuity.
func (s *Store) deviceID(ctx context.Context) string {
	s.mu.RLock()
	if s.current != nil && s.current.DeviceID != "" {
		id := s.current.DeviceID
		s.mu.RUnlock()
		return id
	}
	s.mu.RUnlock()

	if s.backend != nil {
		if persisted, err := s.backend.Load(ctx); err == nil && persisted != nil && persisted.DeviceID != "" {
			return persisted.DeviceID
		}
	}
	return uuid.NewString()
}
