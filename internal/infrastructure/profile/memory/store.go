// Package memory provides the in-process profile store used in development
// and tests.
package memory

import (
	"context"
	"sync"
)

type entry struct {
	language   string
	registered bool
}

// Store implements profile.Store in memory.
type Store struct {
	mu       sync.RWMutex
	profiles map[int64]entry
}

// NewStore creates an empty in-memory profile store.
func NewStore() *Store {
	return &Store{profiles: map[int64]entry{}}
}

// Language returns the stored language tag for the user, "" when unset.
func (s *Store) Language(_ context.Context, userID int64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[userID].language, nil
}

// SetLanguage stores the user's language choice.
func (s *Store) SetLanguage(_ context.Context, userID int64, lang string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.profiles[userID]
	e.language = lang
	s.profiles[userID] = e
	return nil
}

// Registered reports whether the user has confirmed registration.
func (s *Store) Registered(_ context.Context, userID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[userID].registered, nil
}

// SetRegistered stores the registration flag.
func (s *Store) SetRegistered(_ context.Context, userID int64, registered bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.profiles[userID]
	e.registered = registered
	s.profiles[userID] = e
	return nil
}

// Close is a no-op.
func (s *Store) Close(context.Context) error {
	return nil
}
