// Package session provides the per-user dialog state store.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/finora/bot-service/internal/core/cache"
	"github.com/finora/bot-service/internal/domain/models"
)

// DefaultTTL keeps abandoned dialogs from living forever.
const DefaultTTL = 24 * time.Hour

// Store persists per-user sessions. All methods are safe for concurrent use;
// read-modify-write atomicity per user is the dispatcher's job.
type Store interface {
	// Get loads the session for a user, creating an empty one if absent.
	Get(ctx context.Context, userID, chatID int64) (*models.Session, error)

	// Put persists the session.
	Put(ctx context.Context, sess *models.Session) error

	// Clear removes the session entirely.
	Clear(ctx context.Context, userID int64) error
}

// Config holds the store configuration.
type Config struct {
	Cache cache.Cache
	TTL   time.Duration
}

type store struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewStore creates a cache-backed session store.
func NewStore(cfg Config) (Store, error) {
	if cfg.Cache == nil {
		return nil, fmt.Errorf("cache is required")
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &store{cache: cfg.Cache, ttl: ttl}, nil
}

func key(userID int64) string {
	return fmt.Sprintf("fsm:%d", userID)
}

// Get loads the session. A corrupt cache entry is dropped and replaced by a
// fresh session rather than surfaced as an error.
func (s *store) Get(ctx context.Context, userID, chatID int64) (*models.Session, error) {
	raw, err := s.cache.Get(ctx, key(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if raw == nil {
		return models.NewSession(userID, chatID), nil
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		_, _ = s.cache.Delete(ctx, key(userID))
		return models.NewSession(userID, chatID), nil
	}
	if sess.Data == nil {
		sess.Data = map[string]string{}
	}
	if chatID != 0 {
		sess.ChatID = chatID
	}
	return &sess, nil
}

// Put persists the session with the configured TTL.
func (s *store) Put(ctx context.Context, sess *models.Session) error {
	if sess == nil {
		return fmt.Errorf("session is required")
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.cache.Set(ctx, key(sess.UserID), raw, s.ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Clear removes the session.
func (s *store) Clear(ctx context.Context, userID int64) error {
	if _, err := s.cache.Delete(ctx, key(userID)); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
