// Package profile resolves per-user language and registration status from the
// persisted store and the backend, in that order.
package profile

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/finora/bot-service/internal/core/profile"
	"github.com/finora/bot-service/internal/domain/models"
	"github.com/finora/bot-service/internal/i18n"
	"github.com/finora/bot-service/internal/services/rpc"
)

// Service combines the persisted profile store with the backend status
// operation. A resolved value is written back to the store so later events
// stay local.
type Service struct {
	store   profile.Store
	backend rpc.Backend
	logger  zerolog.Logger
}

// NewService creates the profile service.
func NewService(store profile.Store, backend rpc.Backend, logger zerolog.Logger) *Service {
	return &Service{
		store:   store,
		backend: backend,
		logger:  logger.With().Str("component", "profile").Logger(),
	}
}

// ResolveLanguage applies the resolution priority: stored preference, then
// backend-reported preference, then the client locale, then the default. A
// backend-reported default language is not accepted for unregistered users so
// the first-run language prompt still appears. Never blocks on failures.
func (s *Service) ResolveLanguage(ctx context.Context, user models.UserRef) string {
	lang, err := s.store.Language(ctx, user.ID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("user_id", user.ID).Msg("language load failed")
	}
	if lang != "" {
		return lang
	}

	if status, err := s.backend.Status(ctx, user.ID); err == nil && status.Language != "" {
		normalized := i18n.Normalize(status.Language)
		if status.Registered || normalized != i18n.DefaultLang {
			if err := s.store.SetLanguage(ctx, user.ID, normalized); err != nil {
				s.logger.Warn().Err(err).Int64("user_id", user.ID).Msg("language write-back failed")
			}
			return normalized
		}
	}

	if user.LocaleCode != "" {
		return i18n.Normalize(user.LocaleCode)
	}
	return i18n.DefaultLang
}

// HasStoredLanguage reports whether the user ever chose a language
// explicitly.
func (s *Service) HasStoredLanguage(ctx context.Context, userID int64) bool {
	lang, err := s.store.Language(ctx, userID)
	return err == nil && lang != ""
}

// SetLanguage persists an explicit language choice locally and best-effort
// remotely.
func (s *Service) SetLanguage(ctx context.Context, userID int64, lang string) error {
	normalized := i18n.Normalize(lang)
	if err := s.store.SetLanguage(ctx, userID, normalized); err != nil {
		return err
	}
	if err := s.backend.SetLanguage(ctx, userID, normalized); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", userID).Msg("remote language sync failed")
	}
	return nil
}

// IsRegistered checks the local flag first and falls back to the backend;
// a backend-confirmed registration is written back. Unreachable backend means
// "not registered" so the gate stays closed rather than open.
func (s *Service) IsRegistered(ctx context.Context, userID int64) bool {
	registered, err := s.store.Registered(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("user_id", userID).Msg("registration load failed")
	}
	if registered {
		return true
	}

	status, err := s.backend.Status(ctx, userID)
	if err != nil || !status.Registered {
		return false
	}
	if err := s.store.SetRegistered(ctx, userID, true); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", userID).Msg("registration write-back failed")
	}
	return true
}

// SetRegistered stores the registration flag locally.
func (s *Service) SetRegistered(ctx context.Context, userID int64, registered bool) error {
	return s.store.SetRegistered(ctx, userID, registered)
}
