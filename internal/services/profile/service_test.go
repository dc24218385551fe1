// Package profile_test provides unit tests for language and registration
// resolution.
package profile_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/finora/bot-service/internal/domain/errors"
	"github.com/finora/bot-service/internal/domain/models"
	memoryprofile "github.com/finora/bot-service/internal/infrastructure/profile/memory"
	"github.com/finora/bot-service/internal/services/profile"
	"github.com/finora/bot-service/internal/services/rpc"
)

// statusBackend serves canned telegram.status responses and records language
// syncs.
type statusBackend struct {
	rpc.Backend
	status     *models.UserStatus
	statusErr  error
	syncedLang string
}

func (b *statusBackend) Status(context.Context, int64) (*models.UserStatus, error) {
	return b.status, b.statusErr
}

func (b *statusBackend) SetLanguage(_ context.Context, _ int64, lang string) error {
	b.syncedLang = lang
	return nil
}

func newService(backend rpc.Backend) (*profile.Service, *memoryprofile.Store) {
	store := memoryprofile.NewStore()
	return profile.NewService(store, backend, zerolog.Nop()), store
}

func TestResolveLanguage_StoredWins(t *testing.T) {
	backend := &statusBackend{status: &models.UserStatus{Registered: true, Language: "en"}}
	svc, store := newService(backend)
	require.NoError(t, store.SetLanguage(context.Background(), 7, "uz"))

	lang := svc.ResolveLanguage(context.Background(), models.UserRef{ID: 7, LocaleCode: "en"})
	assert.Equal(t, "uz", lang)
}

func TestResolveLanguage_BackendWrittenBack(t *testing.T) {
	backend := &statusBackend{status: &models.UserStatus{Registered: true, Language: "en-US"}}
	svc, store := newService(backend)

	lang := svc.ResolveLanguage(context.Background(), models.UserRef{ID: 7})
	assert.Equal(t, "en", lang)

	stored, err := store.Language(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "en", stored)
}

func TestResolveLanguage_DefaultNotAcceptedForUnregistered(t *testing.T) {
	// The backend reports the default language for users it has never seen;
	// treating that as a choice would skip the first-run chooser.
	backend := &statusBackend{status: &models.UserStatus{Registered: false, Language: "ru"}}
	svc, store := newService(backend)

	lang := svc.ResolveLanguage(context.Background(), models.UserRef{ID: 7, LocaleCode: "en-GB"})
	assert.Equal(t, "en", lang)

	stored, err := store.Language(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestResolveLanguage_UnreachableBackendFallsBackToLocale(t *testing.T) {
	backend := &statusBackend{statusErr: apperrors.NewTransportError("telegram.status", assert.AnError)}
	svc, _ := newService(backend)

	assert.Equal(t, "uz", svc.ResolveLanguage(context.Background(), models.UserRef{ID: 7, LocaleCode: "uz"}))
	assert.Equal(t, "ru", svc.ResolveLanguage(context.Background(), models.UserRef{ID: 8}))
}

func TestSetLanguage_SyncsRemote(t *testing.T) {
	backend := &statusBackend{}
	svc, store := newService(backend)

	require.NoError(t, svc.SetLanguage(context.Background(), 7, "EN-gb"))

	stored, err := store.Language(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "en", stored)
	assert.Equal(t, "en", backend.syncedLang)
	assert.True(t, svc.HasStoredLanguage(context.Background(), 7))
}

func TestIsRegistered_LocalFlagShortCircuits(t *testing.T) {
	backend := &statusBackend{statusErr: apperrors.NewTransportError("telegram.status", assert.AnError)}
	svc, store := newService(backend)
	require.NoError(t, store.SetRegistered(context.Background(), 7, true))

	assert.True(t, svc.IsRegistered(context.Background(), 7))
}

func TestIsRegistered_BackendConfirmationWrittenBack(t *testing.T) {
	backend := &statusBackend{status: &models.UserStatus{Registered: true}}
	svc, store := newService(backend)

	assert.True(t, svc.IsRegistered(context.Background(), 7))

	local, err := store.Registered(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, local)
}

func TestIsRegistered_UnreachableBackendMeansNo(t *testing.T) {
	backend := &statusBackend{statusErr: apperrors.NewTransportError("telegram.status", assert.AnError)}
	svc, _ := newService(backend)

	assert.False(t, svc.IsRegistered(context.Background(), 7))
}
