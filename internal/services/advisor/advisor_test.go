// Package advisor_test provides unit tests for the fallback advisor.
package advisor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finora/bot-service/internal/domain/models"
	"github.com/finora/bot-service/internal/services/advisor"
	"github.com/finora/bot-service/internal/services/rpc"
)

// stubBackend overrides the two operations the advisor uses; everything else
// panics through the embedded nil interface.
type stubBackend struct {
	rpc.Backend
	goals     []models.Goal
	goalsErr  error
	budget    *models.Budget
	budgetErr error
}

func (s *stubBackend) ListGoals(context.Context, int64) ([]models.Goal, error) {
	return s.goals, s.goalsErr
}

func (s *stubBackend) RecalculateBudget(context.Context, int64, string) (*models.Budget, error) {
	return s.budget, s.budgetErr
}

// fixedNow pins the clock to 2026-08-22, leaving 10 days in August inclusive.
func fixedNow() time.Time {
	return time.Date(2026, time.August, 22, 12, 0, 0, 0, time.UTC)
}

func newAdvisor(backend rpc.Backend) *advisor.Advisor {
	return advisor.New(advisor.Config{Backend: backend, Now: fixedNow})
}

func TestShouldFallback(t *testing.T) {
	assert.False(t, advisor.ShouldFallback(nil))
	assert.False(t, advisor.ShouldFallback(&models.SmartSaveResult{Status: "success", SafeSave: 5000}))
	assert.True(t, advisor.ShouldFallback(&models.SmartSaveResult{Status: "error", Code: "no_budget"}))
	assert.True(t, advisor.ShouldFallback(&models.SmartSaveResult{Status: "no_balance"}))
	assert.False(t, advisor.ShouldFallback(&models.SmartSaveResult{Status: "error", Code: "internal"}))
}

func TestSuggest_HalvesDailySpread(t *testing.T) {
	backend := &stubBackend{
		goals:  []models.Goal{{ID: 1, Title: "Car"}},
		budget: &models.Budget{Income: 900000, Expenses: 500000},
	}

	sug, err := newAdvisor(backend).Suggest(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, sug)
	// 400000 balance over 10 remaining days, halved.
	assert.Equal(t, int64(20000), sug.Amount)
	assert.Equal(t, int64(1), sug.Goal.ID)
}

func TestSuggest_RaisesToFloor(t *testing.T) {
	backend := &stubBackend{
		goals:  []models.Goal{{ID: 1, Title: "Car"}},
		budget: &models.Budget{Income: 500000, Expenses: 480000},
	}

	sug, err := newAdvisor(backend).Suggest(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, sug)
	// 20000 / 10 / 2 = 1000 exactly at the floor.
	assert.Equal(t, int64(1000), sug.Amount)
}

func TestSuggest_FloorClampedToBalance(t *testing.T) {
	backend := &stubBackend{
		goals:  []models.Goal{{ID: 1, Title: "Car"}},
		budget: &models.Budget{Income: 500, Expenses: 0},
	}

	sug, err := newAdvisor(backend).Suggest(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, sug)
	// The floor never pushes the suggestion above the spare balance.
	assert.Equal(t, int64(500), sug.Amount)
}

func TestSuggest_PrefersPrimaryGoal(t *testing.T) {
	backend := &stubBackend{
		goals: []models.Goal{
			{ID: 1, Title: "Trip"},
			{ID: 2, Title: "Car", IsPrimary: true},
		},
		budget: &models.Budget{Income: 900000, Expenses: 500000},
	}

	sug, err := newAdvisor(backend).Suggest(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, sug)
	assert.Equal(t, int64(2), sug.Goal.ID)
}

func TestSuggest_NothingWithoutGoals(t *testing.T) {
	backend := &stubBackend{budget: &models.Budget{Income: 900000}}

	sug, err := newAdvisor(backend).Suggest(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, sug)
}

func TestSuggest_NothingWithoutBalance(t *testing.T) {
	backend := &stubBackend{
		goals:  []models.Goal{{ID: 1}},
		budget: &models.Budget{Income: 300000, Expenses: 350000},
	}

	sug, err := newAdvisor(backend).Suggest(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, sug)
}

func TestSuggest_PropagatesBackendErrors(t *testing.T) {
	backend := &stubBackend{goalsErr: errors.New("unreachable")}

	_, err := newAdvisor(backend).Suggest(context.Background(), 7)
	assert.Error(t, err)
}
