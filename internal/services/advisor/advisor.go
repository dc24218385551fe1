// Package advisor computes a safe deposit suggestion locally when the
// backend's smart-save operation cannot produce one.
package advisor

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/finora/bot-service/internal/domain/models"
	"github.com/finora/bot-service/internal/services/rpc"
)

// DefaultFloor is the minimum suggested amount in minor currency units. The
// value mirrors the backend's behavior and carries no domain meaning beyond
// that; override it via Config for other currencies.
const DefaultFloor = 1000

// fallbackReasons are the smart-save outcomes that mean "no usable number",
// as opposed to outright failures.
var fallbackReasons = map[string]bool{
	"no_budget":  true,
	"no_balance": true,
}

// ShouldFallback reports whether a smart-save result warrants running the
// local advisor.
func ShouldFallback(res *models.SmartSaveResult) bool {
	if res == nil || res.Status == "success" {
		return false
	}
	return fallbackReasons[res.Status] || fallbackReasons[res.Code]
}

// Suggestion is a proposed deposit. It is only a proposal: the amount is
// committed exclusively through an explicit user confirmation.
type Suggestion struct {
	Amount int64
	Goal   models.Goal
}

// Config holds the advisor configuration.
type Config struct {
	Backend rpc.Backend
	Floor   int64
	Now     func() time.Time
	Logger  zerolog.Logger
}

// Advisor implements the fallback computation.
type Advisor struct {
	backend rpc.Backend
	floor   int64
	now     func() time.Time
	logger  zerolog.Logger
}

// New creates a fallback advisor.
func New(cfg Config) *Advisor {
	floor := cfg.Floor
	if floor == 0 {
		floor = DefaultFloor
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Advisor{
		backend: cfg.Backend,
		floor:   floor,
		now:     now,
		logger:  cfg.Logger.With().Str("component", "advisor").Logger(),
	}
}

// Suggest computes a positive deposit amount from the month's recalculated
// budget and picks a target goal: the primary one if flagged, otherwise the
// first in list order. Returns (nil, nil) when there is nothing to suggest:
// no goals, or no positive balance.
func (a *Advisor) Suggest(ctx context.Context, userID int64) (*Suggestion, error) {
	goals, err := a.backend.ListGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return nil, nil
	}
	target := goals[0]
	for _, g := range goals {
		if g.IsPrimary {
			target = g
			break
		}
	}

	today := a.now()
	budget, err := a.backend.RecalculateBudget(ctx, userID, today.Format("2006-01"))
	if err != nil {
		return nil, err
	}

	balance := budget.Income - budget.Expenses
	if balance <= 0 {
		return nil, nil
	}

	amount := a.safeAmount(balance, daysLeftInMonth(today))
	a.logger.Debug().Int64("user_id", userID).Int64("balance", balance).Int64("amount", amount).Msg("fallback suggestion computed")

	return &Suggestion{Amount: amount, Goal: target}, nil
}

// safeAmount spreads half of the spare balance over the remaining days,
// clamped to [1, balance] and raised to the floor when affordable.
func (a *Advisor) safeAmount(balance int64, daysLeft int) int64 {
	base := float64(balance) / float64(daysLeft)
	safe := int64(math.Round(base * 0.5))

	switch {
	case safe <= 0:
		safe = min64(balance, 1)
	case safe < a.floor:
		safe = min64(balance, a.floor)
	}
	return min64(balance, safe)
}

// daysLeftInMonth counts the remaining days of the month inclusive of today,
// never less than 1.
func daysLeftInMonth(today time.Time) int {
	lastDay := time.Date(today.Year(), today.Month()+1, 0, 0, 0, 0, 0, today.Location()).Day()
	left := lastDay - today.Day() + 1
	if left < 1 {
		left = 1
	}
	return left
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
