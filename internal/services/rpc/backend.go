package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "github.com/finora/bot-service/internal/domain/errors"
	"github.com/finora/bot-service/internal/domain/models"
)

// Backend is the typed surface of the financial backend consumed by the
// dialog flows. Every method maps to one named remote operation keyed by the
// chat user id.
type Backend interface {
	RegisterUser(ctx context.Context, userID int64, name string) error
	Status(ctx context.Context, userID int64) (*models.UserStatus, error)
	RegisterPhone(ctx context.Context, userID int64, phone, name string) error
	SetLanguage(ctx context.Context, userID int64, lang string) error

	BudgetMonth(ctx context.Context, userID int64, month string) (*models.Budget, error)
	RecalculateBudget(ctx context.Context, userID int64, month string) (*models.Budget, error)
	DailyTransactions(ctx context.Context, userID int64, date string) (*models.DailyStats, error)
	ImportTransaction(ctx context.Context, userID int64, amount int64, category, description, date string) error

	ListGoals(ctx context.Context, userID int64) ([]models.Goal, error)
	GetGoal(ctx context.Context, userID, goalID int64) (*models.Goal, error)
	CreateGoal(ctx context.Context, userID int64, title string, amountTotal int64, icon, deadline string) error
	Deposit(ctx context.Context, userID, goalID, amount int64, method string) (*models.Goal, error)
	CloseGoal(ctx context.Context, userID, goalID int64) (*models.Goal, error)
	ReopenGoal(ctx context.Context, userID, goalID int64) (*models.Goal, error)
	SetPrimary(ctx context.Context, userID, goalID int64) error
	MovePriority(ctx context.Context, userID, goalID int64, up bool) (*models.Goal, error)

	DailyInsight(ctx context.Context, userID int64) (*models.Insight, error)
	TransactionAnalysis(ctx context.Context, userID int64, days int) (*models.Insight, error)
	GoalAnalysis(ctx context.Context, userID, goalID int64) (*models.GoalAnalysis, error)
	SmartSaveRun(ctx context.Context, userID int64) (*models.SmartSaveResult, error)
}

// Service implements Backend on top of a generic Invoker.
type Service struct {
	invoker Invoker
}

// NewService wraps an invoker with the typed operation surface.
func NewService(invoker Invoker) *Service {
	return &Service{invoker: invoker}
}

func (s *Service) call(ctx context.Context, method string, params map[string]any, out any) error {
	result, err := s.invoker.Call(ctx, method, params)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return apperrors.NewTransportError(method, fmt.Errorf("re-encode result: %w", err))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperrors.NewTransportError(method, fmt.Errorf("malformed result payload: %w", err))
	}
	return nil
}

// RegisterUser creates or refreshes the backend user record. Best-effort on
// /start; flows treat failures as non-fatal.
func (s *Service) RegisterUser(ctx context.Context, userID int64, name string) error {
	return s.call(ctx, "user.register", map[string]any{"tg_user_id": userID, "name": name}, nil)
}

// Status reports registration and stored language for the user.
func (s *Service) Status(ctx context.Context, userID int64) (*models.UserStatus, error) {
	var out models.UserStatus
	if err := s.call(ctx, "telegram.status", map[string]any{"tg_user_id": userID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterPhone confirms the user's phone number.
func (s *Service) RegisterPhone(ctx context.Context, userID int64, phone, name string) error {
	return s.call(ctx, "telegram.register", map[string]any{
		"tg_user_id": userID,
		"phone":      phone,
		"name":       name,
	}, nil)
}

// SetLanguage stores the user's language preference remotely.
func (s *Service) SetLanguage(ctx context.Context, userID int64, lang string) error {
	return s.call(ctx, "telegram.setLanguage", map[string]any{"tg_user_id": userID, "language": lang}, nil)
}

// BudgetMonth fetches the stored budget for a month.
func (s *Service) BudgetMonth(ctx context.Context, userID int64, month string) (*models.Budget, error) {
	var out models.Budget
	if err := s.call(ctx, "budget.getMonth", map[string]any{"tg_user_id": userID, "month": month}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecalculateBudget recomputes and returns the budget for a month.
func (s *Service) RecalculateBudget(ctx context.Context, userID int64, month string) (*models.Budget, error) {
	var out models.Budget
	if err := s.call(ctx, "budget.recalculate", map[string]any{"tg_user_id": userID, "month": month}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DailyTransactions lists one day's transactions with totals.
func (s *Service) DailyTransactions(ctx context.Context, userID int64, date string) (*models.DailyStats, error) {
	var out models.DailyStats
	if err := s.call(ctx, "transaction.getDaily", map[string]any{"tg_user_id": userID, "date": date}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImportTransaction submits one manual transaction. Expense amounts are
// negative, incomes positive; description may be empty.
func (s *Service) ImportTransaction(ctx context.Context, userID int64, amount int64, category, description, date string) error {
	item := map[string]any{
		"amount":   amount,
		"category": category,
		"datetime": date,
	}
	if description != "" {
		item["description"] = description
	}
	return s.call(ctx, "transaction.import", map[string]any{
		"tg_user_id": userID,
		"items":      []map[string]any{item},
		"source":     "manual",
	}, nil)
}

// ListGoals returns the user's goals in backend order.
func (s *Service) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	var out struct {
		Goals []models.Goal `json:"goals"`
	}
	if err := s.call(ctx, "goal.list", map[string]any{"tg_user_id": userID}, &out); err != nil {
		return nil, err
	}
	return out.Goals, nil
}

// GetGoal returns one goal.
func (s *Service) GetGoal(ctx context.Context, userID, goalID int64) (*models.Goal, error) {
	var out models.Goal
	if err := s.call(ctx, "goal.get", map[string]any{"tg_user_id": userID, "goal_id": goalID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateGoal creates a savings goal; icon and deadline may be empty.
func (s *Service) CreateGoal(ctx context.Context, userID int64, title string, amountTotal int64, icon, deadline string) error {
	params := map[string]any{
		"tg_user_id":   userID,
		"title":        title,
		"amount_total": amountTotal,
	}
	if icon != "" {
		params["icon"] = icon
	}
	if deadline != "" {
		params["deadline"] = deadline
	}
	return s.call(ctx, "goal.create", params, nil)
}

// Deposit adds an amount to a goal and returns its updated state.
func (s *Service) Deposit(ctx context.Context, userID, goalID, amount int64, method string) (*models.Goal, error) {
	var out models.Goal
	if err := s.call(ctx, "goal.deposit", map[string]any{
		"tg_user_id": userID,
		"goal_id":    goalID,
		"amount":     amount,
		"method":     method,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CloseGoal closes a goal.
func (s *Service) CloseGoal(ctx context.Context, userID, goalID int64) (*models.Goal, error) {
	var out models.Goal
	if err := s.call(ctx, "goal.close", map[string]any{"tg_user_id": userID, "goal_id": goalID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReopenGoal reactivates a closed goal.
func (s *Service) ReopenGoal(ctx context.Context, userID, goalID int64) (*models.Goal, error) {
	var out models.Goal
	if err := s.call(ctx, "goal.reopen", map[string]any{"tg_user_id": userID, "goal_id": goalID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetPrimary flags a goal as the user's primary goal.
func (s *Service) SetPrimary(ctx context.Context, userID, goalID int64) error {
	return s.call(ctx, "goal.setPrimary", map[string]any{"tg_user_id": userID, "goal_id": goalID}, nil)
}

// MovePriority moves a goal up or down in priority order.
func (s *Service) MovePriority(ctx context.Context, userID, goalID int64, up bool) (*models.Goal, error) {
	method := "goal.priority.down"
	if up {
		method = "goal.priority.up"
	}
	var out models.Goal
	if err := s.call(ctx, method, map[string]any{"tg_user_id": userID, "goal_id": goalID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DailyInsight fetches today's AI tip.
func (s *Service) DailyInsight(ctx context.Context, userID int64) (*models.Insight, error) {
	var out models.Insight
	if err := s.call(ctx, "ai.insight.daily", map[string]any{"tg_user_id": userID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TransactionAnalysis summarises the last N days of transactions.
func (s *Service) TransactionAnalysis(ctx context.Context, userID int64, days int) (*models.Insight, error) {
	var out models.Insight
	if err := s.call(ctx, "ai.transaction.analysis", map[string]any{"tg_user_id": userID, "days": days}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GoalAnalysis runs the AI assessment for one goal.
func (s *Service) GoalAnalysis(ctx context.Context, userID, goalID int64) (*models.GoalAnalysis, error) {
	var out models.GoalAnalysis
	if err := s.call(ctx, "ai.goal.analysis", map[string]any{"tg_user_id": userID, "goal_id": goalID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SmartSaveRun asks the backend to compute and apply a safe save amount.
func (s *Service) SmartSaveRun(ctx context.Context, userID int64) (*models.SmartSaveResult, error) {
	var out models.SmartSaveResult
	if err := s.call(ctx, "smart.save.run", map[string]any{"tg_user_id": userID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
