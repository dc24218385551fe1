// Package rpc_test provides unit tests for the typed backend surface.
package rpc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finora/bot-service/internal/services/rpc"
)

// fakeInvoker records the last call and replays a canned result.
type fakeInvoker struct {
	method string
	params map[string]any
	result map[string]any
	err    error
}

func (f *fakeInvoker) Call(_ context.Context, method string, params map[string]any) (map[string]any, error) {
	f.method = method
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestImportTransaction_WrapsSingleItem(t *testing.T) {
	inv := &fakeInvoker{result: map[string]any{}}
	svc := rpc.NewService(inv)

	err := svc.ImportTransaction(context.Background(), 7, -50000, "food", "lunch", "2026-08-29")
	require.NoError(t, err)

	assert.Equal(t, "transaction.import", inv.method)
	assert.Equal(t, "manual", inv.params["source"])
	assert.EqualValues(t, 7, inv.params["tg_user_id"])

	items, ok := inv.params["items"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.EqualValues(t, -50000, items[0]["amount"])
	assert.Equal(t, "food", items[0]["category"])
	assert.Equal(t, "lunch", items[0]["description"])
	assert.Equal(t, "2026-08-29", items[0]["datetime"])
}

func TestImportTransaction_OmitsEmptyDescription(t *testing.T) {
	inv := &fakeInvoker{result: map[string]any{}}
	svc := rpc.NewService(inv)

	require.NoError(t, svc.ImportTransaction(context.Background(), 7, 100000, "salary", "", "2026-08-29"))

	items := inv.params["items"].([]map[string]any)
	_, present := items[0]["description"]
	assert.False(t, present)
}

func TestListGoals_UnwrapsEnvelope(t *testing.T) {
	inv := &fakeInvoker{result: map[string]any{
		"goals": []map[string]any{
			{"id": 1, "title": "Car", "amount_total": 1000000, "amount_saved": 250000, "is_primary": true},
			{"id": 2, "title": "Trip", "amount_total": 400000},
		},
	}}
	svc := rpc.NewService(inv)

	goals, err := svc.ListGoals(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "goal.list", inv.method)
	require.Len(t, goals, 2)
	assert.Equal(t, "Car", goals[0].Title)
	assert.True(t, goals[0].IsPrimary)
	assert.Equal(t, 25, goals[0].Percent())
}

func TestSmartSaveRun_MapsResult(t *testing.T) {
	inv := &fakeInvoker{result: map[string]any{
		"status":    "error",
		"code":      "no_budget",
		"message":   "budget missing",
		"safe_save": 0,
	}}
	svc := rpc.NewService(inv)

	res, err := svc.SmartSaveRun(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "smart.save.run", inv.method)
	assert.Equal(t, "error", res.Status)
	assert.Equal(t, "no_budget", res.Code)
}

func TestMovePriority_Direction(t *testing.T) {
	inv := &fakeInvoker{result: map[string]any{"id": 3, "title": "Trip"}}
	svc := rpc.NewService(inv)

	_, err := svc.MovePriority(context.Background(), 7, 3, true)
	require.NoError(t, err)
	assert.Equal(t, "goal.priority.up", inv.method)

	_, err = svc.MovePriority(context.Background(), 7, 3, false)
	require.NoError(t, err)
	assert.Equal(t, "goal.priority.down", inv.method)
}
