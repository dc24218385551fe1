// Package models_test provides unit tests for the domain models.
package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finora/bot-service/internal/domain/models"
)

func TestSession_EnterKeepsDataWithinFlow(t *testing.T) {
	sess := models.NewSession(1, 1)
	sess.Enter("txn:amount")
	sess.Set("amount", "5000")

	sess.Enter("txn:confirm")

	v, ok := sess.Get("amount")
	assert.True(t, ok)
	assert.Equal(t, "5000", v)
}

func TestSession_EnterWipesDataAcrossFlows(t *testing.T) {
	sess := models.NewSession(1, 1)
	sess.Enter("txn:amount")
	sess.Set("amount", "5000")

	sess.Enter("goal:title")

	_, ok := sess.Get("amount")
	assert.False(t, ok)
	assert.Equal(t, "goal:title", sess.State)
}

func TestSession_ResetKeepsWindow(t *testing.T) {
	sess := models.NewSession(1, 1)
	sess.WindowMessageID = 42
	sess.Enter("dep:confirm")
	sess.Set("amount", "1000")

	sess.Reset()

	assert.False(t, sess.Active())
	assert.Empty(t, sess.Data)
	assert.Equal(t, int64(42), sess.WindowMessageID)
}

func TestSession_PresentDistinguishesSkippedFromUnset(t *testing.T) {
	sess := models.NewSession(1, 1)

	_, ok := sess.Present("description")
	assert.False(t, ok, "unset field must not be present")

	sess.SetAbsent("description")
	_, ok = sess.Present("description")
	assert.False(t, ok, "skipped field must not be present")

	_, stored := sess.Get("description")
	assert.True(t, stored, "skipped field is still recorded")

	sess.Set("description", "coffee")
	v, ok := sess.Present("description")
	assert.True(t, ok)
	assert.Equal(t, "coffee", v)
}

func TestMessageEvent_IsCommand(t *testing.T) {
	ev := &models.MessageEvent{Text: "/start"}
	assert.True(t, ev.IsCommand("/start"))
	assert.False(t, ev.IsCommand("/register"))

	withArgs := &models.MessageEvent{Text: "/start deeplink"}
	assert.True(t, withArgs.IsCommand("/start"))

	plain := &models.MessageEvent{Text: "start"}
	assert.False(t, plain.IsCommand("/start"))
}

func TestGoal_Percent(t *testing.T) {
	assert.Equal(t, 0, models.Goal{AmountTotal: 0, AmountSaved: 500}.Percent())
	assert.Equal(t, 50, models.Goal{AmountTotal: 1000, AmountSaved: 500}.Percent())
	assert.Equal(t, 100, models.Goal{AmountTotal: 1000, AmountSaved: 1000}.Percent())
}
