// Package i18n_test provides unit tests for the message catalogs.
package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finora/bot-service/internal/i18n"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"ru":    "ru",
		"ru-RU": "ru",
		"UZ":    "uz",
		"en-GB": "en",
		"de":    "ru",
		"":      "ru",
	}
	for input, want := range cases {
		assert.Equal(t, want, i18n.Normalize(input), "input %q", input)
	}
}

func TestT_FallsBackToDefaultLanguage(t *testing.T) {
	// The uz catalog is partial; missing keys resolve through ru.
	assert.Equal(t, "Проверьте запись", i18n.T("txn.confirm.title", "uz"))
	assert.Contains(t, i18n.T("txn.date.today", "uz"), "Bugun")
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no.such.key", i18n.T("no.such.key", "en"))
}

func TestT_Substitution(t *testing.T) {
	assert.Equal(t, "Hi, Alex!", i18n.T("menu.greeting", "en", "Alex"))
}

// TestCatalogs_FlowKeysExist keeps the prompts the flows rely on present in
// at least one catalog, so a renamed key cannot silently render as itself.
func TestCatalogs_FlowKeysExist(t *testing.T) {
	keys := []string{
		"language.choose",
		"registration.required", "registration.button", "registration.share_contact",
		"registration.phone_in_use", "registration.invalid_phone", "registration.foreign_contact",
		"error.unavailable", "error.rejected",
		"common.back", "common.cancel", "common.confirm", "common.skip", "common.cancelled",
		"menu.title", "menu.expense", "menu.income", "menu.today", "menu.budget",
		"menu.goals", "menu.progress", "menu.insights", "menu.smart", "menu.settings",
		"txn.amount.expense", "txn.amount.income", "txn.amount.invalid",
		"txn.category", "txn.description", "txn.date", "txn.date.today", "txn.date.manual",
		"txn.date.manual_prompt", "txn.date.invalid",
		"txn.confirm.title", "txn.confirm.amount", "txn.confirm.category",
		"txn.confirm.description", "txn.confirm.date",
		"txn.saved.expense", "txn.saved.income",
		"goal.title_prompt", "goal.amount_prompt", "goal.icon_prompt",
		"goal.deadline_prompt", "goal.deadline.months", "goal.deadline.none",
		"goal.deadline.manual", "goal.deadline.manual_prompt", "goal.created",
		"goal.list.title", "goal.list.empty", "goal.new",
		"goal.detail.target", "goal.detail.saved", "goal.detail.deadline", "goal.detail.primary",
		"goal.deposit", "goal.set_primary", "goal.close", "goal.reopen", "goal.analyze",
		"goal.analysis.title", "goal.analysis.empty",
		"deposit.amount_prompt", "deposit.confirm", "deposit.done",
		"smart.none", "smart.proposal",
		"today.title", "today.income", "today.expense", "today.balance", "today.empty",
		"budget.title", "budget.limit", "budget.spent", "budget.left", "budget.daily",
		"progress.title", "progress.empty",
		"insights.title", "insights.week", "insights.trend", "insights.savings", "insights.tip",
		"insights.empty",
		"settings.title", "settings.language", "settings.clear_chat",
		"chat.cleared",
		"onboarding.welcome",
		"tour.welcome", "tour.welcome_body", "tour.begin", "tour.skip",
		"tour.focus", "tour.focus_body", "tour.focus_save", "tour.focus_track",
		"tour.goal_save", "tour.goal_track", "tour.goal_body", "tour.goal_create",
		"tour.income", "tour.income_body", "tour.income_add", "tour.expense_add",
		"tour.later", "tour.summary",
	}
	for _, lang := range i18n.SupportedLangs {
		assert.True(t, i18n.Has("language.options."+lang), "language.options.%s", lang)
	}
	for _, key := range keys {
		assert.True(t, i18n.Has(key), "missing catalog key %s", key)
	}
}
