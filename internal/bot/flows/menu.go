// Package flows implements the dialog flows: the main menu, onboarding and
// registration, expense/income capture, goal management, deposits, smart
// saving and the read-only views. Flows register themselves on the engine's
// router and talk to services only through the bot context.
package flows

import (
	"strings"

	"github.com/finora/bot-service/internal/bot"
	"github.com/finora/bot-service/internal/domain/models"
	"github.com/finora/bot-service/internal/i18n"
	"github.com/finora/bot-service/internal/pkg/format"
	"github.com/finora/bot-service/internal/transport"
)

// Register installs every flow on the router.
func Register(r *bot.Router) {
	r.Command("/start", startCommand)
	r.Command("/register", registerCommand)
	r.Command("/language", languageCommand)

	r.Callback("menu_back", backToMenu)
	r.Callback("menu_cancel", cancelFlow)
	r.Callback("menu_settings", showSettings)
	r.Callback("settings_language", languageCommand)
	r.Callback("clear_chat", clearChat)
	r.CallbackPrefix("lang_", chooseLanguage)

	registerOnboarding(r)
	registerTransactions(r)
	registerGoals(r)
	registerDeposits(r)
	registerViews(r)
}

func startCommand(c *bot.Context) error {
	// Keep the backend's user record fresh; a dead backend must not block
	// the menu.
	if err := c.Backend().RegisterUser(c.Ctx, c.UserID(), c.Event.User().Name); err != nil {
		c.Log.Debug().Err(err).Msg("user refresh on /start failed")
	}
	c.DeleteInbound()

	if !c.Profiles().HasStoredLanguage(c.Ctx, c.UserID()) {
		c.Sess.Enter(bot.StateLanguageChoice)
		return c.Render(c.T("language.choose"), bot.LanguageKeyboard("start"))
	}

	c.Sess.Reset()
	if !c.Profiles().IsRegistered(c.Ctx, c.UserID()) {
		return showOnboarding(c)
	}
	return showMenu(c)
}

func backToMenu(c *bot.Context) error {
	c.Sess.Reset()
	return showMenu(c)
}

func cancelFlow(c *bot.Context) error {
	c.Sess.Reset()
	return c.Render(c.T("common.cancelled"), backKeyboard(c))
}

// showMenu renders the main menu. Row availability follows what the user
// already has; when the backend cannot answer, everything stays enabled.
func showMenu(c *bot.Context) error {
	kb := menuKeyboard(c)

	text := format.Header(c.T("menu.title"), "")
	if name := c.Event.User().Name; name != "" {
		text += "\n" + c.T("menu.greeting", name)
	}
	return c.Render(text, kb)
}

func menuKeyboard(c *bot.Context) *transport.Keyboard {
	flags := loadFlags(c)

	kb := &transport.Keyboard{}
	kb.Row(
		transport.Button{Text: c.T("menu.expense"), Data: "menu_expense"},
		transport.Button{Text: c.T("menu.income"), Data: "menu_income"},
	)
	kb.Row(
		transport.Button{Text: c.T("menu.today"), Data: "menu_today"},
		transport.Button{Text: c.T("menu.budget"), Data: "menu_budget"},
	)
	if flags.HasGoals {
		kb.Row(
			transport.Button{Text: c.T("menu.goals"), Data: "menu_goals"},
			transport.Button{Text: c.T("menu.progress"), Data: "menu_progress"},
		)
	} else {
		kb.Row(transport.Button{Text: c.T("menu.goals"), Data: "menu_goals"})
	}
	if flags.SmartSave {
		kb.Row(
			transport.Button{Text: c.T("menu.insights"), Data: "menu_insights"},
			transport.Button{Text: c.T("menu.smart"), Data: "menu_smart"},
		)
	} else {
		kb.Row(transport.Button{Text: c.T("menu.insights"), Data: "menu_insights"})
	}
	kb.Row(transport.Button{Text: c.T("menu.settings"), Data: "menu_settings"})
	return kb
}

func loadFlags(c *bot.Context) models.UserFlags {
	flags := models.UserFlags{HasGoals: true, HasBudget: true, HasTransactions: true, SmartSave: true}
	goals, err := c.Backend().ListGoals(c.Ctx, c.UserID())
	if err != nil {
		c.Log.Debug().Err(err).Msg("menu flags unavailable, showing full menu")
		return flags
	}
	open := 0
	for _, g := range goals {
		if g.Status != "closed" {
			open++
		}
	}
	flags.HasGoals = open > 0
	flags.SmartSave = open > 0
	flags.IsNewUser = len(goals) == 0
	return flags
}

func showSettings(c *bot.Context) error {
	kb := &transport.Keyboard{}
	kb.Row(transport.Button{Text: c.T("settings.language"), Data: "settings_language"})
	kb.Row(transport.Button{Text: c.T("settings.clear_chat"), Data: "clear_chat"})
	kb.Row(backButton(c))
	return c.Render(format.Header(c.T("settings.title"), ""), kb)
}

// clearChatSweep bounds how far back the cleanup reaches.
const clearChatSweep = 50

// clearChat deletes the bot's recent messages up to and including the window
// the button lives on, then opens a fresh menu window. The platform refuses
// deletes of other senders' messages, so only bot messages actually go.
func clearChat(c *bot.Context) error {
	ev, ok := c.Event.(*models.CallbackEvent)
	if !ok {
		return nil
	}
	for id := ev.MessageID - clearChatSweep; id <= ev.MessageID; id++ {
		if id <= 0 {
			continue
		}
		// Best-effort: most ids in the range never existed or are not ours.
		_ = c.Sender().DeleteMessage(c.Ctx, c.ChatID(), id)
	}

	c.Sess.Reset()
	c.Sess.WindowMessageID = 0
	return c.Render(c.T("chat.cleared"), menuKeyboard(c))
}

func languageCommand(c *bot.Context) error {
	c.DeleteInbound()
	return c.Render(c.T("language.choose"), bot.LanguageKeyboard("settings"))
}

// chooseLanguage handles lang_<ctx>_<code> presses from both the /start
// chooser and the settings chooser.
func chooseLanguage(c *bot.Context) error {
	ev, ok := c.Event.(*models.CallbackEvent)
	if !ok {
		return nil
	}
	parts := strings.Split(strings.TrimPrefix(ev.Data, "lang_"), "_")
	if len(parts) != 2 {
		c.Log.Debug().Str("data", ev.Data).Msg("malformed language callback ignored")
		return nil
	}
	from, code := parts[0], i18n.Normalize(parts[1])

	if err := c.Profiles().SetLanguage(c.Ctx, c.UserID(), code); err != nil {
		return c.FailTerminal(err, backKeyboard(c))
	}
	c.Lang = code

	if from == "start" {
		c.Sess.Reset()
		if !c.Profiles().IsRegistered(c.Ctx, c.UserID()) {
			return showOnboarding(c)
		}
		return showMenu(c)
	}

	kb := &transport.Keyboard{}
	kb.Row(backButton(c))
	return c.Render(c.T("language.saved", i18n.LanguageLabel(code, c.Lang)), kb)
}

func backButton(c *bot.Context) transport.Button {
	return transport.Button{Text: c.T("common.back"), Data: "menu_back"}
}

func backKeyboard(c *bot.Context) *transport.Keyboard {
	kb := &transport.Keyboard{}
	kb.Row(backButton(c))
	return kb
}

func cancelButton(c *bot.Context) transport.Button {
	return transport.Button{Text: c.T("common.cancel"), Data: "menu_cancel"}
}

func cancelKeyboard(c *bot.Context) *transport.Keyboard {
	kb := &transport.Keyboard{}
	kb.Row(cancelButton(c))
	return kb
}
