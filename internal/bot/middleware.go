package bot

import (
	"strings"

	"github.com/finora/bot-service/internal/domain/models"
	"github.com/finora/bot-service/internal/i18n"
	"github.com/finora/bot-service/internal/transport"
)

// StateLanguageChoice marks a session waiting on the initial language
// chooser. While it is set, the language-selection gate swallows everything
// except a choice or a restart.
const StateLanguageChoice = "language:choice"

// Callback namespaces that bypass the registration gate: language choices
// and the onboarding controls themselves.
var preRegistrationPrefixes = []string{"lang_", "onb_"}

// resolveLanguage fixes the reply language for the rest of the pipeline:
// stored choice first, then the backend profile, then the client locale,
// then the default. Always passes.
func (e *Engine) resolveLanguage(c *Context) (Result, error) {
	c.Lang = e.profiles.ResolveLanguage(c.Ctx, c.Event.User())
	return Pass, nil
}

// languageSelectionGate holds the dialog on the language chooser. A pending
// choice accepts only a lang_ callback or /start; anything else re-renders
// the chooser so the user cannot wander off with no language set.
func (e *Engine) languageSelectionGate(c *Context) (Result, error) {
	if c.Sess.State != StateLanguageChoice {
		return Pass, nil
	}

	switch ev := c.Event.(type) {
	case *models.CallbackEvent:
		if strings.HasPrefix(ev.Data, "lang_") {
			return Pass, nil
		}
	case *models.MessageEvent:
		if ev.IsCommand("/start") {
			return Pass, nil
		}
		c.DeleteInbound()
	}

	return Handled, c.Render(c.T("language.choose"), LanguageKeyboard("start"))
}

// registrationGate blocks unregistered users from the product surface.
// Restarting, registering (commands, shared contact, onboarding and language
// callbacks) pass through; everything else gets the registration prompt.
func (e *Engine) registrationGate(c *Context) (Result, error) {
	if e.profiles.IsRegistered(c.Ctx, c.UserID()) {
		return Pass, nil
	}

	switch ev := c.Event.(type) {
	case *models.MessageEvent:
		if ev.Contact != nil || ev.IsCommand("/start") || ev.IsCommand("/register") {
			return Pass, nil
		}
		c.DeleteInbound()
	case *models.CallbackEvent:
		for _, p := range preRegistrationPrefixes {
			if strings.HasPrefix(ev.Data, p) {
				return Pass, nil
			}
		}
	}

	return Handled, c.Render(c.T("registration.required"), RegistrationKeyboard(c.Lang))
}

// LanguageKeyboard builds the language chooser. The ctx tag keeps the
// /start chooser and the settings chooser on separate callback payloads.
func LanguageKeyboard(ctx string) *transport.Keyboard {
	kb := &transport.Keyboard{}
	for _, code := range i18n.SupportedLangs {
		kb.Row(transport.Button{
			Text: i18n.LanguageLabel(code, code),
			Data: "lang_" + ctx + "_" + code,
		})
	}
	return kb
}

// RegistrationKeyboard offers the single entry point into onboarding.
func RegistrationKeyboard(lang string) *transport.Keyboard {
	kb := &transport.Keyboard{}
	kb.Row(transport.Button{Text: i18n.T("registration.button", lang), Data: "onb_register"})
	return kb
}
