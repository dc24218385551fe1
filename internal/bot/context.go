// Package bot contains the dialog engine: the middleware pipeline, the
// per-user event dispatcher, the window renderer and the routing table the
// flows register into.
package bot

import (
	"context"

	"github.com/rs/zerolog"

	apperrors "github.com/finora/bot-service/internal/domain/errors"
	"github.com/finora/bot-service/internal/domain/models"
	"github.com/finora/bot-service/internal/i18n"
	"github.com/finora/bot-service/internal/services/advisor"
	"github.com/finora/bot-service/internal/services/profile"
	"github.com/finora/bot-service/internal/services/rpc"
	"github.com/finora/bot-service/internal/transport"
)

// Context carries one inbound event through the pipeline and its handler.
// The session it references is persisted by the dispatcher after the handler
// returns, under the per-user lock.
type Context struct {
	Ctx   context.Context
	Event models.Event
	Sess  *models.Session
	Lang  string
	Log   zerolog.Logger

	engine *Engine
}

// UserID returns the sender's id.
func (c *Context) UserID() int64 { return c.Event.User().ID }

// ChatID returns the chat the event arrived in.
func (c *Context) ChatID() int64 { return c.Event.Chat() }

// Backend exposes the remote financial backend.
func (c *Context) Backend() rpc.Backend { return c.engine.backend }

// Profiles exposes the language/registration service.
func (c *Context) Profiles() *profile.Service { return c.engine.profiles }

// Advisor exposes the fallback advisor.
func (c *Context) Advisor() *advisor.Advisor { return c.engine.advisor }

// Sender exposes the raw transport, for the rare step that works outside the
// window (contact request keyboards).
func (c *Context) Sender() transport.Sender { return c.engine.sender }

// T resolves a translation key in the event's language.
func (c *Context) T(key string, args ...any) string {
	return i18n.T(key, c.Lang, args...)
}

// Render updates the session's window message with the step's text and
// actions: edit in place when a window is tracked, otherwise send a new
// message and track it. Called exactly once per dialog step.
func (c *Context) Render(text string, kb *transport.Keyboard) error {
	if c.Sess.WindowMessageID != 0 {
		err := c.engine.sender.EditMessage(c.Ctx, c.Sess.ChatID, c.Sess.WindowMessageID, text, kb)
		if err == nil {
			return nil
		}
		// Window gone (deleted, too old, permissions); fall through to a
		// fresh message which becomes the new window.
		c.Log.Debug().Err(err).Int64("message_id", c.Sess.WindowMessageID).Msg("window edit failed, sending new message")
	}

	id, err := c.engine.sender.SendMessage(c.Ctx, c.Sess.ChatID, text, kb)
	if err != nil {
		return err
	}
	c.Sess.WindowMessageID = id
	return nil
}

// DeleteInbound removes the user's message that triggered this event, keeping
// the window the only visible step. Best-effort.
func (c *Context) DeleteInbound() {
	msg, ok := c.Event.(*models.MessageEvent)
	if !ok {
		return
	}
	if err := c.engine.sender.DeleteMessage(c.Ctx, msg.ChatID, msg.MessageID); err != nil {
		c.Log.Debug().Err(err).Msg("inbound delete failed")
	}
}

// FailTerminal ends the active flow after a classified remote failure: the
// flow data is cleared and the window shows wording that distinguishes an
// unreachable service from a rejected request. The user is never left stuck
// mid-flow.
func (c *Context) FailTerminal(err error, kb *transport.Keyboard) error {
	c.Log.Warn().Err(err).Str("state", c.Sess.State).Msg("flow terminated by remote failure")
	c.Sess.Reset()

	key := "error.rejected"
	if apperrors.IsTransport(err) {
		key = "error.unavailable"
	}
	return c.Render("⚠️ "+c.T(key), kb)
}
