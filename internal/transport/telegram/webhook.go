package telegram

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/finora/bot-service/internal/domain/models"
	"github.com/finora/bot-service/internal/transport"
)

// Update is the subset of the Bot API update we consume.
type Update struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		MessageID int64   `json:"message_id"`
		From      apiUser `json:"from"`
		Chat      apiChat `json:"chat"`
		Text      string  `json:"text"`
		Contact   *struct {
			PhoneNumber string `json:"phone_number"`
			UserID      int64  `json:"user_id"`
		} `json:"contact"`
	} `json:"message"`
	CallbackQuery *struct {
		ID      string  `json:"id"`
		From    apiUser `json:"from"`
		Data    string  `json:"data"`
		Message *struct {
			MessageID int64   `json:"message_id"`
			Chat      apiChat `json:"chat"`
		} `json:"message"`
	} `json:"callback_query"`
}

type apiUser struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	LanguageCode string `json:"language_code"`
}

type apiChat struct {
	ID int64 `json:"id"`
}

// Webhook receives Bot API updates over HTTP and forwards them as domain
// events. Events for the same user are handed to the handler in arrival
// order; events for different users run concurrently.
type Webhook struct {
	handler transport.EventHandler
	logger  zerolog.Logger
	baseCtx context.Context

	mu     sync.Mutex
	queues map[int64][]models.Event
}

// NewWebhook creates the webhook receiver. Dispatched handlers run under
// baseCtx, so cancelling it during shutdown reaches in-flight events.
func NewWebhook(baseCtx context.Context, handler transport.EventHandler, logger zerolog.Logger) *Webhook {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &Webhook{
		handler: handler,
		logger:  logger.With().Str("component", "telegram_webhook").Logger(),
		baseCtx: baseCtx,
		queues:  make(map[int64][]models.Event),
	}
}

// Register mounts the webhook route on the router.
func (w *Webhook) Register(router gin.IRoutes, path string) {
	router.POST(path, w.handleUpdate)
}

func (w *Webhook) handleUpdate(c *gin.Context) {
	var upd Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		w.logger.Warn().Err(err).Msg("undecodable update")
		c.Status(http.StatusBadRequest)
		return
	}

	event := ToEvent(&upd)
	if event == nil {
		// Update kind we do not handle; acknowledge so Telegram stops
		// redelivering it.
		c.Status(http.StatusOK)
		return
	}

	// Acknowledge immediately; the per-user queue keeps arrival order
	// without holding the HTTP request open.
	w.dispatch(event)
	c.Status(http.StatusOK)
}

// dispatch enqueues the event on its user's queue and starts a drainer when
// the queue was empty.
func (w *Webhook) dispatch(ev models.Event) {
	id := ev.User().ID
	w.mu.Lock()
	w.queues[id] = append(w.queues[id], ev)
	starting := len(w.queues[id]) == 1
	w.mu.Unlock()
	if starting {
		go w.drain(id)
	}
}

func (w *Webhook) drain(id int64) {
	for {
		w.mu.Lock()
		q := w.queues[id]
		if len(q) == 0 {
			delete(w.queues, id)
			w.mu.Unlock()
			return
		}
		ev := q[0]
		w.mu.Unlock()

		w.handler(w.baseCtx, ev)

		w.mu.Lock()
		w.queues[id] = w.queues[id][1:]
		w.mu.Unlock()
	}
}

// ToEvent converts an update into the domain event union, or nil for update
// kinds outside the contract.
func ToEvent(upd *Update) models.Event {
	switch {
	case upd.Message != nil:
		m := upd.Message
		ev := &models.MessageEvent{
			From:      toUserRef(m.From),
			ChatID:    m.Chat.ID,
			MessageID: m.MessageID,
			Text:      m.Text,
		}
		if m.Contact != nil {
			ev.Contact = &models.Contact{UserID: m.Contact.UserID, Phone: m.Contact.PhoneNumber}
		}
		return ev
	case upd.CallbackQuery != nil && upd.CallbackQuery.Message != nil:
		cb := upd.CallbackQuery
		return &models.CallbackEvent{
			From:       toUserRef(cb.From),
			ChatID:     cb.Message.Chat.ID,
			MessageID:  cb.Message.MessageID,
			Data:       cb.Data,
			CallbackID: cb.ID,
		}
	default:
		return nil
	}
}

func toUserRef(u apiUser) models.UserRef {
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}
	return models.UserRef{ID: u.ID, Name: name, LocaleCode: u.LanguageCode}
}
