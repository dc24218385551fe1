// Package transport defines the narrow contract to the chat platform: inbound
// event delivery plus the three message primitives the window renderer needs.
package transport

import (
	"context"

	"github.com/finora/bot-service/internal/domain/models"
)

// Button is a single pressable action; Data comes back verbatim in a
// CallbackEvent.
type Button struct {
	Text string
	Data string
}

// Keyboard is rows of buttons attached to a message.
type Keyboard struct {
	Rows [][]Button
}

// Row appends a row of buttons and returns the keyboard for chaining.
func (k *Keyboard) Row(buttons ...Button) *Keyboard {
	k.Rows = append(k.Rows, buttons)
	return k
}

// Sender exposes the message primitives, all addressed by (chat id,
// message id). Implementations must be safe for concurrent use.
type Sender interface {
	// SendMessage posts a new message and returns its id.
	SendMessage(ctx context.Context, chatID int64, text string, kb *Keyboard) (int64, error)

	// EditMessage replaces the text and keyboard of an existing message.
	EditMessage(ctx context.Context, chatID, messageID int64, text string, kb *Keyboard) error

	// DeleteMessage removes a message. Failures are non-fatal for callers.
	DeleteMessage(ctx context.Context, chatID, messageID int64) error

	// RequestContact prompts the user to share their phone contact. Chat
	// platforms model this as a special reply keyboard, not an inline one.
	RequestContact(ctx context.Context, chatID int64, text, buttonLabel string) error

	// AnswerCallback acknowledges a button press so the client stops showing
	// the loading state. Failures are non-fatal for callers.
	AnswerCallback(ctx context.Context, callbackID string) error
}

// EventHandler consumes inbound events; the adapter calls it for every
// delivered update.
type EventHandler func(ctx context.Context, event models.Event)
