// Package models holds the domain data model: inbound events, sessions and
// backend payloads.
package models

// Event is the closed set of inbound chat events. The pipeline and dialog
// handlers type-switch over it exhaustively; the transport adapter is the only
// producer.
type Event interface {
	// User returns the sender.
	User() UserRef
	// Chat returns the chat the event arrived in.
	Chat() int64

	isEvent()
}

// UserRef identifies the sender of an event.
type UserRef struct {
	ID         int64
	Name       string
	LocaleCode string
}

// Contact is a shared phone contact attached to a message.
type Contact struct {
	UserID int64
	Phone  string
}

// MessageEvent is a free-text message, optionally carrying a shared contact.
type MessageEvent struct {
	From      UserRef
	ChatID    int64
	MessageID int64
	Text      string
	Contact   *Contact
}

func (e *MessageEvent) User() UserRef { return e.From }
func (e *MessageEvent) Chat() int64   { return e.ChatID }
func (e *MessageEvent) isEvent()      {}

// IsCommand reports whether the message text is the given slash command.
func (e *MessageEvent) IsCommand(cmd string) bool {
	if e.Text == cmd {
		return true
	}
	return len(e.Text) > len(cmd) && e.Text[:len(cmd)+1] == cmd+" "
}

// CallbackEvent is a structured button press. Data is the opaque payload the
// keyboard was built with; MessageID is the message the keyboard lives on.
// CallbackID is the platform's query id, acknowledged once after dispatch.
type CallbackEvent struct {
	From       UserRef
	ChatID     int64
	MessageID  int64
	Data       string
	CallbackID string
}

func (e *CallbackEvent) User() UserRef { return e.From }
func (e *CallbackEvent) Chat() int64   { return e.ChatID }
func (e *CallbackEvent) isEvent()      {}
