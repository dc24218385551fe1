// Package telegram adapts the Telegram Bot API to the transport contract.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/finora/bot-service/internal/transport"
)

// SenderConfig holds the Bot API connection settings.
type SenderConfig struct {
	BotToken   string
	BaseURL    string
	HTTPClient *http.Client
}

// Sender implements transport.Sender against the Bot API.
type Sender struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewSender creates a Bot API sender.
func NewSender(cfg SenderConfig) (*Sender, error) {
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("bot token is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.telegram.org"
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Sender{token: cfg.BotToken, baseURL: baseURL, httpClient: httpClient}, nil
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

type sentMessage struct {
	MessageID int64 `json:"message_id"`
}

// SendMessage posts a new HTML-formatted message.
func (s *Sender) SendMessage(ctx context.Context, chatID int64, text string, kb *transport.Keyboard) (int64, error) {
	payload := map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	if kb != nil {
		payload["reply_markup"] = inlineMarkup(kb)
	}
	var msg sentMessage
	if err := s.call(ctx, "sendMessage", payload, &msg); err != nil {
		return 0, err
	}
	return msg.MessageID, nil
}

// EditMessage replaces the text and keyboard of a message in place.
func (s *Sender) EditMessage(ctx context.Context, chatID, messageID int64, text string, kb *transport.Keyboard) error {
	payload := map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
		"parse_mode": "HTML",
	}
	if kb != nil {
		payload["reply_markup"] = inlineMarkup(kb)
	}
	return s.call(ctx, "editMessageText", payload, nil)
}

// DeleteMessage removes a message.
func (s *Sender) DeleteMessage(ctx context.Context, chatID, messageID int64) error {
	return s.call(ctx, "deleteMessage", map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
	}, nil)
}

// RequestContact sends a one-time reply keyboard asking for the user's own
// contact.
func (s *Sender) RequestContact(ctx context.Context, chatID int64, text, buttonLabel string) error {
	return s.call(ctx, "sendMessage", map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
		"reply_markup": map[string]any{
			"keyboard":          [][]map[string]any{{{"text": buttonLabel, "request_contact": true}}},
			"resize_keyboard":   true,
			"one_time_keyboard": true,
		},
	}, nil)
}

// AnswerCallback acknowledges a callback query so the client drops its
// loading spinner.
func (s *Sender) AnswerCallback(ctx context.Context, callbackID string) error {
	return s.call(ctx, "answerCallbackQuery", map[string]any{
		"callback_query_id": callbackID,
	}, nil)
}

func (s *Sender) call(ctx context.Context, method string, payload map[string]any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", s.baseURL, s.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	var api apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&api); err != nil {
		return fmt.Errorf("%s returned undecodable body: %w", method, err)
	}
	if !api.OK {
		return fmt.Errorf("%s rejected: %s", method, api.Description)
	}
	if out != nil {
		if err := json.Unmarshal(api.Result, out); err != nil {
			return fmt.Errorf("failed to decode %s result: %w", method, err)
		}
	}
	return nil
}

func inlineMarkup(kb *transport.Keyboard) map[string]any {
	rows := make([][]map[string]string, 0, len(kb.Rows))
	for _, row := range kb.Rows {
		line := make([]map[string]string, 0, len(row))
		for _, b := range row {
			line = append(line, map[string]string{"text": b.Text, "callback_data": b.Data})
		}
		rows = append(rows, line)
	}
	return map[string]any{"inline_keyboard": rows}
}
