// Package telegram_test provides unit tests for the Bot API adapter.
package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finora/bot-service/internal/transport"
	"github.com/finora/bot-service/internal/transport/telegram"
)

type apiCall struct {
	Method  string
	Payload map[string]any
}

func setupSender(t *testing.T, respond func(method string) (int, string)) (*telegram.Sender, *[]apiCall) {
	t.Helper()

	var calls []apiCall
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(r.URL.Path, "/")
		method := parts[len(parts)-1]

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		calls = append(calls, apiCall{Method: method, Payload: payload})

		status, body := respond(method)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	sender, err := telegram.NewSender(telegram.SenderConfig{BotToken: "test-token", BaseURL: srv.URL})
	require.NoError(t, err)
	return sender, &calls
}

func okResult(result string) func(string) (int, string) {
	return func(string) (int, string) {
		return http.StatusOK, `{"ok":true,"result":` + result + `}`
	}
}

func TestSendMessage_ReturnsMessageID(t *testing.T) {
	sender, calls := setupSender(t, okResult(`{"message_id":321}`))

	kb := &transport.Keyboard{}
	kb.Row(transport.Button{Text: "Back", Data: "menu_back"})

	id, err := sender.SendMessage(context.Background(), 55, "<b>hi</b>", kb)
	require.NoError(t, err)
	assert.Equal(t, int64(321), id)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "sendMessage", call.Method)
	assert.Equal(t, "HTML", call.Payload["parse_mode"])
	assert.EqualValues(t, 55, call.Payload["chat_id"])
	assert.Contains(t, call.Payload, "reply_markup")
}

func TestSendMessage_NoKeyboardOmitsMarkup(t *testing.T) {
	sender, calls := setupSender(t, okResult(`{"message_id":1}`))

	_, err := sender.SendMessage(context.Background(), 55, "hi", nil)
	require.NoError(t, err)
	assert.NotContains(t, (*calls)[0].Payload, "reply_markup")
}

func TestEditMessage_TargetsMessage(t *testing.T) {
	sender, calls := setupSender(t, okResult(`true`))

	require.NoError(t, sender.EditMessage(context.Background(), 55, 321, "updated", nil))

	call := (*calls)[0]
	assert.Equal(t, "editMessageText", call.Method)
	assert.EqualValues(t, 321, call.Payload["message_id"])
}

func TestSender_APIRejectionSurfacesDescription(t *testing.T) {
	sender, _ := setupSender(t, func(string) (int, string) {
		return http.StatusBadRequest, `{"ok":false,"description":"message to edit not found"}`
	})

	err := sender.EditMessage(context.Background(), 55, 999, "updated", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message to edit not found")
}

func TestRequestContact_SendsReplyKeyboard(t *testing.T) {
	sender, calls := setupSender(t, okResult(`{"message_id":5}`))

	require.NoError(t, sender.RequestContact(context.Background(), 55, "share please", "Share"))

	call := (*calls)[0]
	assert.Equal(t, "sendMessage", call.Method)
	markup, ok := call.Payload["reply_markup"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, markup["one_time_keyboard"])
}

func TestDeleteMessage(t *testing.T) {
	sender, calls := setupSender(t, okResult(`true`))

	require.NoError(t, sender.DeleteMessage(context.Background(), 55, 900))
	assert.Equal(t, "deleteMessage", (*calls)[0].Method)
}

func TestAnswerCallback_AcknowledgesQuery(t *testing.T) {
	sender, calls := setupSender(t, okResult(`true`))

	require.NoError(t, sender.AnswerCallback(context.Background(), "cb-77"))

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "answerCallbackQuery", call.Method)
	assert.Equal(t, "cb-77", call.Payload["callback_query_id"])
}
