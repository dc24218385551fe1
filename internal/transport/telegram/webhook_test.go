package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finora/bot-service/internal/domain/models"
	"github.com/finora/bot-service/internal/transport/telegram"
)

func TestToEvent_Message(t *testing.T) {
	body := []byte(`{
		"update_id": 10,
		"message": {
			"message_id": 77,
			"from": {"id": 7, "first_name": "Aziz", "last_name": "K", "language_code": "uz"},
			"chat": {"id": 55},
			"text": "50000"
		}
	}`)

	ev := decodeUpdate(t, body)
	msg, ok := ev.(*models.MessageEvent)
	require.True(t, ok)
	assert.Equal(t, int64(7), msg.From.ID)
	assert.Equal(t, "Aziz K", msg.From.Name)
	assert.Equal(t, "uz", msg.From.LocaleCode)
	assert.Equal(t, int64(55), msg.ChatID)
	assert.Equal(t, int64(77), msg.MessageID)
	assert.Equal(t, "50000", msg.Text)
	assert.Nil(t, msg.Contact)
}

func TestToEvent_Contact(t *testing.T) {
	body := []byte(`{
		"update_id": 11,
		"message": {
			"message_id": 78,
			"from": {"id": 7, "first_name": "Aziz"},
			"chat": {"id": 55},
			"contact": {"phone_number": "+998901234567", "user_id": 7}
		}
	}`)

	ev := decodeUpdate(t, body)
	msg, ok := ev.(*models.MessageEvent)
	require.True(t, ok)
	require.NotNil(t, msg.Contact)
	assert.Equal(t, "+998901234567", msg.Contact.Phone)
	assert.Equal(t, int64(7), msg.Contact.UserID)
}

func TestToEvent_Callback(t *testing.T) {
	body := []byte(`{
		"update_id": 12,
		"callback_query": {
			"id": "cbid",
			"from": {"id": 7, "first_name": "Aziz"},
			"data": "menu_expense",
			"message": {"message_id": 42, "chat": {"id": 55}}
		}
	}`)

	ev := decodeUpdate(t, body)
	cb, ok := ev.(*models.CallbackEvent)
	require.True(t, ok)
	assert.Equal(t, "menu_expense", cb.Data)
	assert.Equal(t, int64(42), cb.MessageID)
	assert.Equal(t, int64(55), cb.ChatID)
	assert.Equal(t, "cbid", cb.CallbackID)
}

func TestWebhook_SameUserEventsKeepArrivalOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var mu sync.Mutex
	var order []string
	handler := func(_ context.Context, ev models.Event) {
		msg := ev.(*models.MessageEvent)
		// Make the first event the slowest; a per-goroutine dispatch would
		// let later events overtake it.
		if msg.Text == "first" {
			time.Sleep(50 * time.Millisecond)
		}
		mu.Lock()
		order = append(order, msg.Text)
		mu.Unlock()
	}

	router := gin.New()
	telegram.NewWebhook(context.Background(), handler, zerolog.Nop()).Register(router, "/telegram/webhook")

	for i, text := range []string{"first", "second", "third"} {
		body, err := json.Marshal(map[string]any{
			"update_id": i + 1,
			"message": map[string]any{
				"message_id": i + 10,
				"from":       map[string]any{"id": 7},
				"chat":       map[string]any{"id": 7},
				"text":       text,
			},
		})
		require.NoError(t, err)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/telegram/webhook", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(order) == 3
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestWebhook_AcksAndDispatches(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var mu sync.Mutex
	var got models.Event
	handler := func(_ context.Context, ev models.Event) {
		mu.Lock()
		got = ev
		mu.Unlock()
	}

	router := gin.New()
	telegram.NewWebhook(context.Background(), handler, zerolog.Nop()).Register(router, "/telegram/webhook")

	body := []byte(`{"update_id":1,"message":{"message_id":5,"from":{"id":7},"chat":{"id":7},"text":"/start"}}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/telegram/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return got != nil
	}, time.Second, 5*time.Millisecond)
}

func TestWebhook_UnknownUpdateKindIsAcked(t *testing.T) {
	gin.SetMode(gin.TestMode)

	called := false
	router := gin.New()
	telegram.NewWebhook(context.Background(), func(context.Context, models.Event) { called = true }, zerolog.Nop()).
		Register(router, "/telegram/webhook")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/telegram/webhook", bytes.NewReader([]byte(`{"update_id":2}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, called)
}

func TestWebhook_BadPayloadIsRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	telegram.NewWebhook(context.Background(), func(context.Context, models.Event) {}, zerolog.Nop()).
		Register(router, "/telegram/webhook")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/telegram/webhook", bytes.NewReader([]byte(`{not json`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func decodeUpdate(t *testing.T, body []byte) models.Event {
	t.Helper()
	var upd telegram.Update
	require.NoError(t, json.Unmarshal(body, &upd))
	ev := telegram.ToEvent(&upd)
	require.NotNil(t, ev)
	return ev
}
