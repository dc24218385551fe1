// Package rpc_test provides unit tests for the backend RPC client.
package rpc_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/finora/bot-service/internal/domain/errors"
	"github.com/finora/bot-service/internal/services/rpc"
)

func newClient(t *testing.T, handler http.HandlerFunc) *rpc.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return rpc.NewClient(rpc.ClientConfig{URL: srv.URL, Token: "secret"})
}

func TestCall_SuccessUnwrapsResult(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2.0", req["jsonrpc"])
		assert.Equal(t, "goal.list", req["method"])
		assert.NotEmpty(t, req["id"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":{"goals":[]}}`))
	})

	result, err := client.Call(context.Background(), "goal.list", map[string]any{"tg_user_id": 7})
	require.NoError(t, err)
	assert.Contains(t, result, "goals")
}

func TestCall_ErrorObjectBecomesAppError(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","error":{"code":"phone_in_use","message":"already linked"}}`))
	})

	_, err := client.Call(context.Background(), "telegram.register", nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsApp(err))
	assert.False(t, apperrors.IsTransport(err))
	assert.Equal(t, "phone_in_use", apperrors.AppCode(err))
}

func TestCall_NumericErrorCode(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","error":{"code":-32601,"message":"method not found"}}`))
	})

	_, err := client.Call(context.Background(), "no.such.method", nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsApp(err))
	assert.Equal(t, "-32601", apperrors.AppCode(err))
}

func TestCall_NonJSONBodyIsTransportFailure(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>502 Bad Gateway</html>"))
	})

	_, err := client.Call(context.Background(), "budget.getMonth", nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsTransport(err))
	assert.False(t, apperrors.IsApp(err))
}

func TestCall_HTTPErrorWithoutErrorObjectIsTransportFailure(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1"}`))
	})

	_, err := client.Call(context.Background(), "smart.save.run", nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsTransport(err))
}

func TestCall_ConnectionRefusedIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := rpc.NewClient(rpc.ClientConfig{URL: url})
	_, err := client.Call(context.Background(), "telegram.status", nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsTransport(err))
}

func TestCall_EmptyResult(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":null}`))
	})

	result, err := client.Call(context.Background(), "telegram.setLanguage", nil)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
