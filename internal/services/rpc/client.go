// Package rpc implements the JSON-RPC client for the financial backend,
// classifying every failure as either a transport or an application failure.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	apperrors "github.com/finora/bot-service/internal/domain/errors"
)

// DefaultTimeout bounds every remote call.
const DefaultTimeout = 20 * time.Second

// Invoker is the generic remote-call contract: a named operation with a
// parameter bag, returning the unwrapped result payload. It never mutates
// session state; callers own that.
type Invoker interface {
	Call(ctx context.Context, method string, params map[string]any) (map[string]any, error)
}

// ClientConfig holds the backend connection settings.
type ClientConfig struct {
	URL        string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client implements Invoker over HTTP.
type Client struct {
	url        string
	token      string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a backend RPC client.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		url:        cfg.URL,
		token:      cfg.Token,
		httpClient: httpClient,
		logger:     cfg.Logger.With().Str("component", "rpc").Logger(),
	}
}

type request struct {
	JSONRPC string         `json:"jsonrpc"`
	ID      string         `json:"id"`
	Method  string         `json:"method"`
	Params  map[string]any `json:"params"`
}

type response struct {
	Result map[string]any `json:"result"`
	Error  *responseError `json:"error"`
}

type responseError struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// errorCode tolerates both string and numeric backend error codes.
type errorCode string

func (c *errorCode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = errorCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("unsupported error code: %s", string(b))
	}
	*c = errorCode(n.String())
	return nil
}

func (c errorCode) String() string { return string(c) }

// Call invokes a named backend operation. Network errors, timeouts, non-JSON
// error bodies and unexplained HTTP statuses come back as TransportError; a
// well-formed error object comes back as AppError. On success the unwrapped
// result payload is returned, never the protocol envelope.
func (c *Client) Call(ctx context.Context, method string, params map[string]any) (map[string]any, error) {
	if params == nil {
		params = map[string]any{}
	}
	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, apperrors.NewTransportError(method, fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewTransportError(method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Msg("rpc transport error")
		return nil, apperrors.NewTransportError(method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewTransportError(method, err)
	}

	var decoded response
	if err := json.Unmarshal(raw, &decoded); err != nil {
		// Non-JSON body (proxy error page and the like) is a transport
		// problem regardless of status.
		c.logger.Error().Int("status", resp.StatusCode).Str("method", method).Msg("rpc non-json body")
		return nil, apperrors.NewTransportError(method, fmt.Errorf("HTTP %d: non-json body", resp.StatusCode))
	}

	if decoded.Error != nil {
		c.logger.Warn().Str("method", method).Str("code", decoded.Error.Code.String()).Str("message", decoded.Error.Message).Msg("rpc application error")
		return nil, apperrors.NewAppError(method, decoded.Error.Code.String(), decoded.Error.Message)
	}

	if resp.StatusCode >= 400 {
		c.logger.Error().Int("status", resp.StatusCode).Str("method", method).Msg("rpc http error without error object")
		return nil, apperrors.NewTransportError(method, fmt.Errorf("HTTP %d", resp.StatusCode))
	}

	if decoded.Result == nil {
		return map[string]any{}, nil
	}
	return decoded.Result, nil
}
