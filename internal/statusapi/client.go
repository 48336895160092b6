// Package statusapi talks to the remote API that tracks background tasks and
// verifies signup clients.
package statusapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"task-status-viewer/internal/domain"
)

var (
	ErrMalformedResponse = errors.New("malformed response body")
	ErrMissingData       = errors.New("response envelope has no data")
)

// Error is returned when the API answers with a non-2xx status. Detail is
// the envelope's detail text, empty when the body carried none.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("status api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("status api: status %d: %s", e.StatusCode, e.Detail)
}

// Envelope is the wrapper every API response uses.
type Envelope struct {
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Detail  json.RawMessage `json:"detail,omitempty"`
}

// DetailText returns detail when it is a plain string. Validation failures
// send a list of objects there, which is not user-facing text.
func (e Envelope) DetailText() string {
	if len(e.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(e.Detail, &s); err != nil {
		return ""
	}
	return s
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func New(cfg Config, logger zerolog.Logger) *Client {
	return NewWithHTTPClient(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout}, logger)
}

func NewWithHTTPClient(baseURL string, hc *http.Client, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		log:     logger,
	}
}

// TaskStatus issues one GET {base}/task/{id}/status and unwraps the
// envelope's data. Nothing is cached.
func (c *Client) TaskStatus(ctx context.Context, id domain.TaskID) (domain.TaskStatusResult, error) {
	endpoint := c.baseURL + "/task/" + url.PathEscape(string(id)) + "/status"

	status, body, err := c.get(ctx, endpoint)
	if err != nil {
		return domain.TaskStatusResult{}, fmt.Errorf("request task status: %w", err)
	}

	var env Envelope
	decodeErr := json.Unmarshal(body, &env)

	if status < 200 || status > 299 {
		// a non-JSON error body still reports the upstream status
		return domain.TaskStatusResult{}, &Error{StatusCode: status, Detail: env.DetailText()}
	}
	if decodeErr != nil {
		return domain.TaskStatusResult{}, fmt.Errorf("decode task status: %w: %w", ErrMalformedResponse, decodeErr)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return domain.TaskStatusResult{}, fmt.Errorf("decode task status: %w", ErrMissingData)
	}

	var result domain.TaskStatusResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return domain.TaskStatusResult{}, fmt.Errorf("decode task status: %w: %w", ErrMalformedResponse, err)
	}

	return result, nil
}

// VerifyClient issues one GET {base}/auth/verify-client/{clientID}. Only the
// status code matters; the body is discarded.
func (c *Client) VerifyClient(ctx context.Context, clientID string) error {
	endpoint := c.baseURL + "/auth/verify-client/" + url.PathEscape(clientID)

	status, body, err := c.get(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("request client verification: %w", err)
	}

	if status < 200 || status > 299 {
		var env Envelope
		_ = json.Unmarshal(body, &env)
		return &Error{StatusCode: status, Detail: env.DetailText()}
	}

	return nil
}

func (c *Client) get(ctx context.Context, endpoint string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Debug().Err(err).Str("url", endpoint).Msg("close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response body: %w", err)
	}

	c.log.Debug().
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("status api request")

	return resp.StatusCode, body, nil
}
