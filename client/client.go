package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"worktrack/config"
)

// Operation-specific failures so callers can tell which call went wrong
// when building user-facing messages. Every non-success response and every
// malformed success body wraps exactly one of these.
var (
	ErrListFailed   = errors.New("failed to fetch todos")
	ErrAddFailed    = errors.New("failed to add todo")
	ErrUpdateFailed = errors.New("failed to update todo")
	ErrPatchFailed  = errors.New("failed to patch todo")
	ErrDeleteFailed = errors.New("failed to delete todo")
)

// Todo is the wire shape of one task record. Dates travel as YYYY-MM-DD.
type Todo struct {
	ID      int64  `json:"id"`
	Text    string `json:"text"`
	Done    bool   `json:"done"`
	Date    string `json:"date"`
	EndDate string `json:"endDate"`
}

// TodoForm is the create payload; a zero Done means "in progress".
type TodoForm struct {
	Text    string `json:"text"`
	Done    bool   `json:"done"`
	Date    string `json:"date"`
	EndDate string `json:"endDate"`
}

// TodoPatch names the subset of fields to change; absent fields are left
// untouched by the server.
type TodoPatch struct {
	Text    *string `json:"text,omitempty"`
	Done    *bool   `json:"done,omitempty"`
	Date    *string `json:"date,omitempty"`
	EndDate *string `json:"endDate,omitempty"`
}

// IsEmpty reports whether the patch names no field at all.
func (p TodoPatch) IsEmpty() bool {
	return p.Text == nil && p.Done == nil && p.Date == nil && p.EndDate == nil
}

type listEnvelope struct {
	Data []Todo `json:"data"`
}

type createdEnvelope struct {
	Todo Todo `json:"todo"`
}

type resultEnvelope struct {
	Success bool   `json:"success"`
	Data    Todo   `json:"data"`
	Message string `json:"message"`
}

type ackEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Client is the data layer over the todo API: one method per operation,
// no retries, no local merging of mutation results.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	baseURL := cfg.Client.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}

	timeout := time.Duration(cfg.Client.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewWithBaseURL builds a client against an explicit endpoint. Tests and
// one-off tooling use this directly.
func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// List fetches the entire collection.
func (c *Client) List(ctx context.Context) ([]Todo, error) {
	body, err := c.do(ctx, http.MethodGet, "/api", nil, ErrListFailed)
	if err != nil {
		return nil, err
	}

	envelope := listEnvelope{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", ErrListFailed, err)
	}

	return envelope.Data, nil
}

// Add creates a record and returns it, id included.
func (c *Client) Add(ctx context.Context, form TodoForm) (Todo, error) {
	body, err := c.do(ctx, http.MethodPost, "/api", form, ErrAddFailed)
	if err != nil {
		return Todo{}, err
	}

	envelope := createdEnvelope{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Todo{}, fmt.Errorf("%w: decoding response: %w", ErrAddFailed, err)
	}

	return envelope.Todo, nil
}

// Update replaces a record wholesale ("this call intends a full edit").
func (c *Client) Update(ctx context.Context, id int64, todo Todo) (Todo, error) {
	body, err := c.do(ctx, http.MethodPut, c.itemPath(id), todo, ErrUpdateFailed)
	if err != nil {
		return Todo{}, err
	}

	envelope := resultEnvelope{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Todo{}, fmt.Errorf("%w: decoding response: %w", ErrUpdateFailed, err)
	}

	return envelope.Data, nil
}

// Patch changes the named subset of fields ("this call intends one field
// changed").
func (c *Client) Patch(ctx context.Context, id int64, patch TodoPatch) (Todo, error) {
	body, err := c.do(ctx, http.MethodPatch, c.itemPath(id), patch, ErrPatchFailed)
	if err != nil {
		return Todo{}, err
	}

	envelope := resultEnvelope{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Todo{}, fmt.Errorf("%w: decoding response: %w", ErrPatchFailed, err)
	}

	return envelope.Data, nil
}

// Delete removes a record. No body data beyond the acknowledgment.
func (c *Client) Delete(ctx context.Context, id int64) error {
	body, err := c.do(ctx, http.MethodDelete, c.itemPath(id), nil, ErrDeleteFailed)
	if err != nil {
		return err
	}

	envelope := ackEnvelope{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("%w: decoding response: %w", ErrDeleteFailed, err)
	}

	return nil
}

func (c *Client) itemPath(id int64) string {
	return "/api/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, payload any, opErr error) ([]byte, error) {
	var reqBody io.Reader

	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding request: %w", opErr, err)
		}

		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %w", opErr, err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", opErr, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", opErr, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("todo API call failed")

		if msg := serverMessage(body); msg != "" {
			return nil, fmt.Errorf("%w: %s", opErr, msg)
		}

		return nil, fmt.Errorf("%w: unexpected status %d", opErr, resp.StatusCode)
	}

	return body, nil
}

// serverMessage pulls the failure envelope's message, if the body carried
// one.
func serverMessage(body []byte) string {
	envelope := ackEnvelope{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	return envelope.Message
}
