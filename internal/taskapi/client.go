// Package taskapi is the HTTP client for the remote Task Status Service.
//
// The service exposes a dedicated status-transition endpoint and a generic
// partial-update endpoint; the dedicated one is known to reject edge-case
// payloads the generic one accepts, which is why the sync engine calls
// SetStatus first and falls back to UpdateItem.
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/sprintdeck/internal/board"
)

// Item is the wire shape consumed from the service.
type Item struct {
	ID        int64               `json:"id"`
	Title     string              `json:"title"`
	Priority  string              `json:"priority"`
	Assignees []board.AssigneeRef `json:"assignees"`
	Status    string              `json:"status"`
}

// Client talks to the Task Status Service. The zero value is not usable;
// construct with New.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	log     *slog.Logger
}

// New returns a client for the service at baseURL. token may be empty, in
// which case every call fails with KindAuthMissing before touching the
// network. httpc may be nil; timeouts are the transport's own.
func New(baseURL, token string, httpc *http.Client, logger *slog.Logger) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   httpc,
		log:     logger,
	}
}

// SetStatus calls the primary status-transition endpoint. A 2xx response
// with no decodable item body counts as a failure so the coordinator falls
// through to the generic update.
func (c *Client) SetStatus(ctx context.Context, itemID int64, status string) (Item, error) {
	body := map[string]string{"status": status}
	return c.doItem(ctx, http.MethodPost, fmt.Sprintf("/api/tasks/%d/status", itemID), body)
}

// UpdateItem calls the fallback generic partial-update endpoint.
func (c *Client) UpdateItem(ctx context.Context, itemID int64, fields map[string]any) (Item, error) {
	return c.doItem(ctx, http.MethodPatch, fmt.Sprintf("/api/tasks/%d", itemID), fields)
}

// ListItems fetches the authoritative item list, optionally filtered by
// project, for the initial load and for reconciliation passes.
func (c *Client) ListItems(ctx context.Context, project string) ([]Item, error) {
	path := "/api/tasks"
	if project != "" {
		path += "?project=" + url.QueryEscape(project)
	}
	data, err := c.doBody(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &Error{Kind: KindUnknown, Message: fmt.Sprintf("decode item list: %v", err)}
	}
	return items, nil
}

func (c *Client) doItem(ctx context.Context, method, path string, payload any) (Item, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return Item{}, &Error{Kind: KindUnknown, Message: fmt.Sprintf("encode request: %v", err)}
		}
		body = bytes.NewReader(data)
	}
	data, err := c.doBody(ctx, method, path, body)
	if err != nil {
		return Item{}, err
	}
	var item Item
	if len(data) == 0 {
		return Item{}, &Error{Kind: KindUnknown, Message: "empty response body"}
	}
	if err := json.Unmarshal(data, &item); err != nil {
		return Item{}, &Error{Kind: KindUnknown, Message: fmt.Sprintf("decode item: %v", err)}
	}
	return item, nil
}

func (c *Client) doBody(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	if c.token == "" {
		return nil, &Error{Kind: KindAuthMissing, Message: "no API token configured"}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Mutating calls carry an idempotency key so a retried-by-proxy request
	// cannot apply twice server-side.
	if method != http.MethodGet {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetworkFailure, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &Error{Kind: KindNetworkFailure, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug("taskapi call failed",
			"method", method, "path", path, "status", resp.StatusCode)
		return nil, &Error{
			Kind:       kindForStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(data)),
		}
	}
	return data, nil
}
