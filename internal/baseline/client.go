// Package baseline implements the HTTP client for the cockpit backend API.
package baseline

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
	"time"

	"github.com/google/uuid"

	"github.com/baseline-tools/cockpit/internal/common"
	"github.com/baseline-tools/cockpit/internal/model"
)

const defaultTimeout = 30 * time.Second

// Client talks to the cockpit backend over HTTP and implements
// service.CockpitClient.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: api base url is required", common.ErrMissingConfig)
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("%w: invalid api base url %q", common.ErrInvalidConfig, baseURL)
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the root URL this client was configured with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListQueue fetches the full ordered list of pending items.
func (c *Client) ListQueue(ctx context.Context) ([]model.QueueItem, error) {
	var items []model.QueueItem
	if err := c.get(ctx, "/queue", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListSuggestions fetches candidate classifications for one item.
func (c *Client) ListSuggestions(ctx context.Context, itemID string) ([]model.Suggestion, error) {
	var suggestions []model.Suggestion
	query := url.Values{"item_id": {itemID}}
	if err := c.get(ctx, "/suggestions", query, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// ListCategories fetches the category reference data.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.get(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListSubcategories fetches subcategories, optionally filtered by category.
func (c *Client) ListSubcategories(ctx context.Context, categoryID string) ([]model.Subcategory, error) {
	var subcategories []model.Subcategory
	var query url.Values
	if categoryID != "" {
		query = url.Values{"category_id": {categoryID}}
	}
	if err := c.get(ctx, "/subcategories", query, &subcategories); err != nil {
		return nil, err
	}
	return subcategories, nil
}

// SubmitItem commits a single reviewed item to the Baseline.
func (c *Client) SubmitItem(ctx context.Context, payload model.SubmitPayload) error {
	return c.post(ctx, "/process", payload)
}

// SubmitBatch commits many reviewed items in one request.
func (c *Client) SubmitBatch(ctx context.Context, payload model.BatchSubmitPayload) error {
	return c.post(ctx, "/process/batch", payload)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", common.ErrFetchFailed, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: GET %s returned %d: %s", common.ErrFetchFailed, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode %s response: %v", common.ErrFetchFailed, path, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: POST %s: %v", common.ErrSubmitFailed, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: POST %s returned 409", common.ErrDuplicateName, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: POST %s returned %d: %s", common.ErrSubmitFailed, path, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	slog.Debug("submission accepted", "path", path, "status", resp.StatusCode)
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
}
