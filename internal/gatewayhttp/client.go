package gatewayhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-editor/document"
	"github.com/goliatone/go-editor/internal/logging"
	"github.com/goliatone/go-editor/pkg/interfaces"
)

const defaultTimeout = 15 * time.Second

// Client implements the persistence gateway against the dashboard content
// API: GET/PUT /api/content/{page} and POST /api/content/{page}/publish.
// Documents are sent as full replacements, never patches.
type Client struct {
	baseURL string
	http    *http.Client
	logger  interfaces.Logger
}

// Option customizes client behaviour.
type Option func(*Client)

// WithHTTPClient overrides the underlying http client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger injects the client logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New builds a client for the content API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ interfaces.Gateway = (*Client)(nil)

// Fetch retrieves the full document for a page key.
func (c *Client) Fetch(ctx context.Context, page string) (*document.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.contentURL(page), nil)
	if err != nil {
		return nil, fmt.Errorf("gatewayhttp: build fetch request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gatewayhttp: fetch %q: %w", page, err)
	}
	defer drainClose(res.Body)

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, interfaces.ErrPageNotFound
	case res.StatusCode < 200 || res.StatusCode >= 300:
		return nil, fmt.Errorf("gatewayhttp: fetch %q: unexpected status %d", page, res.StatusCode)
	}

	doc := &document.Document{}
	if err := json.NewDecoder(res.Body).Decode(doc); err != nil {
		return nil, fmt.Errorf("gatewayhttp: decode document for %q: %w", page, err)
	}
	return doc, nil
}

// Save sends the full document replacement for a page key.
func (c *Client) Save(ctx context.Context, page string, doc *document.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("gatewayhttp: encode document for %q: %w", page, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentURL(page), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("gatewayhttp: build save request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gatewayhttp: save %q: %w", page, err)
	}
	defer drainClose(res.Body)

	switch {
	case res.StatusCode == http.StatusNotFound:
		return interfaces.ErrPageNotFound
	case res.StatusCode < 200 || res.StatusCode >= 300:
		return fmt.Errorf("gatewayhttp: save %q: unexpected status %d", page, res.StatusCode)
	}
	c.logger.Debug("document saved", "page", page)
	return nil
}

// Publish asks the backend to promote the current draft for a page key.
func (c *Client) Publish(ctx context.Context, page string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.contentURL(page)+"/publish", nil)
	if err != nil {
		return fmt.Errorf("gatewayhttp: build publish request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gatewayhttp: publish %q: %w", page, err)
	}
	defer drainClose(res.Body)

	switch {
	case res.StatusCode == http.StatusNotFound:
		return interfaces.ErrPageNotFound
	case res.StatusCode < 200 || res.StatusCode >= 300:
		return fmt.Errorf("gatewayhttp: publish %q: unexpected status %d", page, res.StatusCode)
	}
	c.logger.Info("document published", "page", page)
	return nil
}

func (c *Client) contentURL(page string) string {
	return c.baseURL + "/api/content/" + url.PathEscape(page)
}

func drainClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
