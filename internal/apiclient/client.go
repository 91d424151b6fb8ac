package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	APIKeyHeader   = "X-API-Key"
	DefaultTimeout = 15 * time.Second
)

// Response is the status and raw JSON body of one call.
type Response struct {
	Status       int
	DataResponse json.RawMessage
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Client calls the survey-console API. Calls are never retried.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	loader     *Loader
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLoader shares a loading counter between clients.
func WithLoader(l *Loader) Option {
	return func(c *Client) { c.loader = l }
}

func New(baseURL, apiKey string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		loader:     &Loader{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Loader returns the counter of calls in flight.
func (c *Client) Loader() *Loader {
	return c.loader
}

func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, payload interface{}) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, payload)
}

func (c *Client) Put(ctx context.Context, path string, payload interface{}) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, payload)
}

func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}) (*Response, error) {
	c.loader.start()
	defer c.loader.done()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("prepare %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	out := &Response{Status: resp.StatusCode}
	if len(bytes.TrimSpace(raw)) == 0 {
		return out, nil
	}
	if !json.Valid(raw) {
		// Non-JSON error pages from proxies are reported through the status alone.
		if !out.OK() {
			return out, nil
		}
		return out, fmt.Errorf("%s %s: response is not JSON (status %d)", method, path, resp.StatusCode)
	}
	out.DataResponse = raw
	return out, nil
}
