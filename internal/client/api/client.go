// Package api is the authenticated REST client for the inkspot backend.
// One shared transport carries every resource call; the outbound hook
// attaches the bearer token from the session store, the inbound hook
// classifies failures and tears the session down on 401.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/inkspot/inkspot/internal/client/session"
)

const apiPrefix = "/api/v1"

type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store

	// onAuthFailure fires after a 401 cleared the session, once per failing
	// response. The CLI uses it to fall back to the login screen.
	onAuthFailure func()
}

func New(baseURL string, timeout time.Duration, store *session.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: store,
	}
}

// OnAuthFailure registers the session-teardown callback. Not safe to call
// concurrently with requests; wire it up at construction time.
func (c *Client) OnAuthFailure(fn func()) {
	c.onAuthFailure = fn
}

// Session exposes the injected store, for callers that gate on credentials.
func (c *Client) Session() *session.Store {
	return c.session
}

// hasCredential reports whether a token is currently stored. Storage errors
// count as "no credential": the request then simply goes out unauthenticated.
func (c *Client) hasCredential(ctx context.Context) bool {
	tok, err := c.session.Token(ctx)
	return err == nil && tok != ""
}

// authorize is the outbound hook: attach "Bearer <token>" when a credential
// is stored, leave the header off entirely when it is not. A stored value
// that already carries the scheme is used as-is, never doubled.
func (c *Client) authorize(ctx context.Context, req *http.Request) {
	tok, err := c.session.Token(ctx)
	if err != nil || tok == "" {
		return
	}
	if !strings.HasPrefix(tok, "Bearer ") {
		tok = "Bearer " + tok
	}
	req.Header.Set("Authorization", tok)
}

// fail is the inbound hook for non-2xx responses. On 401 it clears the
// session and notifies the registered callback; every classified error is
// returned to the caller, nothing is retried or swallowed here.
func (c *Client) fail(ctx context.Context, status int, body []byte) error {
	err := classify(status, body)
	if errors.Is(err, ErrUnauthorized) {
		_ = c.session.Clear(ctx)
		if c.onAuthFailure != nil {
			c.onAuthFailure()
		}
	}
	return err
}

// do shapes and dispatches one request. On success the response body is
// decoded into out (when non-nil) and the transport envelope never escapes.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(ctx, resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
