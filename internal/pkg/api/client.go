package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/etuitionbd/webclient/internal/app/models"
)

// AuthFailureHook is invoked when the backend rejects a session's bearer
// token. It receives the storage id of the rejected session so it can clear
// the record and let the UI fall back to the signed-out state.
type AuthFailureHook func(ctx context.Context, sessionID string)

// Client wraps every call to the backend REST API. All request paths share
// the same behavior here: bearer injection, JSON codec, error translation
// and the central expired-session reaction. Individual endpoints in
// endpoints.go stay thin because of it.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	logger        *zap.Logger
	onAuthFailure AuthFailureHook
	onCall        func(ctx context.Context, method, path string, status int, elapsed time.Duration)

	// notified dedups the auth-failure hook per session id: a page that
	// fires five parallel queries against an expired token must clear the
	// session once, not five times.
	notified sync.Map
}

// Option configures a Client.
type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithAuthFailureHook(hook AuthFailureHook) Option {
	return func(c *Client) { c.onAuthFailure = hook }
}

// WithCallObserver registers a callback fired after every backend response,
// for latency instruments. Transport failures do not fire it.
func WithCallObserver(fn func(ctx context.Context, method, path string, status int, elapsed time.Duration)) Option {
	return func(c *Client) { c.onCall = fn }
}

func NewClient(baseURL string, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError carries a non-2xx backend response through to the caller. Unwrap
// maps well-known statuses onto the models sentinels so handlers can branch
// with errors.Is without inspecting status codes themselves.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return models.ErrUnauthenticated
	case http.StatusForbidden:
		return models.ErrForbidden
	case http.StatusNotFound:
		return models.ErrNotFound
	case http.StatusConflict:
		return models.ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return models.ErrBadRequest
	default:
		return nil
	}
}

// errorBody is the backend's error envelope. Some routes use "message",
// older ones use "error"; accept both.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Do performs one backend request. A non-nil sess with a token gets the
// Authorization header; body (when non-nil) is JSON-encoded; a 2xx response
// is decoded into out (when non-nil). A 401 additionally fires the
// auth-failure hook, once per session id, before the error is returned, so
// the caller's own error branch still runs after the central reaction.
func (c *Client) Do(ctx context.Context, sess *models.Session, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess != nil && sess.Token != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if c.onCall != nil {
		c.onCall(ctx, method, path, resp.StatusCode, time.Since(start))
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrapf(err, "decode %s %s response", method, path)
		}
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode}
	var eb errorBody
	if raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); readErr == nil {
		if json.Unmarshal(raw, &eb) == nil {
			apiErr.Message = eb.Message
			if apiErr.Message == "" {
				apiErr.Message = eb.Error
			}
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleAuthFailure(ctx, sess)
	}

	c.logger.Debug("Backend call failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode))
	return apiErr
}

func (c *Client) handleAuthFailure(ctx context.Context, sess *models.Session) {
	if c.onAuthFailure == nil || sess == nil || sess.ID == "" {
		return
	}
	if _, loaded := c.notified.LoadOrStore(sess.ID, struct{}{}); loaded {
		return
	}
	c.logger.Info("Backend rejected session token, clearing session", zap.String("session_id", sess.ID))
	c.onAuthFailure(ctx, sess.ID)
}

// ResetAuthFailure re-arms the auth-failure hook for a session id. Called on
// successful login so a later expiry of the new token is handled again.
func (c *Client) ResetAuthFailure(sessionID string) {
	c.notified.Delete(sessionID)
}
