// Package apiclient talks to the remote invoice REST API.
//
// Every request picks up the stored credential at dispatch time. A 401
// clears the store only if it still holds the credential that request was
// sent with, and the unauthorized hook fires only for that clear. Nothing
// is retried.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/josh-kwaku/invoice-dashboard/internal/logging"
	"github.com/josh-kwaku/invoice-dashboard/internal/session"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL        string
	httpClient     *http.Client
	creds          session.Store
	onUnauthorized func(ctx context.Context)
}

type Option func(*Client)

// WithHTTPClient uses hc as the base client. Its transport is wrapped, not
// replaced.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		copied := *hc
		c.httpClient = &copied
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithUnauthorizedHandler registers fn to run after a 401 has cleared the
// stored credential.
func WithUnauthorizedHandler(fn func(ctx context.Context)) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

func New(baseURL string, creds session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		creds:      creds,
	}
	for _, opt := range opts {
		opt(c)
	}

	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.httpClient.Transport = &credentialTransport{base: base, creds: creds}
	return c
}

// credentialTransport attaches the stored credential to requests that do
// not already carry one, and notes what was sent in the request's
// sentCredential.
type credentialTransport struct {
	base  http.RoundTripper
	creds session.Store
}

func (t *credentialTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Authorization") == "" {
		if credential, ok := t.creds.Get(); ok {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", credential)
		}
	}
	if sent, ok := req.Context().Value(sentCredentialKey{}).(*sentCredential); ok {
		sent.value = req.Header.Get("Authorization")
	}
	return t.base.RoundTrip(req)
}

type sentCredentialKey struct{}

// sentCredential is the Authorization value a single request went out with.
type sentCredential struct {
	value string
}

type request struct {
	method string
	path   string
	body   any
	header http.Header
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	log := logging.FromContext(ctx)

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("marshal: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	sent := &sentCredential{}
	httpReq, err := http.NewRequestWithContext(context.WithValue(ctx, sentCredentialKey{}, sent), r.method, c.baseURL+r.path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(logging.RequestIDHeader, requestID(ctx))
	for k, vs := range r.header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	start := time.Now()
	log.Debug("api request sent", "method", r.method, "path", r.path)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("send: %w", err)
	}
	defer resp.Body.Close()

	log.Info("api response received",
		"method", r.method,
		"path", r.path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(ctx, sent.value)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) handleUnauthorized(ctx context.Context, credential string) {
	log := logging.FromContext(ctx)
	if credential == "" {
		return
	}
	cleared, err := c.creds.ClearIf(credential)
	if err != nil {
		log.Error("failed to clear credential after 401", "error", err)
		return
	}
	if !cleared {
		log.Debug("401 for a credential no longer stored, session kept")
		return
	}
	log.Warn("api rejected credential, session cleared")
	if c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}
}

func requestID(ctx context.Context) string {
	if id := logging.RequestIDFromContext(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
