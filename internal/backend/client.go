// Package backend talks to the language-learning backend over HTTP.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the backend origin used when none is configured.
const DefaultBaseURL = "http://localhost:8000"

// Client is the set of backend operations the app uses.
type Client interface {
	// Converse sends one conversation turn and returns the reply.
	Converse(ctx context.Context, req ConverseRequest) (*ConverseReply, error)

	// Assist sends one vocabulary/grammar question and returns the reply
	// with any mastery annotations.
	Assist(ctx context.Context, req AssistRequest) (*AssistReply, error)

	// Progress fetches the learner's vocabulary progress summary.
	Progress(ctx context.Context, username string) (*Progress, error)

	// BaseURL returns the backend origin.
	BaseURL() string
}

// HTTPClient implements Client against a real backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// New creates an HTTPClient for baseURL. An empty baseURL selects
// DefaultBaseURL. hc may be nil. No timeout is applied; callers own
// cancellation through the context.
func New(baseURL string, hc *http.Client) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if hc == nil {
		hc = &http.Client{}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) Converse(ctx context.Context, req ConverseRequest) (*ConverseReply, error) {
	var reply ConverseReply
	if err := c.do(ctx, http.MethodPost, EndpointConverse, req, converseSchema, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *HTTPClient) Assist(ctx context.Context, req AssistRequest) (*AssistReply, error) {
	var reply AssistReply
	if err := c.do(ctx, http.MethodPost, EndpointAssist, req, assistSchema, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *HTTPClient) Progress(ctx context.Context, username string) (*Progress, error) {
	path := fmt.Sprintf(endpointProgress, url.PathEscape(username))
	var reply Progress
	if err := c.do(ctx, http.MethodGet, path, nil, progressSchema, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// do performs one request. body is JSON-encoded when non-nil. Every failure
// is returned as *ErrRequestFailed.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, schema *Schema, out any) error {
	fail := func(status int, err error) error {
		return &ErrRequestFailed{Endpoint: path, StatusCode: status, Err: err}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fail(0, fmt.Errorf("marshal request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fail(0, fmt.Errorf("create request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fail(0, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(resp.StatusCode, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, fmt.Errorf("unexpected status %s", resp.Status))
	}

	if err := decodeReply(schema, raw, out); err != nil {
		return fail(resp.StatusCode, err)
	}
	return nil
}
