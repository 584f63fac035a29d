// Package automatic1111 implements the local Stable Diffusion backend by
// talking to an Automatic1111 web UI started with --api.
package automatic1111

import (
	"context"
	"io"
	"net/http"
	"strings"

	ai "github.com/spetersoncode/imagegen"
)

// DefaultEndpoint is where the web UI listens by default.
const DefaultEndpoint = "http://127.0.0.1:7860"

// Client implements ai.ImageProvider and ai.Pinger for a local server.
type Client struct {
	endpoint string
	client   *http.Client
}

// New creates a client for the server at endpoint.
// An empty endpoint selects DefaultEndpoint.
func New(endpoint string, opts ...ClientOption) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// Endpoint returns the server base URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Backend reports ai.BackendAutomatic1111.
func (c *Client) Backend() ai.Backend { return ai.BackendAutomatic1111 }

// Ping checks that the server answers its progress endpoint.
// The caller bounds the wait through ctx.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/sdapi/v1/progress", nil)
	if err != nil {
		return c.invalidEndpoint(err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return c.wrapTransportError(err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return ai.NewAdapterError(ai.BackendAutomatic1111,
			"Automatic1111 progress error: "+errorMessage(resp.StatusCode, resp.Body), resp.StatusCode, nil)
	}
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
	return nil
}

var (
	_ ai.ImageProvider = (*Client)(nil)
	_ ai.Pinger        = (*Client)(nil)
)
