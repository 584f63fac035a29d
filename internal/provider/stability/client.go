// Package stability implements the Stability AI SDXL text-to-image backend
// over its v1 REST API.
package stability

import (
	"net/http"
	"strings"

	ai "github.com/spetersoncode/imagegen"
)

// DefaultBaseURL is the public Stability AI API endpoint.
const DefaultBaseURL = "https://api.stability.ai"

// Client implements ai.ImageProvider for Stability AI SDXL.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a new Stability AI client with the given API key.
// An empty key is accepted; GenerateImage then fails with
// ai.CredentialMissingError without contacting the API.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption configures the Stability AI client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		if url != "" {
			c.baseURL = strings.TrimRight(url, "/")
		}
	}
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// Backend reports ai.BackendStability.
func (c *Client) Backend() ai.Backend { return ai.BackendStability }

var _ ai.ImageProvider = (*Client)(nil)
