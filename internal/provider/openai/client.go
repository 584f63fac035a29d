package openai

import (
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	ai "github.com/spetersoncode/imagegen"
)

// Client wraps the OpenAI SDK to implement ai.ImageProvider with DALL-E 3.
type Client struct {
	client     *openai.Client
	apiKey     string
	baseURL    string
	httpClient *http.Client
	size       openai.ImageGenerateParamsSize
	style      openai.ImageGenerateParamsStyle
}

// New creates a new DALL-E client with the given API key.
// An empty key is accepted; GenerateImage then fails with
// ai.CredentialMissingError without contacting the API.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey: apiKey,
		size:   openai.ImageGenerateParamsSize(DefaultSize),
		style:  openai.ImageGenerateParamsStyle(DefaultStyle),
	}
	for _, opt := range opts {
		opt(c)
	}

	// The SDK's own retries are disabled: the only retry allowed is the
	// client's single backend fallback.
	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if c.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(c.baseURL))
	}
	if c.httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(c.httpClient))
	}

	client := openai.NewClient(reqOpts...)
	c.client = &client
	return c
}

// ClientOption configures the DALL-E client.
type ClientOption func(*Client)

// WithBaseURL overrides the OpenAI API endpoint.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithSize sets the DALL-E output size token, e.g. "1792x1024".
func WithSize(size string) ClientOption {
	return func(c *Client) {
		c.size = openai.ImageGenerateParamsSize(size)
	}
}

// WithStyle sets the DALL-E style, "vivid" or "natural".
func WithStyle(style string) ClientOption {
	return func(c *Client) {
		c.style = openai.ImageGenerateParamsStyle(style)
	}
}

// Backend reports ai.BackendDallE.
func (c *Client) Backend() ai.Backend { return ai.BackendDallE }

var _ ai.ImageProvider = (*Client)(nil)
