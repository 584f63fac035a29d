package client

import (
	"context"
	"net/http"
	"time"

	ai "github.com/spetersoncode/imagegen"
	"github.com/spetersoncode/imagegen/internal/provider/automatic1111"
	"github.com/spetersoncode/imagegen/internal/provider/openai"
	"github.com/spetersoncode/imagegen/internal/provider/stability"
	"github.com/spetersoncode/imagegen/model"
)

// DefaultProbeTimeout bounds the local server status check.
const DefaultProbeTimeout = 2 * time.Second

// maxAttempts bounds automatic mode to a primary attempt and one fallback.
const maxAttempts = 2

// APIKeys holds credentials for the hosted backends.
// An empty key marks that backend unusable.
type APIKeys struct {
	OpenAI    string
	Stability string
}

// Config holds configuration for creating a client.
type Config struct {
	// APIKeys contains the hosted backend credentials.
	APIKeys APIKeys

	// OpenAIBaseURL overrides the OpenAI endpoint. Empty uses the SDK default.
	OpenAIBaseURL string

	// StabilityBaseURL overrides the Stability AI endpoint.
	StabilityBaseURL string

	// LocalURL is the Automatic1111 server address.
	// Empty uses http://127.0.0.1:7860.
	LocalURL string

	// HTTPClient is shared by all adapters. Nil uses a default client.
	HTTPClient *http.Client

	// ProbeTimeout bounds the local status check in Backends.
	// Zero uses DefaultProbeTimeout.
	ProbeTimeout time.Duration

	// Events is an optional channel for receiving client operation events.
	// Events are sent non-blocking; if the channel is full, events are dropped.
	Events chan<- Event
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithProvider replaces the adapter for p.Backend().
// Credential presence is still decided by Config.APIKeys.
func WithProvider(p ai.ImageProvider) ClientOption {
	return func(c *Client) {
		c.providers[p.Backend()] = p
	}
}

// Client selects a backend for each request and falls back once in
// automatic mode. A Client is immutable after New and safe for
// concurrent use.
type Client struct {
	apiKeys      APIKeys
	localURL     string
	probeTimeout time.Duration
	events       chan<- Event
	providers    map[ai.Backend]ai.ImageProvider
}

// New creates a client with the given configuration.
// All three adapters are built up front; hosted adapters without a key
// fail at call time with ai.CredentialMissingError.
func New(cfg Config, opts ...ClientOption) *Client {
	probeTimeout := cfg.ProbeTimeout
	if probeTimeout <= 0 {
		probeTimeout = DefaultProbeTimeout
	}
	localURL := cfg.LocalURL
	if localURL == "" {
		localURL = automatic1111.DefaultEndpoint
	}

	local := automatic1111.New(localURL, automatic1111.WithHTTPClient(cfg.HTTPClient))
	c := &Client{
		apiKeys:      cfg.APIKeys,
		localURL:     local.Endpoint(),
		probeTimeout: probeTimeout,
		events:       cfg.Events,
		providers: map[ai.Backend]ai.ImageProvider{
			ai.BackendDallE: openai.New(cfg.APIKeys.OpenAI,
				openai.WithBaseURL(cfg.OpenAIBaseURL),
				openai.WithHTTPClient(cfg.HTTPClient)),
			ai.BackendStability: stability.New(cfg.APIKeys.Stability,
				stability.WithBaseURL(cfg.StabilityBaseURL),
				stability.WithHTTPClient(cfg.HTTPClient)),
			ai.BackendAutomatic1111: local,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// hasCredential reports whether b can be attempted in automatic mode.
func (c *Client) hasCredential(b ai.Backend) bool {
	switch b {
	case ai.BackendDallE:
		return c.apiKeys.OpenAI != ""
	case ai.BackendStability:
		return c.apiKeys.Stability != ""
	case ai.BackendAutomatic1111:
		return true
	default:
		return false
	}
}

// Plan returns the backends automatic mode will try, in order.
// The plan always has exactly two entries: a primary chosen from
// ai.PreferenceOrder by credential presence, then Stability AI if it
// has a key and was not the primary, else the local server.
func (c *Client) Plan() []ai.Backend {
	primary := ai.BackendAutomatic1111
	for _, b := range ai.PreferenceOrder {
		if c.hasCredential(b) {
			primary = b
			break
		}
	}

	fallback := ai.BackendAutomatic1111
	if primary != ai.BackendStability && c.hasCredential(ai.BackendStability) {
		fallback = ai.BackendStability
	}
	return []ai.Backend{primary, fallback}
}

// GenerateImage produces one image for req.
//
// An explicit backend is invoked once and its error is returned unchanged.
// In automatic mode the plan from Plan is tried in order; if the fallback
// also fails the result is an *ai.AllBackendsFailedError carrying only the
// fallback's error. Invalid requests fail with *ai.ConfigurationError
// before any backend is contacted.
func (c *Client) GenerateImage(ctx context.Context, req ai.Request) (*ai.Result, error) {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	backend, _ := ai.ParseBackend(string(req.Backend))

	start := time.Now()
	emit(c.events, Event{Type: EventRequestStart, Operation: "image", Backend: backend})

	var (
		res *ai.Result
		err error
	)
	if backend == ai.BackendAuto {
		res, err = c.generateAuto(ctx, req)
	} else {
		res, err = c.attempt(ctx, backend, req, 1)
	}

	if err != nil {
		emit(c.events, Event{
			Type:      EventRequestError,
			Operation: "image",
			Backend:   backend,
			Duration:  time.Since(start),
			Error:     err,
		})
		return nil, err
	}

	emit(c.events, Event{
		Type:      EventRequestComplete,
		Operation: "image",
		Backend:   res.Backend,
		Duration:  time.Since(start),
	})
	return res, nil
}

func (c *Client) generateAuto(ctx context.Context, req ai.Request) (*ai.Result, error) {
	plan := c.Plan()
	attempted := make([]ai.Backend, 0, maxAttempts)

	var last error
	for i, b := range plan {
		if i >= maxAttempts {
			break
		}
		if i > 0 {
			emit(c.events, Event{Type: EventFallback, Operation: "image", Backend: b, Attempt: i + 1, Error: last})
		}
		attempted = append(attempted, b)

		res, err := c.attempt(ctx, b, req, i+1)
		if err == nil {
			return res, nil
		}
		last = err
	}
	return nil, &ai.AllBackendsFailedError{Attempted: attempted, Last: last}
}

// attempt invokes a single adapter and checks what it returned.
func (c *Client) attempt(ctx context.Context, b ai.Backend, req ai.Request, n int) (*ai.Result, error) {
	emit(c.events, Event{Type: EventAttemptStart, Operation: "image", Backend: b, Attempt: n})
	start := time.Now()

	res, err := c.providers[b].GenerateImage(ctx, req)
	if err == nil {
		if verr := res.Validate(); verr != nil {
			err = ai.NewMalformedResponseError(b, "malformed response", verr)
		}
	}
	if err != nil {
		emit(c.events, Event{
			Type:      EventAttemptFailed,
			Operation: "image",
			Backend:   b,
			Attempt:   n,
			Duration:  time.Since(start),
			Error:     err,
		})
		return nil, err
	}

	res.Backend = b
	return res, nil
}

// EstimateCost projects the cost of generating images with backend b.
// It performs no I/O. An empty quality means standard.
func (c *Client) EstimateCost(b ai.Backend, q ai.ImageQuality) (model.CostEstimate, error) {
	quality, err := ai.ParseImageQuality(string(q))
	if err != nil {
		return model.CostEstimate{}, err
	}
	return model.Estimate(b, quality)
}
