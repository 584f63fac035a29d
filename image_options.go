package imagegen

import "strings"

// Request defaults.
const (
	DefaultWidth  = 1024
	DefaultHeight = 1024
	DefaultSteps  = 30
)

// Request contains a normalized image generation request.
// Width, Height and Steps are hints that backends may ignore.
type Request struct {
	Prompt  string
	Backend Backend
	Width   int
	Height  int
	Quality ImageQuality
	Steps   int
}

// ImageOption is a functional option for configuring image generation requests.
type ImageOption func(*Request)

// WithBackend selects the backend. BackendAuto enables fallback.
func WithBackend(b Backend) ImageOption {
	return func(r *Request) {
		r.Backend = b
	}
}

// WithImageSize sets the pixel dimensions.
// Note: Ignored by DALL-E 3, which uses a fixed size token.
func WithImageSize(width, height int) ImageOption {
	return func(r *Request) {
		r.Width = width
		r.Height = height
	}
}

// WithImageQuality sets the quality level.
// Note: Only honored by DALL-E 3.
func WithImageQuality(q ImageQuality) ImageOption {
	return func(r *Request) {
		r.Quality = q
	}
}

// WithSteps sets the number of diffusion steps.
// Note: Only honored by Stability AI and Automatic1111.
func WithSteps(n int) ImageOption {
	return func(r *Request) {
		r.Steps = n
	}
}

// NewRequest builds a request for prompt with defaults applied for
// every field the options leave unset.
func NewRequest(prompt string, opts ...ImageOption) Request {
	r := Request{Prompt: prompt}
	for _, opt := range opts {
		opt(&r)
	}
	return r.WithDefaults()
}

// WithDefaults returns a copy of r with zero-valued fields replaced by
// their defaults.
func (r Request) WithDefaults() Request {
	if r.Backend == "" {
		r.Backend = BackendAuto
	}
	if r.Width == 0 {
		r.Width = DefaultWidth
	}
	if r.Height == 0 {
		r.Height = DefaultHeight
	}
	if r.Quality == "" {
		r.Quality = ImageQualityStandard
	}
	if r.Steps == 0 {
		r.Steps = DefaultSteps
	}
	return r
}

// Validate checks that the request can be sent to a backend.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return &ConfigurationError{Msg: "prompt is required"}
	}
	if _, err := ParseBackend(string(r.Backend)); err != nil {
		return err
	}
	if _, err := ParseImageQuality(string(r.Quality)); err != nil {
		return err
	}
	if r.Width <= 0 || r.Height <= 0 {
		return &ConfigurationError{Msg: "width and height must be positive"}
	}
	if r.Steps <= 0 {
		return &ConfigurationError{Msg: "steps must be positive"}
	}
	return nil
}
