package imagegen

import (
	"context"
	"fmt"
)

// ImageProvider defines the interface for image generation backends.
type ImageProvider interface {
	// Backend reports which backend this provider implements.
	Backend() Backend
	// GenerateImage creates a single image for the request.
	// Fields the backend does not use are ignored.
	GenerateImage(ctx context.Context, req Request) (*Result, error)
}

// Pinger is implemented by providers that can report whether their
// service is reachable without generating anything.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ImageQuality specifies the quality level for generated images.
// Note: Only honored by DALL-E 3.
type ImageQuality string

const (
	ImageQualityStandard ImageQuality = "standard"
	ImageQualityHD       ImageQuality = "hd"
)

// ParseImageQuality converts a wire name into an ImageQuality.
// An empty string selects ImageQualityStandard.
func ParseImageQuality(s string) (ImageQuality, error) {
	switch q := ImageQuality(s); q {
	case "":
		return ImageQualityStandard, nil
	case ImageQualityStandard, ImageQualityHD:
		return q, nil
	default:
		return "", &ConfigurationError{Msg: fmt.Sprintf("unknown quality: %s (must be standard or hd)", s)}
	}
}

// Cost is an amount of US dollars in millionths, so that price
// multiples stay exact.
type Cost int64

// Common cost units.
const (
	Microdollar Cost = 1
	Cent        Cost = 10_000
	Dollar      Cost = 1_000_000
)

// Dollars returns the cost as a floating point dollar amount.
func (c Cost) Dollars() float64 { return float64(c) / float64(Dollar) }

// String formats the cost with three decimal places, e.g. "$0.040".
func (c Cost) String() string { return fmt.Sprintf("$%.3f", c.Dollars()) }

// ImageLocation says where a generated image can be found.
// Exactly one of URL or Base64 is set.
type ImageLocation struct {
	// URL points to a remotely hosted image.
	URL string
	// Base64 contains the base64-encoded image data.
	Base64 string
}

// RemoteImage returns a location for a remotely hosted image.
func RemoteImage(url string) ImageLocation { return ImageLocation{URL: url} }

// InlineImage returns a location for inline base64 image data.
func InlineImage(b64 string) ImageLocation { return ImageLocation{Base64: b64} }

// IsRemote reports whether the image is referenced by URL.
func (l ImageLocation) IsRemote() bool { return l.URL != "" && l.Base64 == "" }

// IsInline reports whether the image is carried inline.
func (l ImageLocation) IsInline() bool { return l.Base64 != "" && l.URL == "" }

// Result is the normalized outcome of a generation request.
type Result struct {
	// Backend is the backend that actually served the request.
	Backend Backend
	// Image is where the generated image can be found.
	Image ImageLocation
	// RevisedPrompt contains the prompt that was actually used.
	// DALL-E 3 rewrites prompts for safety and clarity.
	RevisedPrompt string
	// Cost is the approximate cost of this image.
	Cost Cost
	// Metadata holds provider specific details, such as generation info.
	Metadata map[string]any
}

// Validate checks the result invariants.
func (r *Result) Validate() error {
	if r == nil {
		return fmt.Errorf("nil result")
	}
	if !r.Image.IsRemote() && !r.Image.IsInline() {
		return fmt.Errorf("result must carry exactly one of url or base64 image data")
	}
	if r.Cost < 0 {
		return fmt.Errorf("negative cost %d", r.Cost)
	}
	return nil
}
