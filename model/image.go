package model

import (
	ai "github.com/spetersoncode/imagegen"
)

// Field names a request field a backend may honor.
type Field string

const (
	FieldQuality Field = "quality"
	FieldWidth   Field = "width"
	FieldHeight  Field = "height"
	FieldSteps   Field = "steps"
)

// Capabilities describes what a backend does with a request.
type Capabilities struct {
	// Fields lists the request fields the backend honors; others are ignored.
	Fields []Field
	// QualityTier is a qualitative description of output quality.
	QualityTier string
	// SpeedTier is a qualitative description of generation speed.
	SpeedTier string
}

// Honors reports whether the backend uses the given request field.
func (c Capabilities) Honors(f Field) bool {
	for _, have := range c.Fields {
		if have == f {
			return true
		}
	}
	return false
}

// ImageModel represents the model served by an image generation backend.
type ImageModel struct {
	id           string
	name         string
	backend      ai.Backend
	pricing      ImagePricing
	capabilities Capabilities
}

// String returns the API identifier for this model.
func (m ImageModel) String() string { return m.id }

// Name returns the human-readable model name.
func (m ImageModel) Name() string { return m.name }

// Backend returns which backend serves this model.
func (m ImageModel) Backend() ai.Backend { return m.backend }

// Pricing returns the pricing for this model.
func (m ImageModel) Pricing() ImagePricing { return m.pricing }

// Capabilities returns the static capability record for this model.
func (m ImageModel) Capabilities() Capabilities { return m.capabilities }

// Cost returns the per-image cost at the given quality.
func (m ImageModel) Cost(q ai.ImageQuality) ai.Cost { return m.pricing.For(q) }

// Image models, one per backend.
// Costs are approximate list prices in USD.
var (
	DallE3 = ImageModel{
		id:      "dall-e-3",
		name:    "DALL-E 3",
		backend: ai.BackendDallE,
		pricing: ImagePricing{Standard: 4 * ai.Cent, HD: 8 * ai.Cent},
		capabilities: Capabilities{
			Fields:      []Field{FieldQuality},
			QualityTier: "Excellent",
			SpeedTier:   "Fast",
		},
	}

	StableDiffusionXL = ImageModel{
		id:      "stable-diffusion-xl-1024-v1-0",
		name:    "Stability AI SDXL",
		backend: ai.BackendStability,
		pricing: ImagePricing{Standard: 2 * ai.Cent, HD: 2 * ai.Cent},
		capabilities: Capabilities{
			Fields:      []Field{FieldWidth, FieldHeight, FieldSteps},
			QualityTier: "Very Good",
			SpeedTier:   "Medium",
		},
	}

	Automatic1111 = ImageModel{
		id:      "automatic1111",
		name:    "Automatic1111",
		backend: ai.BackendAutomatic1111,
		capabilities: Capabilities{
			Fields:      []Field{FieldWidth, FieldHeight, FieldSteps},
			QualityTier: "Good (depends on model)",
			SpeedTier:   "Slow-Medium",
		},
	}
)

// ImageModels returns the models of all backends in preference order.
func ImageModels() []ImageModel {
	return []ImageModel{DallE3, StableDiffusionXL, Automatic1111}
}

// ForBackend returns the model served by backend b.
func ForBackend(b ai.Backend) (ImageModel, bool) {
	for _, m := range ImageModels() {
		if m.backend == b {
			return m, true
		}
	}
	return ImageModel{}, false
}
