package model

import (
	"testing"

	ai "github.com/spetersoncode/imagegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name        string
		backend     ai.Backend
		quality     ai.ImageQuality
		perImage    float64
		description string
	}{
		{"dall-e hd", ai.BackendDallE, ai.ImageQualityHD, 0.08, "DALL-E 3 hd quality"},
		{"dall-e standard", ai.BackendDallE, ai.ImageQualityStandard, 0.04, "DALL-E 3 standard quality"},
		{"dall-e default quality", ai.BackendDallE, "", 0.04, "DALL-E 3 standard quality"},
		{"stability standard", ai.BackendStability, ai.ImageQualityStandard, 0.02, "Stability AI SDXL"},
		{"stability hd", ai.BackendStability, ai.ImageQualityHD, 0.02, "Stability AI SDXL"},
		{"automatic1111 standard", ai.BackendAutomatic1111, ai.ImageQualityStandard, 0, "Automatic1111 (local, free)"},
		{"automatic1111 hd", ai.BackendAutomatic1111, ai.ImageQualityHD, 0, "Automatic1111 (local, free)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est, err := Estimate(tt.backend, tt.quality)
			require.NoError(t, err)

			assert.Equal(t, tt.backend, est.Backend)
			assert.InDelta(t, tt.perImage, est.PerImage.Dollars(), 1e-9)
			assert.Equal(t, tt.description, est.Description)
		})
	}
}

func TestEstimate_LinearMultiples(t *testing.T) {
	for _, m := range ImageModels() {
		for _, q := range []ai.ImageQuality{ai.ImageQualityStandard, ai.ImageQualityHD} {
			est, err := Estimate(m.Backend(), q)
			require.NoError(t, err)

			assert.Equal(t, 10*est.PerImage, est.Per10, "%s/%s", m.Backend(), q)
			assert.Equal(t, 100*est.PerImage, est.Per100, "%s/%s", m.Backend(), q)
		}
	}
}

func TestEstimate_UnknownBackend(t *testing.T) {
	t.Run("auto is not estimable", func(t *testing.T) {
		_, err := Estimate(ai.BackendAuto, ai.ImageQualityStandard)
		assert.True(t, ai.IsConfiguration(err))
		assert.EqualError(t, err, "unknown backend: auto")
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := Estimate("midjourney", ai.ImageQualityStandard)
		assert.True(t, ai.IsConfiguration(err))
	})
}

func TestImagePricing(t *testing.T) {
	t.Run("quality tiers", func(t *testing.T) {
		assert.True(t, DallE3.Pricing().HasQualityTiers())
		assert.False(t, StableDiffusionXL.Pricing().HasQualityTiers())
	})

	t.Run("free", func(t *testing.T) {
		assert.True(t, Automatic1111.Pricing().IsFree())
		assert.False(t, DallE3.Pricing().IsFree())
	})

	t.Run("range", func(t *testing.T) {
		assert.Equal(t, "$0.04-$0.08 per image", DallE3.Pricing().Range())
		assert.Equal(t, "$0.02 per image", StableDiffusionXL.Pricing().Range())
		assert.Equal(t, "Free (local)", Automatic1111.Pricing().Range())
	})
}

func TestCapabilities(t *testing.T) {
	assert.True(t, DallE3.Capabilities().Honors(FieldQuality))
	assert.False(t, DallE3.Capabilities().Honors(FieldSteps))
	assert.True(t, StableDiffusionXL.Capabilities().Honors(FieldSteps))
	assert.False(t, Automatic1111.Capabilities().Honors(FieldQuality))
}

func TestForBackend(t *testing.T) {
	m, ok := ForBackend(ai.BackendStability)
	require.True(t, ok)
	assert.Equal(t, "stable-diffusion-xl-1024-v1-0", m.String())

	_, ok = ForBackend(ai.BackendAuto)
	assert.False(t, ok)

	models := ImageModels()
	require.Len(t, models, 3)
	for i, b := range ai.PreferenceOrder {
		assert.Equal(t, b, models[i].Backend())
	}
}
