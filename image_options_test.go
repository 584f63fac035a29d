package imagegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	t.Run("applies defaults when no options provided", func(t *testing.T) {
		req := NewRequest("a red fox")

		assert.Equal(t, "a red fox", req.Prompt)
		assert.Equal(t, BackendAuto, req.Backend)
		assert.Equal(t, 1024, req.Width)
		assert.Equal(t, 1024, req.Height)
		assert.Equal(t, ImageQualityStandard, req.Quality)
		assert.Equal(t, 30, req.Steps)
	})

	t.Run("applies multiple options", func(t *testing.T) {
		req := NewRequest("a red fox",
			WithBackend(BackendStability),
			WithImageSize(512, 768),
			WithImageQuality(ImageQualityHD),
			WithSteps(50),
		)

		assert.Equal(t, BackendStability, req.Backend)
		assert.Equal(t, 512, req.Width)
		assert.Equal(t, 768, req.Height)
		assert.Equal(t, ImageQualityHD, req.Quality)
		assert.Equal(t, 50, req.Steps)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		req := NewRequest("x", WithSteps(10), WithSteps(20))
		assert.Equal(t, 20, req.Steps)
	})
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr string
	}{
		{"valid defaults", NewRequest("a cat"), ""},
		{"empty prompt", NewRequest(""), "prompt is required"},
		{"blank prompt", NewRequest("   "), "prompt is required"},
		{"unknown backend", NewRequest("a cat", WithBackend("midjourney")), "unknown backend: midjourney"},
		{"unknown quality", NewRequest("a cat", WithImageQuality("ultra")), "unknown quality: ultra (must be standard or hd)"},
		{"negative width", NewRequest("a cat", WithImageSize(-1, 512)), "width and height must be positive"},
		{"negative steps", NewRequest("a cat", WithSteps(-5)), "steps must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsConfiguration(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestParseImageQuality(t *testing.T) {
	q, err := ParseImageQuality("")
	require.NoError(t, err)
	assert.Equal(t, ImageQualityStandard, q)

	q, err = ParseImageQuality("hd")
	require.NoError(t, err)
	assert.Equal(t, ImageQualityHD, q)

	_, err = ParseImageQuality("HD")
	assert.True(t, IsConfiguration(err))
}
