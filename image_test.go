package imagegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in       string
		expected Backend
	}{
		{"", BackendAuto},
		{"auto", BackendAuto},
		{"dall-e", BackendDallE},
		{"stability-ai", BackendStability},
		{"automatic1111", BackendAutomatic1111},
		{" dall-e ", BackendDallE},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			b, err := ParseBackend(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, b)
		})
	}

	t.Run("unknown backend is a configuration error", func(t *testing.T) {
		_, err := ParseBackend("midjourney")
		assert.True(t, IsConfiguration(err))
		assert.EqualError(t, err, "unknown backend: midjourney")
	})
}

func TestBackendCredentials(t *testing.T) {
	assert.Equal(t, "OPENAI_API_KEY", BackendDallE.CredentialEnv())
	assert.Equal(t, "STABILITY_API_KEY", BackendStability.CredentialEnv())
	assert.True(t, BackendDallE.RequiresCredential())
	assert.False(t, BackendAutomatic1111.RequiresCredential())
	assert.False(t, BackendAuto.Concrete())
	assert.True(t, BackendStability.Concrete())
}

func TestCost(t *testing.T) {
	c := 4 * Cent

	assert.InDelta(t, 0.04, c.Dollars(), 1e-12)
	assert.Equal(t, "$0.040", c.String())
	assert.Equal(t, "$0.000", Cost(0).String())
	assert.Equal(t, 10*c, 40*Cent)
}

func TestResultValidate(t *testing.T) {
	t.Run("remote image is valid", func(t *testing.T) {
		r := &Result{Backend: BackendDallE, Image: RemoteImage("https://example.com/a.png"), Cost: 4 * Cent}
		assert.NoError(t, r.Validate())
		assert.True(t, r.Image.IsRemote())
		assert.False(t, r.Image.IsInline())
	})

	t.Run("inline image is valid", func(t *testing.T) {
		r := &Result{Backend: BackendStability, Image: InlineImage("aGVsbG8=")}
		assert.NoError(t, r.Validate())
		assert.True(t, r.Image.IsInline())
	})

	t.Run("neither is invalid", func(t *testing.T) {
		r := &Result{Backend: BackendStability}
		assert.Error(t, r.Validate())
	})

	t.Run("both is invalid", func(t *testing.T) {
		r := &Result{Image: ImageLocation{URL: "https://example.com", Base64: "aGVsbG8="}}
		assert.Error(t, r.Validate())
	})

	t.Run("nil is invalid", func(t *testing.T) {
		var r *Result
		assert.Error(t, r.Validate())
	})
}
