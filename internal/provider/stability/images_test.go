package stability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	ai "github.com/spetersoncode/imagegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateImage(t *testing.T) {
	t.Run("sends sdxl payload and returns inline image", func(t *testing.T) {
		var got generationRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/generation/stable-diffusion-xl-1024-v1-0/text-to-image", r.URL.Path)
			assert.Equal(t, "Bearer sk-stab", r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"artifacts":[{"base64":"aW1hZ2U=","seed":42,"finishReason":"SUCCESS"}]}`))
		}))
		defer server.Close()

		c := New("sk-stab", WithBaseURL(server.URL+"/"))
		res, err := c.GenerateImage(context.Background(), ai.NewRequest("a castle", ai.WithImageSize(768, 512), ai.WithSteps(40)))
		require.NoError(t, err)

		assert.Equal(t, ai.BackendStability, res.Backend)
		assert.Equal(t, "aW1hZ2U=", res.Image.Base64)
		assert.Empty(t, res.Image.URL)
		assert.Equal(t, 2*ai.Cent, res.Cost)
		assert.Equal(t, "SUCCESS", res.Metadata["finish_reason"])
		assert.EqualValues(t, 42, res.Metadata["seed"])
		require.NoError(t, res.Validate())

		require.Len(t, got.TextPrompts, 1)
		assert.Equal(t, "a castle", got.TextPrompts[0].Text)
		assert.Equal(t, 768, got.Width)
		assert.Equal(t, 512, got.Height)
		assert.Equal(t, 40, got.Steps)
		assert.Equal(t, float64(CFGScale), got.CFGScale)
		assert.Equal(t, 1, got.Samples)
	})

	t.Run("defaults width height and steps", func(t *testing.T) {
		var got generationRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Write([]byte(`{"artifacts":[{"base64":"aW1hZ2U="}]}`))
		}))
		defer server.Close()

		c := New("sk-stab", WithBaseURL(server.URL))
		_, err := c.GenerateImage(context.Background(), ai.Request{Prompt: "a castle"})
		require.NoError(t, err)

		assert.Equal(t, 1024, got.Width)
		assert.Equal(t, 1024, got.Height)
		assert.Equal(t, 30, got.Steps)
	})

	t.Run("missing key fails without a network call", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		c := New("", WithBaseURL(server.URL))
		_, err := c.GenerateImage(context.Background(), ai.NewRequest("a castle"))

		assert.True(t, ai.IsCredentialMissing(err))
		assert.Equal(t, "STABILITY_API_KEY environment variable is required for Stability AI generation", err.Error())
		assert.False(t, called)
	})

	t.Run("provider message is surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"id":"abc","name":"unauthorized","message":"Incorrect API key provided"}`))
		}))
		defer server.Close()

		c := New("sk-bad", WithBaseURL(server.URL))
		_, err := c.GenerateImage(context.Background(), ai.NewRequest("a castle"))

		var adapterErr *ai.AdapterError
		require.True(t, errors.As(err, &adapterErr))
		assert.Equal(t, "Stability AI error: Incorrect API key provided", err.Error())
		assert.Equal(t, http.StatusUnauthorized, adapterErr.StatusCode())
		assert.Equal(t, ai.ErrorPermanent, adapterErr.Category())
	})

	t.Run("non json error falls back to status text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`<html>bad gateway</html>`))
		}))
		defer server.Close()

		c := New("sk-stab", WithBaseURL(server.URL))
		_, err := c.GenerateImage(context.Background(), ai.NewRequest("a castle"))

		assert.EqualError(t, err, "Stability AI error: Bad Gateway")
		assert.True(t, ai.IsTransient(err))
	})

	t.Run("missing artifacts is malformed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"artifacts":[]}`))
		}))
		defer server.Close()

		c := New("sk-stab", WithBaseURL(server.URL))
		_, err := c.GenerateImage(context.Background(), ai.NewRequest("a castle"))

		assert.EqualError(t, err, "Stability AI error: response contained no image")
	})

	t.Run("invalid json is malformed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		c := New("sk-stab", WithBaseURL(server.URL))
		_, err := c.GenerateImage(context.Background(), ai.NewRequest("a castle"))

		var adapterErr *ai.AdapterError
		require.True(t, errors.As(err, &adapterErr))
		assert.NotNil(t, adapterErr.Unwrap())
	})

	t.Run("body beyond the read cap is malformed", func(t *testing.T) {
		limit := maxResponseBytes
		maxResponseBytes = 32
		t.Cleanup(func() { maxResponseBytes = limit })

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"artifacts":[{"base64":"aW1hZ2UtYnl0ZXMtdGhhdC1ydW4tcGFzdC10aGUtY2Fw","seed":1}]}`))
		}))
		defer server.Close()

		c := New("sk-stab", WithBaseURL(server.URL))
		_, err := c.GenerateImage(context.Background(), ai.NewRequest("a castle"))

		var adapterErr *ai.AdapterError
		require.True(t, errors.As(err, &adapterErr))
		assert.Equal(t, ai.ErrorPermanent, adapterErr.Category())
		assert.Contains(t, err.Error(), "Stability AI error: invalid response body")
	})

	t.Run("connection failure is an adapter error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		c := New("sk-stab", WithBaseURL(url))
		_, err := c.GenerateImage(context.Background(), ai.NewRequest("a castle"))

		var adapterErr *ai.AdapterError
		require.True(t, errors.As(err, &adapterErr))
		assert.False(t, ai.IsUnreachable(err))
	})
}

func TestNew(t *testing.T) {
	c := New("k")
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, ai.BackendStability, c.Backend())

	c = New("k", WithBaseURL(""), WithHTTPClient(nil))
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.NotNil(t, c.client)
}
