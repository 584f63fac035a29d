package openai

import (
	"errors"
	"net/http"

	"github.com/openai/openai-go"
	ai "github.com/spetersoncode/imagegen"
)

// wrapError converts an OpenAI SDK error into an ai.AdapterError.
// API errors keep the provider's own message and status code; anything
// else (network failure, cancelled context) is wrapped as the cause.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return ai.NewAdapterError(ai.BackendDallE, "DALL-E request failed", 0, err)
	}

	msg := apiErr.Message
	if msg == "" {
		msg = http.StatusText(apiErr.StatusCode)
	}
	return ai.NewAdapterError(ai.BackendDallE, "DALL-E API error: "+msg, apiErr.StatusCode, nil)
}
