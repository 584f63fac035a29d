package stability

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	ai "github.com/spetersoncode/imagegen"
	"github.com/spetersoncode/imagegen/model"
)

// CFGScale is the fixed guidance scale sent with every request.
const CFGScale = 7

// maxResponseBytes caps how much of a response body is read.
var maxResponseBytes int64 = 64 << 20

type textPrompt struct {
	Text string `json:"text"`
}

type generationRequest struct {
	TextPrompts []textPrompt `json:"text_prompts"`
	CFGScale    float64      `json:"cfg_scale"`
	Height      int          `json:"height"`
	Width       int          `json:"width"`
	Steps       int          `json:"steps"`
	Samples     int          `json:"samples"`
}

type artifact struct {
	Base64       string `json:"base64"`
	Seed         int64  `json:"seed"`
	FinishReason string `json:"finishReason"`
}

type generationResponse struct {
	Artifacts []artifact `json:"artifacts"`
}

type errorResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// GenerateImage creates one image with SDXL.
// Endpoint: POST /v1/generation/{engine}/text-to-image
func (c *Client) GenerateImage(ctx context.Context, req ai.Request) (*ai.Result, error) {
	if c.apiKey == "" {
		return nil, &ai.CredentialMissingError{
			Backend: ai.BackendStability,
			EnvVar:  ai.BackendStability.CredentialEnv(),
			Name:    "Stability AI",
		}
	}

	req = req.WithDefaults()
	body := generationRequest{
		TextPrompts: []textPrompt{{Text: req.Prompt}},
		CFGScale:    CFGScale,
		Height:      req.Height,
		Width:       req.Width,
		Steps:       req.Steps,
		Samples:     1,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("stability: failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/generation/%s/text-to-image", c.baseURL, model.StableDiffusionXL.String())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("stability: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, ai.NewAdapterError(ai.BackendStability, "Stability AI request failed", 0, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, ai.NewAdapterError(ai.BackendStability, "Stability AI request failed", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, ai.NewAdapterError(ai.BackendStability,
			"Stability AI error: "+errorMessage(resp.StatusCode, data), resp.StatusCode, nil)
	}

	var out generationResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, ai.NewMalformedResponseError(ai.BackendStability, "Stability AI error: invalid response body", err)
	}
	if len(out.Artifacts) == 0 || out.Artifacts[0].Base64 == "" {
		return nil, ai.NewMalformedResponseError(ai.BackendStability, "Stability AI error: response contained no image", nil)
	}

	art := out.Artifacts[0]
	meta := map[string]any{"seed": art.Seed}
	if art.FinishReason != "" {
		meta["finish_reason"] = art.FinishReason
	}

	return &ai.Result{
		Backend:  ai.BackendStability,
		Image:    ai.InlineImage(art.Base64),
		Cost:     model.StableDiffusionXL.Cost(req.Quality),
		Metadata: meta,
	}, nil
}

// errorMessage extracts the provider's message, falling back to the status text.
func errorMessage(code int, body []byte) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return http.StatusText(code)
}
