package automatic1111

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

// Fixed generation parameters.
const (
	// NegativePrompt suppresses common diffusion artifacts.
	NegativePrompt = "blurry, low quality, distorted, ugly, bad anatomy"
	DefaultSampler = "DPM++ 2M Karras"
	CFGScale       = 12
)

type txt2imgRequest struct {
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negative_prompt"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Steps          int     `json:"steps"`
	CFGScale       float64 `json:"cfg_scale"`
	SamplerName    string  `json:"sampler_name"`
	BatchSize      int     `json:"batch_size"`
	NIter          int     `json:"n_iter"`
}

type txt2imgResponse struct {
	Images []string `json:"images"`
	// Info is a JSON document encoded as a string.
	Info string `json:"info"`
}

// GenerateImage creates one image on the local server.
// Endpoint: POST /sdapi/v1/txt2img
func (c *Client) GenerateImage(ctx context.Context, req ai.Request) (*ai.Result, error) {
	req = req.WithDefaults()
	body := txt2imgRequest{
		Prompt:         req.Prompt,
		NegativePrompt: NegativePrompt,
		Width:          req.Width,
		Height:         req.Height,
		Steps:          req.Steps,
		CFGScale:       CFGScale,
		SamplerName:    DefaultSampler,
		BatchSize:      1,
		NIter:          1,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("automatic1111: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/sdapi/v1/txt2img", bytes.NewReader(payload))
	if err != nil {
		return nil, c.invalidEndpoint(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, c.wrapTransportError(err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, ai.NewAdapterError(ai.BackendAutomatic1111,
			"Automatic1111 API error: "+errorMessage(resp.StatusCode, resp.Body), resp.StatusCode, nil)
	}

	var out txt2imgResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return nil, ai.NewMalformedResponseError(ai.BackendAutomatic1111, "Automatic1111 API error: invalid response body", err)
	}
	if len(out.Images) == 0 || out.Images[0] == "" {
		return nil, ai.NewMalformedResponseError(ai.BackendAutomatic1111, "Automatic1111 API error: response contained no image", nil)
	}

	return &ai.Result{
		Backend:  ai.BackendAutomatic1111,
		Image:    ai.InlineImage(out.Images[0]),
		Cost:     model.Automatic1111.Cost(req.Quality),
		Metadata: parseInfo(out.Info),
	}, nil
}

// parseInfo decodes the server's generation info. Anything that is not a
// JSON object is kept verbatim under "info".
func parseInfo(info string) map[string]any {
	if info == "" {
		return nil
	}
	var meta map[string]any
	if err := json.Unmarshal([]byte(info), &meta); err == nil {
		return meta
	}
	return map[string]any{"info": info}
}
