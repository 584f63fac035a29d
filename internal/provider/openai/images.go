package openai

import (
	"context"

	"github.com/openai/openai-go"
	ai "github.com/spetersoncode/imagegen"
	"github.com/spetersoncode/imagegen/model"
)

// Request defaults for DALL-E 3.
const (
	DefaultSize  = "1024x1024"
	DefaultStyle = "vivid"
)

// GenerateImage generates one image from a text prompt using DALL-E 3.
// Width, height and steps are ignored; the size token is fixed per client.
func (c *Client) GenerateImage(ctx context.Context, req ai.Request) (*ai.Result, error) {
	if c.apiKey == "" {
		return nil, &ai.CredentialMissingError{
			Backend: ai.BackendDallE,
			EnvVar:  ai.BackendDallE.CredentialEnv(),
			Name:    "DALL-E",
		}
	}

	quality := req.Quality
	if quality == "" {
		quality = ai.ImageQualityStandard
	}

	params := openai.ImageGenerateParams{
		Model:          openai.ImageModel(model.DallE3.String()),
		Prompt:         req.Prompt,
		N:              openai.Int(1),
		Size:           c.size,
		Quality:        openai.ImageGenerateParamsQuality(quality),
		Style:          c.style,
		ResponseFormat: openai.ImageGenerateParamsResponseFormat("url"),
	}

	resp, err := c.client.Images.Generate(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return nil, ai.NewMalformedResponseError(ai.BackendDallE, "DALL-E API error: response contained no image url", nil)
	}

	img := resp.Data[0]
	return &ai.Result{
		Backend:       ai.BackendDallE,
		Image:         ai.RemoteImage(img.URL),
		RevisedPrompt: img.RevisedPrompt,
		Cost:          model.DallE3.Cost(quality),
	}, nil
}
