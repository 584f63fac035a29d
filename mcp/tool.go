package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	ai "github.com/spetersoncode/imagegen"
)

// Tool names.
const (
	toolGenerateImage = "generate_image"
	toolListBackends  = "list_backends"
	toolEstimateCost  = "estimate_cost"
)

// GenerateImageArgs are the arguments of generate_image.
// Zero values select the defaults.
type GenerateImageArgs struct {
	Prompt  string `json:"prompt"`
	Backend string `json:"backend,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
	Quality string `json:"quality,omitempty"`
	Steps   int    `json:"steps,omitempty"`
}

// EstimateCostArgs are the arguments of estimate_cost.
type EstimateCostArgs struct {
	Backend string `json:"backend"`
	Quality string `json:"quality,omitempty"`
}

func generateImageTool() mcp.Tool {
	return mcp.NewTool(toolGenerateImage,
		mcp.WithDescription("Generate an image using the best available backend (DALL-E, Stability AI, or local Automatic1111)"),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("Text description of the image to generate"),
		),
		mcp.WithString("backend",
			mcp.Enum("auto", "dall-e", "stability-ai", "automatic1111"),
			mcp.DefaultString("auto"),
			mcp.Description("Backend to use (auto selects best available)"),
		),
		mcp.WithNumber("width",
			mcp.DefaultNumber(ai.DefaultWidth),
			mcp.Description("Image width (Stability AI and Automatic1111 only)"),
		),
		mcp.WithNumber("height",
			mcp.DefaultNumber(ai.DefaultHeight),
			mcp.Description("Image height (Stability AI and Automatic1111 only)"),
		),
		mcp.WithString("quality",
			mcp.Enum("standard", "hd"),
			mcp.DefaultString("standard"),
			mcp.Description("Quality setting (DALL-E only)"),
		),
		mcp.WithNumber("steps",
			mcp.DefaultNumber(ai.DefaultSteps),
			mcp.Description("Number of generation steps (Stability AI and Automatic1111 only)"),
		),
	)
}

func listBackendsTool() mcp.Tool {
	return mcp.NewTool(toolListBackends,
		mcp.WithDescription("List available image generation backends and their status"),
	)
}

func estimateCostTool() mcp.Tool {
	return mcp.NewTool(toolEstimateCost,
		mcp.WithDescription("Estimate the cost for generating an image with different backends"),
		mcp.WithString("backend",
			mcp.Required(),
			mcp.Enum("dall-e", "stability-ai", "automatic1111"),
			mcp.Description("Backend to estimate cost for"),
		),
		mcp.WithString("quality",
			mcp.Enum("standard", "hd"),
			mcp.DefaultString("standard"),
			mcp.Description("Quality setting (DALL-E only)"),
		),
	)
}

// toolFunc executes one tool with raw JSON arguments.
// log is already tagged with the tool name and request id.
type toolFunc func(ctx context.Context, log *slog.Logger, args json.RawMessage) (*mcp.CallToolResult, error)

type handlers struct {
	svc    Service
	logger *slog.Logger
}

// wrap adapts fn to an MCP handler. Errors and panics become error
// results so the transport never sees a protocol fault.
func (h *handlers) wrap(name string, fn toolFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		log := h.logger.With("tool", name, "request_id", uuid.NewString())
		start := time.Now()

		defer func() {
			if r := recover(); r != nil {
				log.Error("tool panicked", "panic", r, "duration", time.Since(start))
				result, err = errorResult(fmt.Errorf("internal error: %v", r)), nil
			}
		}()

		args, err := marshalArguments(req.Params.Arguments)
		if err != nil {
			log.Warn("invalid tool arguments", "error", err)
			return errorResult(err), nil
		}

		result, err = fn(ctx, log, args)
		if err != nil {
			log.Warn("tool call failed",
				"backend", ai.BackendOf(err),
				"duration", time.Since(start),
				"error", err,
			)
			return errorResult(err), nil
		}

		log.Info("tool call completed", "duration", time.Since(start))
		return result, nil
	}
}

// marshalArguments converts the decoded MCP arguments back to JSON.
func marshalArguments(args any) (json.RawMessage, error) {
	if args == nil {
		return json.RawMessage("{}"), nil
	}
	data, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal arguments: %w", err)
	}
	return data, nil
}

func decodeArgs(raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return &ai.ConfigurationError{Msg: "invalid arguments: " + err.Error()}
	}
	return nil
}

func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError("Error: " + err.Error())
}

func (h *handlers) generateImage(ctx context.Context, log *slog.Logger, raw json.RawMessage) (*mcp.CallToolResult, error) {
	var args GenerateImageArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	backend, err := ai.ParseBackend(args.Backend)
	if err != nil {
		return nil, err
	}
	quality, err := ai.ParseImageQuality(args.Quality)
	if err != nil {
		return nil, err
	}

	req := ai.Request{
		Prompt:  args.Prompt,
		Backend: backend,
		Width:   args.Width,
		Height:  args.Height,
		Quality: quality,
		Steps:   args.Steps,
	}.WithDefaults()

	res, err := h.svc.GenerateImage(ctx, req)
	if err != nil {
		return nil, err
	}
	log.Info("image generated",
		"requested", backend,
		"backend", res.Backend,
		"cost", res.Cost.String(),
		"inline", res.Image.IsInline(),
	)

	content := []mcp.Content{mcp.NewTextContent(formatResult(req.Prompt, res))}
	if res.Image.IsInline() {
		content = append(content, mcp.NewImageContent(res.Image.Base64, "image/png"))
	}
	return &mcp.CallToolResult{Content: content}, nil
}

func (h *handlers) listBackends(ctx context.Context, log *slog.Logger, _ json.RawMessage) (*mcp.CallToolResult, error) {
	statuses := h.svc.Backends(ctx)
	for _, st := range statuses {
		log.Debug("backend status", "backend", st.Backend, "usable", st.Usable, "reason", st.Reason)
	}
	return mcp.NewToolResultText(formatBackends(statuses)), nil
}

func (h *handlers) estimateCost(_ context.Context, _ *slog.Logger, raw json.RawMessage) (*mcp.CallToolResult, error) {
	var args EstimateCostArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.Backend == "" {
		return nil, &ai.ConfigurationError{Msg: "backend is required"}
	}

	est, err := h.svc.EstimateCost(ai.Backend(args.Backend), ai.ImageQuality(args.Quality))
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(formatEstimate(est)), nil
}
