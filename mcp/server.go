package mcp

import (
	"context"
	"io"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	ai "github.com/spetersoncode/imagegen"
	"github.com/spetersoncode/imagegen/client"
	"github.com/spetersoncode/imagegen/model"
)

// Default server identity reported to MCP clients.
const (
	DefaultName    = "mcp-image-generation"
	DefaultVersion = "0.1.0"
)

// Service is the image generation surface the tools call into.
// *client.Client implements it.
type Service interface {
	GenerateImage(ctx context.Context, req ai.Request) (*ai.Result, error)
	Backends(ctx context.Context) []client.BackendStatus
	EstimateCost(b ai.Backend, q ai.ImageQuality) (model.CostEstimate, error)
}

var _ Service = (*client.Client)(nil)

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
	logger  *slog.Logger
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// WithLogger sets the logger for tool call records.
// The default discards all output.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(c *serverConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewServer creates an MCP server exposing generate_image, list_backends
// and estimate_cost backed by svc.
//
// Example:
//
//	c := client.New(client.Config{APIKeys: client.APIKeys{OpenAI: key}})
//	s := mcp.NewServer(c, mcp.WithLogger(logger))
//	server.ServeStdio(s)
func NewServer(svc Service, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    DefaultName,
		version: DefaultVersion,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)

	h := &handlers{svc: svc, logger: cfg.logger}
	s.AddTool(generateImageTool(), h.wrap(toolGenerateImage, h.generateImage))
	s.AddTool(listBackendsTool(), h.wrap(toolListBackends, h.listBackends))
	s.AddTool(estimateCostTool(), h.wrap(toolEstimateCost, h.estimateCost))

	return s
}

// ServeStdio starts an MCP server that communicates over stdin/stdout.
// This is the standard transport for MCP servers invoked as subprocesses.
func ServeStdio(svc Service, opts ...ServerOption) error {
	s := NewServer(svc, opts...)
	return server.ServeStdio(s)
}
