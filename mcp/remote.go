package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// ToolError is returned by Remote when the server reports a tool error.
type ToolError struct {
	Tool    string
	Message string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: %s", e.Tool, e.Message)
}

// Reply is the decoded outcome of a successful tool call.
type Reply struct {
	// Text is the concatenated text content.
	Text string
	// Images holds any inline image payloads, base64 encoded.
	Images []string
}

// Remote calls the image generation tools of an MCP server.
// It is safe for concurrent use.
type Remote struct {
	client *client.Client
}

// NewRemote starts the server command as a subprocess and connects to it
// over stdio.
//
// Example:
//
//	r, err := mcp.NewRemote(ctx, "./mcp-image-generation", os.Environ())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	reply, err := r.EstimateCost(ctx, mcp.EstimateCostArgs{Backend: "dall-e"})
func NewRemote(ctx context.Context, command string, env []string, args ...string) (*Remote, error) {
	c, err := client.NewStdioMCPClient(command, env, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP client: %w", err)
	}
	return newRemoteFromClient(ctx, c, false)
}

// NewRemoteFromClient creates a Remote from an existing MCP client that
// has not been started. It starts and initializes the session.
func NewRemoteFromClient(ctx context.Context, c *client.Client) (*Remote, error) {
	return newRemoteFromClient(ctx, c, true)
}

func newRemoteFromClient(ctx context.Context, c *client.Client, start bool) (*Remote, error) {
	// Stdio clients are started by their constructor.
	if start {
		if err := c.Start(ctx); err != nil {
			return nil, fmt.Errorf("failed to start MCP client: %w", err)
		}
	}

	_, err := c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo: mcp.Implementation{
				Name:    "imagegen-client",
				Version: DefaultVersion,
			},
		},
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize MCP session: %w", err)
	}

	return &Remote{client: c}, nil
}

// Close closes the connection to the MCP server.
func (r *Remote) Close() error {
	return r.client.Close()
}

// Tools returns the names of the tools the server exposes.
func (r *Remote) Tools(ctx context.Context) ([]string, error) {
	result, err := r.client.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(result.Tools))
	for _, t := range result.Tools {
		names = append(names, t.Name)
	}
	return names, nil
}

// GenerateImage calls generate_image.
func (r *Remote) GenerateImage(ctx context.Context, args GenerateImageArgs) (*Reply, error) {
	return r.call(ctx, toolGenerateImage, args)
}

// ListBackends calls list_backends.
func (r *Remote) ListBackends(ctx context.Context) (*Reply, error) {
	return r.call(ctx, toolListBackends, struct{}{})
}

// EstimateCost calls estimate_cost.
func (r *Remote) EstimateCost(ctx context.Context, args EstimateCostArgs) (*Reply, error) {
	return r.call(ctx, toolEstimateCost, args)
}

func (r *Remote) call(ctx context.Context, name string, args any) (*Reply, error) {
	// Round-trip through JSON so omitempty drops unset fields.
	data, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal arguments: %w", err)
	}
	var params map[string]any
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to marshal arguments: %w", err)
	}

	result, err := r.client.CallTool(ctx, mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: params},
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, errors.New("empty tool result")
	}

	reply := fromCallToolResult(result)
	if result.IsError {
		return nil, &ToolError{Tool: name, Message: reply.Text}
	}
	return reply, nil
}

func fromCallToolResult(result *mcp.CallToolResult) *Reply {
	var (
		texts []string
		reply Reply
	)
	for _, c := range result.Content {
		switch content := c.(type) {
		case mcp.TextContent:
			texts = append(texts, content.Text)
		case *mcp.TextContent:
			texts = append(texts, content.Text)
		case mcp.ImageContent:
			reply.Images = append(reply.Images, content.Data)
		case *mcp.ImageContent:
			reply.Images = append(reply.Images, content.Data)
		}
	}
	reply.Text = strings.Join(texts, "\n")
	return &reply
}
