// Command mcp serves multi-backend image generation as MCP tools over stdio.
//
// Configuration is via environment variables (a .env file is honored):
//
//	OPENAI_API_KEY         - enables DALL-E 3
//	STABILITY_API_KEY      - enables Stability AI SDXL
//	OPENAI_BASE_URL        - OpenAI endpoint override (optional)
//	STABILITY_BASE_URL     - Stability AI endpoint (default: https://api.stability.ai)
//	AUTOMATIC1111_URL      - local server (default: http://127.0.0.1:7860)
//	IMAGEGEN_PROBE_TIMEOUT - local status check timeout (default: 2s)
//	IMAGEGEN_LOG_LEVEL     - debug, info, warn, error (default: info)
//
// Configuration for Claude Desktop (~/Library/Application Support/Claude/claude_desktop_config.json):
//
//	{
//	    "mcpServers": {
//	        "image-generation": {
//	            "command": "go",
//	            "args": ["run", "./cmd/mcp"],
//	            "cwd": "/path/to/imagegen"
//	        }
//	    }
//	}
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spetersoncode/imagegen/client"
	"github.com/spetersoncode/imagegen/mcp"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// stdout carries the MCP transport; logs go to stderr.
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	events := make(chan client.Event, 64)
	go logEvents(logger, events)

	clientCfg := cfg.ClientConfig()
	clientCfg.Events = events
	c := client.New(clientCfg)

	logger.Info("MCP image generation server starting",
		"openai", cfg.OpenAIKey != "",
		"stability", cfg.StabilityKey != "",
		"local_url", cfg.LocalURL,
		"plan", c.Plan(),
	)

	if err := mcp.ServeStdio(c,
		mcp.WithName(mcp.DefaultName),
		mcp.WithVersion(mcp.DefaultVersion),
		mcp.WithLogger(logger),
	); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// logEvents forwards client events to the logger until events is closed.
func logEvents(logger *slog.Logger, events <-chan client.Event) {
	for e := range events {
		attrs := []any{
			"operation", e.Operation,
			"backend", e.Backend,
		}
		if e.Attempt > 0 {
			attrs = append(attrs, "attempt", e.Attempt)
		}
		if e.Duration > 0 {
			attrs = append(attrs, "duration", e.Duration)
		}

		switch e.Type {
		case client.EventAttemptFailed, client.EventRequestError:
			logger.Warn(string(e.Type), append(attrs, "error", e.Error)...)
		case client.EventFallback:
			logger.Info(string(e.Type), append(attrs, "cause", e.Error)...)
		case client.EventProbe:
			logger.Debug(string(e.Type), append(attrs, "reachable", e.Error == nil)...)
		default:
			logger.Debug(string(e.Type), attrs...)
		}
	}
}
