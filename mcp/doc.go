// Package mcp exposes image generation as MCP (Model Context Protocol) tools.
//
// The server registers three tools:
//
//   - generate_image: generate one image, explicitly or in automatic mode
//   - list_backends: report which backends are usable and why
//   - estimate_cost: project per-image, 10-image and 100-image cost
//
// Every tool failure, including a panic in a handler, is returned to the
// caller as an error result rather than a protocol fault.
//
// # Serving
//
//	c := client.New(client.Config{
//	    APIKeys: client.APIKeys{OpenAI: os.Getenv("OPENAI_API_KEY")},
//	})
//
//	if err := mcp.ServeStdio(c, mcp.WithLogger(logger)); err != nil {
//	    log.Fatal(err)
//	}
//
// # Calling a Server
//
// [Remote] drives the tools of a running server:
//
//	r, err := mcp.NewRemote(ctx, "./mcp-image-generation", os.Environ())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	reply, err := r.GenerateImage(ctx, mcp.GenerateImageArgs{Prompt: "a lighthouse"})
package mcp
