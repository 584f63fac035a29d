// Command example generates one image and prints backend status and costs.
//
// By default it uses the client library in-process. When IMAGEGEN_SERVER
// names a server executable, it launches that server and drives it through
// MCP instead.
//
// Usage:
//
//	go run ./cmd/example "A serene mountain lake at sunset"
//	IMAGEGEN_SERVER=./mcp-image-generation go run ./cmd/example
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spetersoncode/imagegen"
	"github.com/spetersoncode/imagegen/client"
	"github.com/spetersoncode/imagegen/mcp"
	"github.com/spetersoncode/imagegen/model"
)

const defaultPrompt = "A serene mountain landscape at sunset with a calm lake reflection"

func main() {
	godotenv.Load()
	ctx := context.Background()

	prompt := defaultPrompt
	if len(os.Args) > 1 {
		prompt = strings.Join(os.Args[1:], " ")
	}

	if server := os.Getenv("IMAGEGEN_SERVER"); server != "" {
		if err := runRemote(ctx, server, prompt); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	c := client.New(client.Config{
		APIKeys: client.APIKeys{
			OpenAI:    os.Getenv("OPENAI_API_KEY"),
			Stability: os.Getenv("STABILITY_API_KEY"),
		},
		LocalURL: os.Getenv("AUTOMATIC1111_URL"),
	})

	fmt.Println("=== Backends ===")
	for _, st := range c.Backends(ctx) {
		fmt.Printf("%-14s usable=%-5v %s\n", st.Backend, st.Usable, st.Reason)
	}

	fmt.Println("\n=== Cost per 100 images ===")
	for _, m := range model.ImageModels() {
		est, err := c.EstimateCost(m.Backend(), imagegen.ImageQualityStandard)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		fmt.Printf("%-30s %s\n", est.Description, est.Per100)
	}

	fmt.Printf("\n=== Generating (plan %v) ===\n", c.Plan())
	res, err := c.GenerateImage(ctx, imagegen.NewRequest(prompt))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Backend: %s\nCost: %s\n", res.Backend, res.Cost)
	if res.RevisedPrompt != "" {
		fmt.Printf("Revised prompt: %s\n", res.RevisedPrompt)
	}
	if res.Image.IsRemote() {
		fmt.Printf("URL: %s\n", res.Image.URL)
	} else {
		fmt.Printf("Base64: %d bytes\n", len(res.Image.Base64))
	}
}

func runRemote(ctx context.Context, server, prompt string) error {
	r, err := mcp.NewRemote(ctx, server, os.Environ())
	if err != nil {
		return err
	}
	defer r.Close()

	backends, err := r.ListBackends(ctx)
	if err != nil {
		return err
	}
	fmt.Println(backends.Text)

	reply, err := r.GenerateImage(ctx, mcp.GenerateImageArgs{Prompt: prompt})
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(reply.Text)
	return nil
}
