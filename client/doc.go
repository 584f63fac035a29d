// Package client selects an image generation backend and orchestrates the
// single permitted fallback.
//
// The Client provides:
//
//   - Backend selection: explicit backends or automatic credential-driven choice
//   - One fallback: automatic mode tries at most two backends
//   - Availability probing: credential checks plus a bounded local ping
//   - Event emission: observable attempts via channel
//
// # Basic Usage
//
//	c := client.New(client.Config{
//	    APIKeys: client.APIKeys{
//	        OpenAI:    os.Getenv("OPENAI_API_KEY"),
//	        Stability: os.Getenv("STABILITY_API_KEY"),
//	    },
//	})
//
//	res, err := c.GenerateImage(ctx, ai.NewRequest("A sunset over mountains"))
//
// # Automatic Mode
//
// With no backend set, the primary is the first of DALL-E, Stability AI and
// Automatic1111 whose credential is present. If it fails, the client tries
// Stability AI (when keyed and not already tried) or else the local
// server. There is no further retry:
//
//	| Keys present       | Plan                            |
//	|--------------------|---------------------------------|
//	| OpenAI, Stability  | dall-e, stability-ai            |
//	| OpenAI             | dall-e, automatic1111           |
//	| Stability          | stability-ai, automatic1111     |
//	| none               | automatic1111, automatic1111    |
//
// # Availability
//
// Backends reports per-backend status without ever failing:
//
//	for _, st := range c.Backends(ctx) {
//	    fmt.Println(st.Backend, st.Usable, st.Reason)
//	}
//
// # Events
//
//	events := make(chan client.Event, 100)
//	c := client.New(client.Config{Events: events})
//
//	go func() {
//	    for e := range events {
//	        fmt.Printf("[%s] %s attempt %d took %v\n", e.Type, e.Backend, e.Attempt, e.Duration)
//	    }
//	}()
package client
