// Package imagegen defines the provider-agnostic types for generating images
// with several interchangeable backends.
//
// Three backends are supported:
//
//   - [BackendDallE]: OpenAI DALL-E 3, hosted, highest quality
//   - [BackendStability]: Stability AI SDXL, hosted, mid tier
//   - [BackendAutomatic1111]: a local Automatic1111 web UI server, free
//
// Every backend implements [ImageProvider], which takes a normalized
// [Request] and returns a normalized [Result]. Use the
// [github.com/spetersoncode/imagegen/client] package to dispatch requests,
// and the [github.com/spetersoncode/imagegen/model] package for backend
// capabilities and cost estimates.
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
//	res, err := c.GenerateImage(ctx, imagegen.NewRequest("a lighthouse at dusk"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Backend, res.Cost, res.Image.URL)
//
// # Automatic Mode
//
// With [BackendAuto] the client picks the first backend in [PreferenceOrder]
// whose credential is configured and, if that call fails, makes exactly one
// fallback attempt. When the fallback also fails the error is an
// [AllBackendsFailedError] holding only the fallback's cause.
//
// # Error Handling
//
// Errors are typed so callers can branch with errors.As:
//
//   - [ConfigurationError]: unknown backend, missing prompt, bad parameters
//   - [CredentialMissingError]: hosted backend invoked without its key
//   - [AdapterError]: provider rejected the call or answered garbage
//   - [UnreachableLocalServerError]: the local server is not running
//   - [AllBackendsFailedError]: automatic mode ran out of attempts
package imagegen
