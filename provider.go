package imagegen

import "strings"

// Backend identifies an image generation backend.
type Backend string

// String returns the backend identifier.
func (b Backend) String() string { return string(b) }

// Supported backends.
const (
	// BackendDallE is OpenAI DALL-E 3, the hosted high-quality tier.
	BackendDallE Backend = "dall-e"
	// BackendStability is Stability AI SDXL, the hosted mid tier.
	BackendStability Backend = "stability-ai"
	// BackendAutomatic1111 is a locally hosted Automatic1111 web UI server.
	BackendAutomatic1111 Backend = "automatic1111"
	// BackendAuto selects a backend from available credentials and
	// permits a single fallback.
	BackendAuto Backend = "auto"
)

// PreferenceOrder is the order in which automatic mode considers backends.
var PreferenceOrder = []Backend{BackendDallE, BackendStability, BackendAutomatic1111}

// ParseBackend converts a wire name into a Backend.
// An empty string selects BackendAuto.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.TrimSpace(s)); b {
	case "":
		return BackendAuto, nil
	case BackendDallE, BackendStability, BackendAutomatic1111, BackendAuto:
		return b, nil
	default:
		return "", &ConfigurationError{Msg: "unknown backend: " + s}
	}
}

// Concrete reports whether b names a single backend rather than a
// selection strategy.
func (b Backend) Concrete() bool {
	switch b {
	case BackendDallE, BackendStability, BackendAutomatic1111:
		return true
	}
	return false
}

// CredentialEnv returns the environment variable holding the credential
// for b, or "" when b needs none.
func (b Backend) CredentialEnv() string {
	switch b {
	case BackendDallE:
		return "OPENAI_API_KEY"
	case BackendStability:
		return "STABILITY_API_KEY"
	default:
		return ""
	}
}

// RequiresCredential reports whether b needs an API key.
func (b Backend) RequiresCredential() bool {
	return b.CredentialEnv() != ""
}
