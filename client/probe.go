package client

import (
	"context"
	"time"

	ai "github.com/spetersoncode/imagegen"
	"github.com/spetersoncode/imagegen/model"
)

// BackendStatus reports whether a backend can currently serve requests.
type BackendStatus struct {
	Backend ai.Backend
	Usable  bool
	// Reason is a short human-readable explanation of Usable.
	Reason string
	// Model holds the backend's static description and pricing.
	Model model.ImageModel
}

// Reasons reported by Backends.
const (
	ReasonReady        = "Ready"
	ReasonNotReachable = "not reachable"
)

// Backends probes every backend and returns their status in preference
// order. Hosted backends are judged by credential presence alone. The
// local server is pinged with the configured probe timeout. Backends never
// fails; any probe error degrades to Usable=false.
func (c *Client) Backends(ctx context.Context) []BackendStatus {
	models := model.ImageModels()
	out := make([]BackendStatus, 0, len(models))
	for _, m := range models {
		st := BackendStatus{Backend: m.Backend(), Model: m}
		if m.Backend().RequiresCredential() {
			st.Usable = c.hasCredential(m.Backend())
			st.Reason = ReasonReady
			if !st.Usable {
				st.Reason = "Missing " + m.Backend().CredentialEnv()
			}
		} else {
			st.Usable = c.ping(ctx, m.Backend()) == nil
			st.Reason = ReasonNotReachable
			if st.Usable {
				st.Reason = "Running on " + c.localURL
			}
		}
		out = append(out, st)
	}
	return out
}

// ping checks a backend that supports ai.Pinger within the probe timeout.
func (c *Client) ping(ctx context.Context, b ai.Backend) error {
	p, ok := c.providers[b].(ai.Pinger)
	if !ok {
		return &ai.UnreachableLocalServerError{Endpoint: c.localURL}
	}

	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	start := time.Now()
	err := p.Ping(ctx)
	emit(c.events, Event{
		Type:      EventProbe,
		Operation: "probe",
		Backend:   b,
		Duration:  time.Since(start),
		Error:     err,
	})
	return err
}
