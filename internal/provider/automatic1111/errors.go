package automatic1111

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"syscall"

	ai "github.com/spetersoncode/imagegen"
)

// maxResponseBytes caps how much of a response body is read.
// Successful responses carry a base64 image, so the cap is generous.
var maxResponseBytes int64 = 64 << 20

// errorResponse is the body the web UI sends with a failed API call.
// Validation errors carry a structured detail, which is ignored.
type errorResponse struct {
	Error  string          `json:"error"`
	Detail json.RawMessage `json:"detail"`
	Errors string          `json:"errors"`
}

// wrapTransportError classifies a failed HTTP round trip. Only failures
// to connect mean the server is not running; timeouts and cancellations
// against a live server are adapter errors.
func (c *Client) wrapTransportError(err error) error {
	if isConnectError(err) {
		return &ai.UnreachableLocalServerError{Endpoint: c.endpoint, Cause: err}
	}
	return ai.NewAdapterError(ai.BackendAutomatic1111, "Automatic1111 request failed", 0, err)
}

func isConnectError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// invalidEndpoint reports a request that could not be built from the
// configured endpoint.
func (c *Client) invalidEndpoint(err error) error {
	return &ai.ConfigurationError{Msg: "invalid local server endpoint " + c.endpoint + ": " + err.Error()}
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// errorMessage extracts the server's message, falling back to the status text.
func errorMessage(code int, body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxResponseBytes))
	if err != nil {
		return http.StatusText(code)
	}

	var e errorResponse
	if err := json.Unmarshal(data, &e); err != nil {
		return http.StatusText(code)
	}

	var detail string
	json.Unmarshal(e.Detail, &detail)

	switch {
	case e.Errors != "":
		return e.Errors
	case detail != "":
		return detail
	case e.Error != "":
		return e.Error
	default:
		return http.StatusText(code)
	}
}
