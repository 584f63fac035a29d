package client

import (
	"time"

	ai "github.com/spetersoncode/imagegen"
)

// EventType identifies the kind of event occurring during client operations.
type EventType string

const (
	// EventRequestStart fires before a generation request is dispatched.
	EventRequestStart EventType = "request_start"

	// EventAttemptStart fires before a single adapter is invoked.
	EventAttemptStart EventType = "attempt_start"

	// EventAttemptFailed fires when an adapter returns an error.
	EventAttemptFailed EventType = "attempt_failed"

	// EventFallback fires when automatic mode moves to its second backend.
	EventFallback EventType = "fallback"

	// EventRequestComplete fires after a generation request succeeds.
	EventRequestComplete EventType = "request_complete"

	// EventRequestError fires when a generation request fails.
	EventRequestError EventType = "request_error"

	// EventProbe fires after the local server status check.
	EventProbe EventType = "probe"
)

// Event represents an observable occurrence during client operations.
type Event struct {
	// Type identifies the kind of event.
	Type EventType

	// Operation identifies the client operation ("image", "probe").
	Operation string

	// Backend is the backend involved. For request events it is the
	// requested backend, or the serving backend on completion.
	Backend ai.Backend

	// Attempt is the 1-based attempt number for attempt and fallback events.
	Attempt int

	// Duration is the elapsed time for completed attempts and requests.
	Duration time.Duration

	// Error contains the error for failure events. For EventFallback it is
	// the error that caused the fallback.
	Error error

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// emit sends an event with timestamp to the channel without blocking.
func emit(ch chan<- Event, event Event) {
	if ch == nil {
		return
	}
	event.Timestamp = time.Now()
	select {
	case ch <- event:
	default:
		// Channel full - don't block
	}
}
