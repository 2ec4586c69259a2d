package client

import (
	"time"

	ai "github.com/spetersoncode/sentibot"
)

// EventType identifies the kind of event occurring during client operations.
type EventType string

const (
	// EventRequestStart fires before an API request begins.
	EventRequestStart EventType = "request_start"

	// EventRequestComplete fires after an API request completes successfully.
	EventRequestComplete EventType = "request_complete"

	// EventRequestError fires when an API request fails after all retries.
	EventRequestError EventType = "request_error"

	// EventRetry fires before a failed attempt is retried.
	EventRetry EventType = "retry"
)

// Event represents an observable occurrence during client operations.
type Event struct {
	Type     EventType
	Provider ai.Provider
	Model    string

	// Duration is the elapsed time for completed or failed requests.
	Duration time.Duration

	// Usage is set on EventRequestComplete.
	Usage *ai.Usage

	// Error is set on EventRequestError and EventRetry.
	Error error

	// Attempt and Delay are set on EventRetry.
	Attempt int
	Delay   time.Duration

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
