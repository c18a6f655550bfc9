package providers

import (
	"context"
	"errors"
	"fmt"
)

// ErrProviderUnavailable signals a provider that is not wired or has been
// shut down.
var ErrProviderUnavailable = errors.New("provider unavailable")

// StatusError captures a non-success response from the upstream API.
type StatusError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unexpected upstream status"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d)", e.Provider, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsCancellation reports whether the error is a superseded or aborted
// request rather than an upstream failure. Cancellations are discarded
// silently, never surfaced to users. A deadline expiry is not a
// cancellation: the only deadline in play is the upstream client's
// timeout, and a hung upstream is a network failure.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled)
}
