package chainapi

import (
	"errors"
	"fmt"
)

// Prefetch failures. Each one means the base API call succeeded but the
// node returned no value.
var (
	ErrNoMetadata       = errors.New("chainapi: node returned no metadata")
	ErrNoGenesisHash    = errors.New("chainapi: node returned no genesis hash")
	ErrNoRuntimeVersion = errors.New("chainapi: node returned no runtime version")
)

// maxDiagnosticText bounds how much of a response body Error() prints.
const maxDiagnosticText = 256

// DeserializationError reports that a raw response could not be decoded
// into the type the caller requested.
type DeserializationError struct {
	Err error
	// Text is the raw response exactly as received.
	Text string
}

func (e *DeserializationError) Error() string {
	text := e.Text
	if len(text) > maxDiagnosticText {
		text = text[:maxDiagnosticText] + "..."
	}
	return fmt.Sprintf("deserialization error: %v. Response: %s", e.Err, text)
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// HostError reports that the host request bridge failed to serve a call.
type HostError struct {
	Method string
	Err    error
}

func (e *HostError) Error() string {
	return fmt.Sprintf("host request %q failed: %v", e.Method, e.Err)
}

func (e *HostError) Unwrap() error { return e.Err }

// ProviderError is the generic error category returned by JSON-RPC
// client transports. It boxes the transport-specific cause, which stays
// reachable through errors.As.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("json-rpc client error: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NewProviderError boxes err as a ProviderError. It returns nil for a
// nil err.
func NewProviderError(err error) error {
	if err == nil {
		return nil
	}
	return &ProviderError{Err: err}
}

// IsProviderError checks whether an error is a ProviderError and returns it.
func IsProviderError(err error) (*ProviderError, bool) {
	var p *ProviderError
	if errors.As(err, &p) {
		return p, true
	}
	return nil, false
}

// IsDeserialization checks whether an error is a DeserializationError
// and returns it.
func IsDeserialization(err error) (*DeserializationError, bool) {
	var d *DeserializationError
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

// IsHostError checks whether an error is a HostError and returns it.
func IsHostError(err error) (*HostError, bool) {
	var h *HostError
	if errors.As(err, &h) {
		return h, true
	}
	return nil, false
}
