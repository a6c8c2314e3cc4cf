// Package bridge defines the boundary to the host runtime's request
// primitive: a synchronous call that takes a method name plus optional
// JSON-encoded parameters and returns the raw response text.
//
// Hosts are injected as a [HostBridge] so that transports built on them
// can run against an in-process host (package local), a remote host over
// gRPC (package bridgegrpc), or a test double.
package bridge

import "context"

// RequestArgs is a single call into the host.
type RequestArgs struct {
	Method string `cramberry:"1"`
	// Params is the JSON encoding of the call parameters, or nil when the
	// call has none.
	Params []byte `cramberry:"2"`
}

// HasParams reports whether the call carries parameters.
func (a RequestArgs) HasParams() bool { return len(a.Params) > 0 }

// HostBridge is the host's request primitive.
//
// Request blocks until the host answers. A non-nil error means the host
// could not serve the call at all; it says nothing about the response
// body, which is returned verbatim for the caller to decode.
type HostBridge interface {
	Request(ctx context.Context, args RequestArgs) (string, error)
}

// Func adapts an ordinary function to a HostBridge.
type Func func(ctx context.Context, args RequestArgs) (string, error)

// Request calls f(ctx, args).
func (f Func) Request(ctx context.Context, args RequestArgs) (string, error) {
	return f(ctx, args)
}
