// Package local provides an in-process host for the request bridge.
//
// Handlers are registered per method name and invoked directly, with no
// serialization beyond the JSON parameters carried in the request. This
// is the host used when the runtime and its clients are compiled into the
// same binary, and as the backing host for the gRPC bridge server.
package local

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/blockberries/chainapi/bridge"
)

// Compile-time interface check.
var _ bridge.HostBridge = (*Host)(nil)

// ErrUnknownMethod is returned for calls to methods with no handler.
var ErrUnknownMethod = errors.New("local: unknown method")

// HandlerFunc serves one method. params is the raw JSON parameter
// encoding, nil when the call has none.
type HandlerFunc func(ctx context.Context, params []byte) (string, error)

// Host dispatches bridge requests to registered handlers.
// It is safe for concurrent registration and dispatch.
type Host struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc

	calls atomic.Int64
}

// NewHost creates a host with no handlers.
func NewHost() *Host {
	return &Host{handlers: make(map[string]HandlerFunc)}
}

// Handle registers fn for method, replacing any previous handler.
func (h *Host) Handle(method string, fn HandlerFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[method] = fn
}

// HandleStatic registers a handler that always answers with body.
func (h *Host) HandleStatic(method, body string) {
	h.Handle(method, func(context.Context, []byte) (string, error) {
		return body, nil
	})
}

// Methods returns the number of registered methods.
func (h *Host) Methods() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.handlers)
}

// Calls returns the number of requests served, including failed ones.
func (h *Host) Calls() int64 { return h.calls.Load() }

func (h *Host) Request(ctx context.Context, args bridge.RequestArgs) (string, error) {
	h.calls.Add(1)

	h.mu.RLock()
	fn, ok := h.handlers[args.Method]
	h.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownMethod, args.Method)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fn(ctx, args.Params)
}
