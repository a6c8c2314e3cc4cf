// Package provider turns a host request bridge into a typed JSON-RPC
// client.
//
// A Provider forwards the method name and the parameters, as a JSON
// array, to the host in a single blocking call, then decodes the raw
// response text into the type the caller asked for. It keeps no
// connection state of its own; everything transport-related lives in the
// host behind the bridge.
package provider

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/blockberries/chainapi"
	"github.com/blockberries/chainapi/bridge"
)

// Compile-time interface check.
var _ chainapi.JSONRPCClient = Provider{}

// Provider is a JSON-RPC client backed by a host bridge. Copies of a
// Provider share the same bridge and are independently usable.
type Provider struct {
	host bridge.HostBridge
	log  *zap.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithLogger sets the logger used for request tracing.
func WithLogger(log *zap.Logger) Option {
	return func(p *Provider) {
		if log != nil {
			p.log = log
		}
	}
}

// New creates a Provider forwarding every request to host.
func New(host bridge.HostBridge, opts ...Option) Provider {
	p := Provider{host: host, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Request calls method on the host and decodes the response into result,
// which must be a non-nil pointer.
//
// Every failure is returned as a *chainapi.ProviderError boxing either a
// *chainapi.HostError (the host could not serve the call) or a
// *chainapi.DeserializationError (the response did not decode). The host
// is called exactly once; nothing is retried.
func (p Provider) Request(ctx context.Context, method string, params any, result any) error {
	args, err := encodeArgs(method, params)
	if err != nil {
		return chainapi.NewProviderError(err)
	}

	p.log.Debug("host request",
		zap.String("method", method),
		zap.Int("paramBytes", len(args.Params)),
	)
	raw, err := p.host.Request(ctx, args)
	if err != nil {
		p.log.Warn("host request failed",
			zap.String("method", method),
			zap.Error(err),
		)
		return chainapi.NewProviderError(&chainapi.HostError{Method: method, Err: err})
	}

	if err := json.Unmarshal([]byte(raw), result); err != nil {
		p.log.Debug("undecodable host response",
			zap.String("method", method),
			zap.Int("responseBytes", len(raw)),
			zap.Error(err),
		)
		return chainapi.NewProviderError(&chainapi.DeserializationError{Err: err, Text: raw})
	}
	return nil
}

// Request is the generically-typed form of JSONRPCClient.Request: it
// decodes the result into a fresh R and returns it.
func Request[R any](ctx context.Context, c chainapi.JSONRPCClient, method string, params any) (R, error) {
	var out R
	if err := c.Request(ctx, method, params, &out); err != nil {
		var zero R
		return zero, err
	}
	return out, nil
}

// encodeArgs builds the bridge call. Params always reach the host as a
// JSON array; a call without parameters carries none.
func encodeArgs(method string, params any) (bridge.RequestArgs, error) {
	args := bridge.RequestArgs{Method: method}
	list, err := chainapi.EncodeParams(params)
	if err != nil {
		return bridge.RequestArgs{}, fmt.Errorf("%s: %w", method, err)
	}
	if list == nil {
		return args, nil
	}
	data, err := json.Marshal(list)
	if err != nil {
		return bridge.RequestArgs{}, fmt.Errorf("%s: encode params: %w", method, err)
	}
	args.Params = data
	return args, nil
}
