// Package baseapi is the raw chain client: typed wrappers for the
// Substrate node RPC methods the facade needs, on top of a go-ethereum
// JSON-RPC client.
package baseapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/blockberries/chainapi"
	"github.com/blockberries/chainapi/types"
)

// Compile-time interface checks.
var (
	_ chainapi.BaseAPI       = (*Client)(nil)
	_ chainapi.JSONRPCClient = (*Client)(nil)
)

// Client wraps a node RPC connection with typed Substrate methods.
// It is safe for concurrent use.
type Client struct {
	rpc     *rpc.Client
	log     *zap.Logger
	metrics *metrics
}

type options struct {
	log     *zap.Logger
	reg     prometheus.Registerer
	timeout time.Duration
}

// Option configures a Client.
type Option func(*options)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithRegisterer registers the client's call metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.reg = reg }
}

// WithTimeout bounds every HTTP round trip. Only used by Dial.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func buildOptions(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Node RPC methods called by Client. Only these appear as metric labels.
const (
	MethodFinalizedHead  = "chain_getFinalizedHead"
	MethodHeader         = "chain_getHeader"
	MethodBlockHash      = "chain_getBlockHash"
	MethodBlock          = "chain_getBlock"
	MethodSubmit         = "author_submitExtrinsic"
	MethodMetadata       = "state_getMetadata"
	MethodRuntimeVersion = "state_getRuntimeVersion"
	MethodRPCMethods     = "rpc_methods"
)

// Dial creates a client for the node at url. See DialContext.
func Dial(url string, opts ...Option) (*Client, error) {
	return DialContext(context.Background(), url, opts...)
}

// DialContext creates a client for the node at url. For http(s) URLs no
// connection is made until the first call; ws(s) and ipc endpoints are
// connected immediately and ctx bounds that connection attempt.
func DialContext(ctx context.Context, url string, opts ...Option) (*Client, error) {
	o := buildOptions(opts)

	var dialOpts []rpc.ClientOption
	if o.timeout > 0 {
		dialOpts = append(dialOpts, rpc.WithHTTPClient(&http.Client{Timeout: o.timeout}))
	}
	c, err := rpc.DialOptions(ctx, url, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("baseapi: dial %s: %w", url, err)
	}
	client, err := newClient(c, o)
	if err != nil {
		c.Close()
		return nil, err
	}
	return client, nil
}

// NewClient wraps an existing RPC client.
func NewClient(c *rpc.Client, opts ...Option) (*Client, error) {
	return newClient(c, buildOptions(opts))
}

func newClient(c *rpc.Client, o options) (*Client, error) {
	m, err := newMetrics(o.reg)
	if err != nil {
		return nil, fmt.Errorf("baseapi: register metrics: %w", err)
	}
	return &Client{rpc: c, log: o.log, metrics: m}, nil
}

// Close closes the underlying RPC connection.
func (c *Client) Close() {
	c.rpc.Close()
}

// RPC returns the underlying RPC client.
func (c *Client) RPC() *rpc.Client {
	return c.rpc
}

func (c *Client) call(ctx context.Context, result any, method string, args ...any) error {
	start := time.Now()
	err := c.rpc.CallContext(ctx, result, method, args...)
	c.metrics.observe(method, start, err)
	if err != nil {
		c.log.Debug("rpc call failed",
			zap.String("method", method),
			zap.Error(err),
		)
	}
	return err
}

// Request implements chainapi.JSONRPCClient. params follow
// chainapi.EncodeParams.
func (c *Client) Request(ctx context.Context, method string, params any, result any) error {
	list, err := chainapi.EncodeParams(params)
	if err != nil {
		return fmt.Errorf("baseapi: %s: %w", method, err)
	}
	args := make([]any, len(list))
	for i, p := range list {
		args[i] = p
	}
	return c.call(ctx, result, method, args...)
}

// --- Chain ---

func (c *Client) FetchFinalizedHead(ctx context.Context) (*types.Hash, error) {
	var h *types.Hash
	err := c.call(ctx, &h, MethodFinalizedHead)
	return h, err
}

func (c *Client) FetchHeader(ctx context.Context, hash types.Hash, out any) (bool, error) {
	return c.fetchOptional(ctx, out, MethodHeader, hash)
}

// FetchBlockHash returns the hash of the block at the given height on
// the best chain, or nil if there is none yet.
func (c *Client) FetchBlockHash(ctx context.Context, number uint64) (*types.Hash, error) {
	var h *types.Hash
	err := c.call(ctx, &h, MethodBlockHash, number)
	return h, err
}

func (c *Client) FetchGenesisHash(ctx context.Context) (*types.Hash, error) {
	return c.FetchBlockHash(ctx, 0)
}

func (c *Client) FetchBlock(ctx context.Context, hash types.Hash, out any) (bool, error) {
	return c.fetchOptional(ctx, out, MethodBlock, hash)
}

// fetchOptional decodes a result that may be null into out and reports
// whether it was present.
func (c *Client) fetchOptional(ctx context.Context, out any, method string, args ...any) (bool, error) {
	var raw json.RawMessage
	if err := c.call(ctx, &raw, method, args...); err != nil {
		return false, err
	}
	if isNull(raw) {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("baseapi: decode %s result: %w", method, err)
	}
	return true, nil
}

// --- Author ---

func (c *Client) SubmitExtrinsic(ctx context.Context, hexExtrinsic string) (*types.Hash, error) {
	var h *types.Hash
	err := c.call(ctx, &h, MethodSubmit, hexExtrinsic)
	return h, err
}

// --- State ---

func (c *Client) FetchMetadata(ctx context.Context) (*types.Metadata, error) {
	var m *types.Metadata
	if err := c.call(ctx, &m, MethodMetadata); err != nil {
		return nil, err
	}
	if m != nil {
		c.log.Debug("fetched metadata", zap.Int("bytes", m.Len()))
	}
	return m, nil
}

func (c *Client) FetchRuntimeVersion(ctx context.Context) (*types.RuntimeVersion, error) {
	var v *types.RuntimeVersion
	err := c.call(ctx, &v, MethodRuntimeVersion)
	return v, err
}

// --- RPC ---

func (c *Client) FetchRPCMethods(ctx context.Context) (*types.RPCMethods, error) {
	var m *types.RPCMethods
	err := c.call(ctx, &m, MethodRPCMethods)
	return m, err
}

// FetchHeader fetches and decodes a header into H. It returns nil when
// the node does not know the block.
func FetchHeader[H types.Header](ctx context.Context, base chainapi.BaseAPI, hash types.Hash) (*H, error) {
	h := new(H)
	found, err := base.FetchHeader(ctx, hash, h)
	if err != nil || !found {
		return nil, err
	}
	return h, nil
}

// FetchBlock fetches and decodes a block into B. It returns nil when the
// node does not know the block.
func FetchBlock[B any](ctx context.Context, base chainapi.BaseAPI, hash types.Hash) (*B, error) {
	b := new(B)
	found, err := base.FetchBlock(ctx, hash, b)
	if err != nil || !found {
		return nil, err
	}
	return b, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
