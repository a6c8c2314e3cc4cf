// Package api provides a chain client that knows which chain it is
// talking to before it can be used.
//
// Construction prefetches the runtime metadata, the genesis hash and the
// runtime version, in that order, and fails if any of them is missing.
// A returned *API therefore always carries a complete snapshot of the
// chain's identity. The metadata fetch dominates construction time, as
// the blob can run to hundreds of kilobytes.
package api

import (
	"context"

	"go.uber.org/zap"

	"github.com/blockberries/chainapi"
	"github.com/blockberries/chainapi/baseapi"
	"github.com/blockberries/chainapi/types"
)

// API is a chain client with prefetched chain identity. The exported
// fields are set once by the constructor and never change afterwards.
// Delegated calls are safe for concurrent use when the base API is.
type API struct {
	base chainapi.BaseAPI

	// Metadata is the runtime metadata.
	Metadata types.Metadata
	// GenesisHash is the hash of block zero.
	GenesisHash types.Hash
	// RuntimeVersion is the runtime version.
	RuntimeVersion types.RuntimeVersion
}

type options struct {
	log     *zap.Logger
	baseOps []baseapi.Option
}

// Option configures construction.
type Option func(*options)

// WithLogger sets the logger used during construction. It is also passed
// to the base client created by New.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithBaseOptions passes options to the base client created by New.
func WithBaseOptions(opts ...baseapi.Option) Option {
	return func(o *options) { o.baseOps = append(o.baseOps, opts...) }
}

func buildOptions(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New creates a base client for the node at url and prefetches the
// chain identity through it. ctx bounds both the connection attempt and
// the prefetch. See NewFromBase.
func New(ctx context.Context, url string, opts ...Option) (*API, error) {
	o := buildOptions(opts)
	baseOps := append([]baseapi.Option{baseapi.WithLogger(o.log)}, o.baseOps...)
	base, err := baseapi.DialContext(ctx, url, baseOps...)
	if err != nil {
		return nil, err
	}
	a, err := newFromBase(ctx, base, o)
	if err != nil {
		base.Close()
		return nil, err
	}
	return a, nil
}

// NewFromBase prefetches the chain identity through base.
//
// The calls are made one after another: metadata, genesis hash, runtime
// version. The first failure stops construction. An error from base is
// returned unchanged; a missing value yields chainapi.ErrNoMetadata,
// chainapi.ErrNoGenesisHash or chainapi.ErrNoRuntimeVersion.
func NewFromBase(ctx context.Context, base chainapi.BaseAPI, opts ...Option) (*API, error) {
	return newFromBase(ctx, base, buildOptions(opts))
}

func newFromBase(ctx context.Context, base chainapi.BaseAPI, o options) (*API, error) {
	metadata, err := base.FetchMetadata(ctx)
	if err != nil {
		return nil, err
	}
	if metadata == nil {
		return nil, chainapi.ErrNoMetadata
	}

	genesisHash, err := base.FetchGenesisHash(ctx)
	if err != nil {
		return nil, err
	}
	if genesisHash == nil {
		return nil, chainapi.ErrNoGenesisHash
	}

	runtimeVersion, err := base.FetchRuntimeVersion(ctx)
	if err != nil {
		return nil, err
	}
	if runtimeVersion == nil {
		return nil, chainapi.ErrNoRuntimeVersion
	}

	o.log.Info("chain api ready",
		zap.Stringer("genesis", *genesisHash),
		zap.String("spec", runtimeVersion.SpecName),
		zap.Uint32("specVersion", runtimeVersion.SpecVersion),
		zap.Int("metadataBytes", metadata.Len()),
	)
	return &API{
		base:           base,
		Metadata:       *metadata,
		GenesisHash:    *genesisHash,
		RuntimeVersion: *runtimeVersion,
	}, nil
}

// Base returns the underlying base API for calls the facade does not
// re-expose.
func (a *API) Base() chainapi.BaseAPI {
	return a.base
}

// Close releases the base client if it holds resources.
func (a *API) Close() {
	if c, ok := a.base.(interface{ Close() }); ok {
		c.Close()
	}
}

// --- Delegated calls ---

// ChainGetFinalizedHead returns the hash of the latest finalized block,
// or nil if the node reports none.
func (a *API) ChainGetFinalizedHead(ctx context.Context) (*types.Hash, error) {
	return a.base.FetchFinalizedHead(ctx)
}

// ChainGetBlockHash returns the hash of the block at the given height,
// or nil if the chain is not that long yet.
func (a *API) ChainGetBlockHash(ctx context.Context, number uint64) (*types.Hash, error) {
	return a.base.FetchBlockHash(ctx, number)
}

// RPCMethods lists the RPC methods the node exposes.
func (a *API) RPCMethods(ctx context.Context) (*types.RPCMethods, error) {
	return a.base.FetchRPCMethods(ctx)
}

// AuthorSubmitExtrinsic submits a 0x-prefixed, hex-encoded signed
// extrinsic and returns its hash.
func (a *API) AuthorSubmitExtrinsic(ctx context.Context, hexExtrinsic string) (*types.Hash, error) {
	return a.base.SubmitExtrinsic(ctx, hexExtrinsic)
}

// ChainGetHeader returns the header of the block with the given hash
// decoded as H, or nil if the node does not know the block.
func ChainGetHeader[H types.Header](ctx context.Context, a *API, hash types.Hash) (*H, error) {
	return baseapi.FetchHeader[H](ctx, a.base, hash)
}

// ChainGetBlock returns the block with the given hash decoded as B,
// usually types.SignedBlock, or nil if the node does not know the block.
func ChainGetBlock[B any](ctx context.Context, a *API, hash types.Hash) (*B, error) {
	return baseapi.FetchBlock[B](ctx, a.base, hash)
}
