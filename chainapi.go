// Package chainapi defines the capability boundary between typed chain
// clients and the transports that carry their requests.
//
// Two capabilities are defined here. [JSONRPCClient] is the typed
// request contract that transports satisfy (see package provider for the
// host-bridge transport and package baseapi for the node client).
// [BaseAPI] is the raw chain query surface that the prefetching facade in
// package api is built on.
package chainapi

import (
	"context"

	"github.com/blockberries/chainapi/types"
)

// JSONRPCClient issues a JSON-RPC call and decodes its result.
//
// params is any JSON-serializable value and is interpreted by
// [EncodeParams]: a value encoding to a JSON array is the positional
// parameter list, anything else is the only parameter, and nil sends
// none. Every implementation applies that rule, so a call means the same
// thing whichever transport carries it. result must be a non-nil pointer
// to a type the raw result can be unmarshaled into.
// Implementations make exactly one transport call per invocation and
// never retry.
type JSONRPCClient interface {
	Request(ctx context.Context, method string, params any, result any) error
}

// BaseAPI is the lower-level chain client the facade delegates to.
//
// Every operation returns an absent value (nil pointer, or found=false)
// when the node answers with no value, and an error only when the call
// itself failed. Absence is never reported as an error.
//
// Implementations MUST be safe for concurrent use.
type BaseAPI interface {
	// FetchFinalizedHead returns the hash of the latest finalized block.
	FetchFinalizedHead(ctx context.Context) (*types.Hash, error)

	// FetchHeader decodes the header of the block with the given hash
	// into out, which must be a pointer to a header type. It reports
	// whether the node knew the block.
	FetchHeader(ctx context.Context, hash types.Hash, out any) (bool, error)

	// FetchBlockHash returns the hash of the block at the given height
	// on the best chain.
	FetchBlockHash(ctx context.Context, number uint64) (*types.Hash, error)

	// FetchBlock decodes the block with the given hash into out, which
	// must be a pointer. It reports whether the node knew the block.
	FetchBlock(ctx context.Context, hash types.Hash, out any) (bool, error)

	// SubmitExtrinsic submits a 0x-prefixed, hex-encoded signed
	// extrinsic and returns its hash.
	SubmitExtrinsic(ctx context.Context, hexExtrinsic string) (*types.Hash, error)

	// FetchMetadata returns the runtime metadata at the best block.
	// The blob can be several hundred kilobytes.
	FetchMetadata(ctx context.Context) (*types.Metadata, error)

	// FetchGenesisHash returns the hash of block zero. It is
	// FetchBlockHash at height 0.
	FetchGenesisHash(ctx context.Context) (*types.Hash, error)

	// FetchRuntimeVersion returns the runtime version at the best block.
	FetchRuntimeVersion(ctx context.Context) (*types.RuntimeVersion, error)

	// FetchRPCMethods returns the RPC methods the node exposes.
	FetchRPCMethods(ctx context.Context) (*types.RPCMethods, error)
}
