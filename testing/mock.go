// Package chainapitest provides test utilities for code built on chainapi:
// configurable mocks with call counters, fixture values, an in-process
// fake node, and a compliance suite for BaseAPI implementations.
package chainapitest

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/blockberries/chainapi"
	"github.com/blockberries/chainapi/bridge"
	"github.com/blockberries/chainapi/types"
)

// Compile-time interface checks.
var (
	_ chainapi.BaseAPI  = (*MockBase)(nil)
	_ bridge.HostBridge = (*MockBridge)(nil)
)

// MockBase is a configurable BaseAPI. All methods are configurable via
// function fields. Unconfigured methods return the fixture values of this
// package, so a zero MockBase behaves like a healthy node.
type MockBase struct {
	FetchFinalizedHeadFn  func(context.Context) (*types.Hash, error)
	FetchHeaderFn         func(context.Context, types.Hash, any) (bool, error)
	SubmitExtrinsicFn     func(context.Context, string) (*types.Hash, error)
	FetchMetadataFn       func(context.Context) (*types.Metadata, error)
	FetchGenesisHashFn    func(context.Context) (*types.Hash, error)
	FetchRuntimeVersionFn func(context.Context) (*types.RuntimeVersion, error)
	FetchBlockHashFn      func(context.Context, uint64) (*types.Hash, error)
	FetchBlockFn          func(context.Context, types.Hash, any) (bool, error)
	FetchRPCMethodsFn     func(context.Context) (*types.RPCMethods, error)

	// Call counters (atomic for concurrent access).
	FinalizedHeadCalls  atomic.Int64
	HeaderCalls         atomic.Int64
	SubmitCalls         atomic.Int64
	MetadataCalls       atomic.Int64
	GenesisHashCalls    atomic.Int64
	RuntimeVersionCalls atomic.Int64
	BlockHashCalls      atomic.Int64
	BlockCalls          atomic.Int64
	RPCMethodsCalls     atomic.Int64
}

func (m *MockBase) FetchFinalizedHead(ctx context.Context) (*types.Hash, error) {
	m.FinalizedHeadCalls.Add(1)
	if m.FetchFinalizedHeadFn != nil {
		return m.FetchFinalizedHeadFn(ctx)
	}
	return ptr(DefaultFinalizedHead()), nil
}

func (m *MockBase) FetchHeader(ctx context.Context, hash types.Hash, out any) (bool, error) {
	m.HeaderCalls.Add(1)
	if m.FetchHeaderFn != nil {
		return m.FetchHeaderFn(ctx, hash, out)
	}
	if hash != DefaultFinalizedHead() {
		return false, nil
	}
	return true, decodeInto(DefaultHeader(), out)
}

func (m *MockBase) FetchBlockHash(ctx context.Context, number uint64) (*types.Hash, error) {
	m.BlockHashCalls.Add(1)
	if m.FetchBlockHashFn != nil {
		return m.FetchBlockHashFn(ctx, number)
	}
	switch number {
	case 0:
		return ptr(DefaultGenesisHash()), nil
	case DefaultHeader().BlockNumber():
		return ptr(DefaultFinalizedHead()), nil
	default:
		return nil, nil
	}
}

func (m *MockBase) FetchBlock(ctx context.Context, hash types.Hash, out any) (bool, error) {
	m.BlockCalls.Add(1)
	if m.FetchBlockFn != nil {
		return m.FetchBlockFn(ctx, hash, out)
	}
	if hash != DefaultFinalizedHead() {
		return false, nil
	}
	return true, decodeInto(DefaultBlock(), out)
}

func (m *MockBase) FetchRPCMethods(ctx context.Context) (*types.RPCMethods, error) {
	m.RPCMethodsCalls.Add(1)
	if m.FetchRPCMethodsFn != nil {
		return m.FetchRPCMethodsFn(ctx)
	}
	return ptr(DefaultRPCMethods()), nil
}

// decodeInto goes through JSON so out can be any caller-chosen type.
func decodeInto(v, out any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (m *MockBase) SubmitExtrinsic(ctx context.Context, hexExtrinsic string) (*types.Hash, error) {
	m.SubmitCalls.Add(1)
	if m.SubmitExtrinsicFn != nil {
		return m.SubmitExtrinsicFn(ctx, hexExtrinsic)
	}
	h, err := ExtrinsicHash(hexExtrinsic)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (m *MockBase) FetchMetadata(ctx context.Context) (*types.Metadata, error) {
	m.MetadataCalls.Add(1)
	if m.FetchMetadataFn != nil {
		return m.FetchMetadataFn(ctx)
	}
	return ptr(DefaultMetadata()), nil
}

func (m *MockBase) FetchGenesisHash(ctx context.Context) (*types.Hash, error) {
	m.GenesisHashCalls.Add(1)
	if m.FetchGenesisHashFn != nil {
		return m.FetchGenesisHashFn(ctx)
	}
	return ptr(DefaultGenesisHash()), nil
}

func (m *MockBase) FetchRuntimeVersion(ctx context.Context) (*types.RuntimeVersion, error) {
	m.RuntimeVersionCalls.Add(1)
	if m.FetchRuntimeVersionFn != nil {
		return m.FetchRuntimeVersionFn(ctx)
	}
	return ptr(DefaultRuntimeVersion()), nil
}

// MockBridge is a configurable host bridge that records its calls.
// Without RequestFn it answers every call with "null".
type MockBridge struct {
	RequestFn func(context.Context, bridge.RequestArgs) (string, error)

	RequestCalls atomic.Int64

	mu   sync.Mutex
	last bridge.RequestArgs
}

func (m *MockBridge) Request(ctx context.Context, args bridge.RequestArgs) (string, error) {
	m.RequestCalls.Add(1)
	m.mu.Lock()
	m.last = args
	m.mu.Unlock()

	if m.RequestFn != nil {
		return m.RequestFn(ctx, args)
	}
	return "null", nil
}

// LastArgs returns the arguments of the most recent call.
func (m *MockBridge) LastArgs() bridge.RequestArgs {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}
