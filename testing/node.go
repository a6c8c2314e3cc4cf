package chainapitest

import (
	"sync"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/blockberries/chainapi/types"
)

// FakeNode serves the Substrate RPC methods used by chainapi from
// in-memory state. A nil field or a missing map entry makes the
// corresponding method answer with null. Configure fields before
// serving; they are read without locking.
type FakeNode struct {
	Metadata       *types.Metadata
	GenesisHash    *types.Hash
	RuntimeVersion *types.RuntimeVersion
	FinalizedHead  *types.Hash
	RPCMethods     *types.RPCMethods
	Headers        map[types.Hash]types.BlockHeader
	Blocks         map[types.Hash]types.SignedBlock
	// BlockHashes maps heights above zero to block hashes. Height zero
	// is always GenesisHash.
	BlockHashes map[uint64]types.Hash

	mu        sync.Mutex
	submitted []string
}

// NewFakeNode returns a node populated with the package fixtures.
func NewFakeNode() *FakeNode {
	return &FakeNode{
		Metadata:       ptr(DefaultMetadata()),
		GenesisHash:    ptr(DefaultGenesisHash()),
		RuntimeVersion: ptr(DefaultRuntimeVersion()),
		FinalizedHead:  ptr(DefaultFinalizedHead()),
		RPCMethods:     ptr(DefaultRPCMethods()),
		Headers: map[types.Hash]types.BlockHeader{
			DefaultFinalizedHead(): DefaultHeader(),
		},
		Blocks: map[types.Hash]types.SignedBlock{
			DefaultFinalizedHead(): DefaultBlock(),
		},
		BlockHashes: map[uint64]types.Hash{
			DefaultHeader().BlockNumber(): DefaultFinalizedHead(),
		},
	}
}

// Submitted returns the extrinsics received by author_submitExtrinsic.
func (n *FakeNode) Submitted() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.submitted...)
}

// Server builds an RPC server exposing the node. *rpc.Server is also an
// http.Handler.
func (n *FakeNode) Server() (*rpc.Server, error) {
	srv := rpc.NewServer()
	services := map[string]any{
		"chain":  &chainService{n},
		"state":  &stateService{n},
		"author": &authorService{n},
		// Merged into the server's built-in rpc service.
		"rpc": &rpcService{n},
	}
	for name, svc := range services {
		if err := srv.RegisterName(name, svc); err != nil {
			srv.Stop()
			return nil, err
		}
	}
	return srv, nil
}

// --- chain_* ---

type chainService struct{ n *FakeNode }

func (s *chainService) GetFinalizedHead() *types.Hash {
	return s.n.FinalizedHead
}

func (s *chainService) GetBlockHash(number uint64) *types.Hash {
	if number == 0 {
		return s.n.GenesisHash
	}
	h, ok := s.n.BlockHashes[number]
	if !ok {
		return nil
	}
	return &h
}

func (s *chainService) GetBlock(hash types.Hash) *types.SignedBlock {
	b, ok := s.n.Blocks[hash]
	if !ok {
		return nil
	}
	return &b
}

func (s *chainService) GetHeader(hash types.Hash) *types.BlockHeader {
	h, ok := s.n.Headers[hash]
	if !ok {
		return nil
	}
	return &h
}

// --- state_* ---

type stateService struct{ n *FakeNode }

func (s *stateService) GetMetadata() *types.Metadata {
	return s.n.Metadata
}

func (s *stateService) GetRuntimeVersion() *types.RuntimeVersion {
	return s.n.RuntimeVersion
}

// --- author_* ---

type authorService struct{ n *FakeNode }

func (s *authorService) SubmitExtrinsic(hexExtrinsic string) (*types.Hash, error) {
	h, err := ExtrinsicHash(hexExtrinsic)
	if err != nil {
		return nil, err
	}
	s.n.mu.Lock()
	s.n.submitted = append(s.n.submitted, hexExtrinsic)
	s.n.mu.Unlock()
	return &h, nil
}

// --- rpc_* ---

type rpcService struct{ n *FakeNode }

func (s *rpcService) Methods() *types.RPCMethods {
	return s.n.RPCMethods
}
