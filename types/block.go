package types

import (
	"encoding/json"
	"slices"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// SignedBlock is a block together with its finality justifications, as
// returned by chain_getBlock.
type SignedBlock struct {
	Block Block `json:"block"`
	// Justifications are kept undecoded; their layout depends on the
	// consensus engine.
	Justifications []json.RawMessage `json:"justifications,omitempty"`
}

// Block is a header and its opaque, SCALE-encoded extrinsics.
type Block struct {
	Header     BlockHeader     `json:"header"`
	Extrinsics []hexutil.Bytes `json:"extrinsics"`
}

// RPCMethods is the result of rpc_methods.
type RPCMethods struct {
	Version uint32   `json:"version"`
	Methods []string `json:"methods"`
}

// Has reports whether the node exposes method.
func (m RPCMethods) Has(method string) bool {
	return slices.Contains(m.Methods, method)
}
