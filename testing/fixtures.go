package chainapitest

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/blake2b"

	"github.com/blockberries/chainapi/types"
)

// --- Fixtures ---

// DefaultMetadata returns a small, well-formed V14 metadata blob.
func DefaultMetadata() types.Metadata {
	return types.NewMetadata([]byte{0x6d, 0x65, 0x74, 0x61, 0x0e, 0x00, 0x00, 0x00})
}

// DefaultGenesisHash returns the Polkadot genesis hash.
func DefaultGenesisHash() types.Hash {
	return types.MustHashFromHex("0x91b171bb158e2d3848fa23a9f1c25182fb8e20313b2c1eb49219da7a70ce90c3")
}

// DefaultFinalizedHead returns the hash served as the finalized head.
// DefaultHeader is the header of this block.
func DefaultFinalizedHead() types.Hash {
	return types.MustHashFromHex("0xc0096358534ec8d21d01d34b836eed476a1c343f8724fa2153dc0725ad797a90")
}

// DefaultRuntimeVersion returns a Polkadot-like runtime version.
func DefaultRuntimeVersion() types.RuntimeVersion {
	return types.RuntimeVersion{
		SpecName:         "polkadot",
		ImplName:         "parity-polkadot",
		AuthoringVersion: 0,
		SpecVersion:      9430,
		ImplVersion:      0,
		APIs: []types.RuntimeAPI{
			{ID: "0xdf6acb689907609b", Version: 4},
			{ID: "0x37e397fc7c91f5e4", Version: 2},
		},
		TransactionVersion: 24,
		StateVersion:       0,
	}
}

// DefaultHeader returns block #1, child of the genesis block.
func DefaultHeader() types.BlockHeader {
	return types.BlockHeader{
		ParentHash:     DefaultGenesisHash(),
		Number:         1,
		StateRoot:      types.MustHashFromHex("0x29d0d972cd27cbc511e9589fcb7a4506d5eb6a9e8df205f00472e5ab354a4e17"),
		ExtrinsicsRoot: types.MustHashFromHex("0x03170a2e7597b7b7e3d84c05391d139a62b157e78786d8c082f29dcf4c111314"),
		Digest:         types.Digest{Logs: []hexutil.Bytes{{0x06, 0x42, 0x41, 0x42, 0x45}}},
	}
}

// DefaultBlock returns the block whose header is DefaultHeader.
func DefaultBlock() types.SignedBlock {
	return types.SignedBlock{
		Block: types.Block{
			Header:     DefaultHeader(),
			Extrinsics: []hexutil.Bytes{{0x28, 0x04, 0x03, 0x00, 0x0b, 0x20, 0x7e, 0xba, 0x5c, 0x85, 0x01}},
		},
	}
}

// DefaultRPCMethods returns the method list served by rpc_methods.
func DefaultRPCMethods() types.RPCMethods {
	return types.RPCMethods{
		Version: 1,
		Methods: []string{
			"author_submitExtrinsic",
			"chain_getBlock",
			"chain_getBlockHash",
			"chain_getFinalizedHead",
			"chain_getHeader",
			"rpc_methods",
			"state_getMetadata",
			"state_getRuntimeVersion",
		},
	}
}

// ExtrinsicHash returns the blake2b-256 hash of a hex-encoded extrinsic,
// which is how a node identifies a submitted extrinsic.
func ExtrinsicHash(hexExtrinsic string) (types.Hash, error) {
	raw, err := hexutil.Decode(hexExtrinsic)
	if err != nil {
		return types.Hash{}, err
	}
	return types.Hash(blake2b.Sum256(raw)), nil
}

func ptr[T any](v T) *T { return &v }
