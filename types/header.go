package types

import "github.com/ethereum/go-ethereum/common/hexutil"

// Header is implemented by decoded block header types. Callers may decode
// headers into their own chain-specific types as long as they satisfy it.
type Header interface {
	BlockNumber() uint64
	ParentBlockHash() Hash
}

// Compile-time interface check.
var _ Header = BlockHeader{}

// BlockHeader is the generic Substrate block header.
type BlockHeader struct {
	ParentHash     Hash           `json:"parentHash"`
	Number         hexutil.Uint64 `json:"number"`
	StateRoot      Hash           `json:"stateRoot"`
	ExtrinsicsRoot Hash           `json:"extrinsicsRoot"`
	Digest         Digest         `json:"digest"`
}

func (h BlockHeader) BlockNumber() uint64 { return uint64(h.Number) }

func (h BlockHeader) ParentBlockHash() Hash { return h.ParentHash }

// Digest holds the SCALE-encoded digest items of a header.
type Digest struct {
	Logs []hexutil.Bytes `json:"logs"`
}
