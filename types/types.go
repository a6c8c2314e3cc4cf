// Package types defines the chain data types exchanged with a
// Substrate-style node: block hashes, runtime metadata, runtime
// versions and block headers.
//
// All types carry JSON encodings matching the node's RPC wire format.
// Hex encodings use the 0x-prefixed form.
package types

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// HashLength is the size of a block or extrinsic hash in bytes.
const HashLength = 32

// Hash is a 32-byte block or extrinsic hash (H256).
type Hash [HashLength]byte

// HashFromHex parses a 0x-prefixed, 64 hex digit string.
func HashFromHex(s string) (Hash, error) {
	var h Hash
	err := h.UnmarshalText([]byte(s))
	return h, err
}

// MustHashFromHex is like HashFromHex but panics on malformed input.
// Intended for constants and tests.
func MustHashFromHex(s string) Hash {
	h, err := HashFromHex(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Hex returns the 0x-prefixed hex encoding of the hash.
func (h Hash) Hex() string {
	return hexutil.Encode(h[:])
}

func (h Hash) String() string { return h.Hex() }

// IsZero reports whether every byte of the hash is zero.
func (h Hash) IsZero() bool { return h == Hash{} }

// MarshalText implements encoding.TextMarshaler.
func (h Hash) MarshalText() ([]byte, error) {
	return hexutil.Bytes(h[:]).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler. The input must
// decode to exactly HashLength bytes.
func (h *Hash) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Hash", input, h[:])
}
