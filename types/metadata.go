package types

import (
	"bytes"
	"errors"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// metadataMagic prefixes every SCALE-encoded runtime metadata blob ("meta").
var metadataMagic = []byte{0x6d, 0x65, 0x74, 0x61}

// ErrBadMetadataMagic is returned by Metadata.Version when the blob does
// not start with the metadata magic number.
var ErrBadMetadataMagic = errors.New("metadata: missing magic prefix")

// Metadata is the runtime metadata of a chain as returned by
// state_getMetadata. The SCALE payload is kept opaque; only the
// magic prefix and format version are inspected.
type Metadata struct {
	raw []byte
}

// NewMetadata wraps a raw SCALE-encoded metadata blob.
func NewMetadata(raw []byte) Metadata {
	return Metadata{raw: bytes.Clone(raw)}
}

// Bytes returns a copy of the raw SCALE-encoded blob.
func (m Metadata) Bytes() []byte { return bytes.Clone(m.raw) }

// Len returns the blob size in bytes.
func (m Metadata) Len() int { return len(m.raw) }

// Equal reports whether both blobs are byte-identical.
func (m Metadata) Equal(other Metadata) bool { return bytes.Equal(m.raw, other.raw) }

// Version returns the metadata format version (e.g. 14 or 15), which is
// the byte following the magic prefix.
func (m Metadata) Version() (uint8, error) {
	if len(m.raw) <= len(metadataMagic) || !bytes.HasPrefix(m.raw, metadataMagic) {
		return 0, ErrBadMetadataMagic
	}
	return m.raw[len(metadataMagic)], nil
}

// MarshalText encodes the blob as a 0x-prefixed hex string.
func (m Metadata) MarshalText() ([]byte, error) {
	return hexutil.Bytes(m.raw).MarshalText()
}

// UnmarshalText decodes a 0x-prefixed hex string.
func (m *Metadata) UnmarshalText(input []byte) error {
	var b hexutil.Bytes
	if err := b.UnmarshalText(input); err != nil {
		return err
	}
	m.raw = b
	return nil
}
