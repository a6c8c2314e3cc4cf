// Package bridgegrpc carries host bridge requests over gRPC, using
// cramberry for deterministic binary serialization.
//
// No protobuf code generation is required. bridge.RequestArgs and
// Response are serialized directly via their cramberry struct tags.
package bridgegrpc

import (
	"errors"
	"fmt"

	"github.com/blockberries/cramberry/pkg/cramberry"
	"google.golang.org/grpc/encoding"
)

const codecName = "cramberry"

// ErrNilMessage is returned when the codec is handed a nil message.
var ErrNilMessage = errors.New("bridgegrpc: nil message")

// CramberryCodec is the grpc/encoding.Codec used on both ends of the
// bridge. Errors name the message type so a mismatched peer is easy to
// spot in logs.
type CramberryCodec struct{}

func (CramberryCodec) Marshal(v any) ([]byte, error) {
	if v == nil {
		return nil, ErrNilMessage
	}
	data, err := cramberry.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("bridgegrpc: encode %T: %w", v, err)
	}
	return data, nil
}

func (CramberryCodec) Unmarshal(data []byte, v any) error {
	if v == nil {
		return ErrNilMessage
	}
	if err := cramberry.Unmarshal(data, v); err != nil {
		return fmt.Errorf("bridgegrpc: decode %T from %d bytes: %w", v, len(data), err)
	}
	return nil
}

func (CramberryCodec) Name() string { return codecName }

func init() {
	encoding.RegisterCodec(CramberryCodec{})
}
