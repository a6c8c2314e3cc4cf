package chainapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeserializationError(t *testing.T) {
	require := require.New(t)

	var target struct{ N int }
	cause := json.Unmarshal([]byte(`{"N":"x"}`), &target)
	require.Error(cause)

	err := &DeserializationError{Err: cause, Text: `{"N":"x"}`}
	require.Contains(err.Error(), "deserialization error")
	require.Contains(err.Error(), `Response: {"N":"x"}`)
	require.ErrorIs(err, cause)
}

func TestDeserializationError_TruncatesText(t *testing.T) {
	text := strings.Repeat("a", 1000)
	err := &DeserializationError{Err: errors.New("bad"), Text: text}

	msg := err.Error()
	require.Less(t, len(msg), 400)
	require.True(t, strings.HasSuffix(msg, "..."))
	require.Len(t, err.Text, 1000, "full text stays available")
}

func TestProviderError_Boxing(t *testing.T) {
	require := require.New(t)

	host := &HostError{Method: "eth_chainId", Err: errors.New("trap")}
	err := NewProviderError(host)

	p, ok := IsProviderError(err)
	require.True(ok)
	require.Same(host, p.Err)
	require.Equal(`json-rpc client error: host request "eth_chainId" failed: trap`, err.Error())

	// Wrapped.
	wrapped := fmt.Errorf("fetch: %w", err)
	h, ok := IsHostError(wrapped)
	require.True(ok)
	require.Equal("eth_chainId", h.Method)

	_, ok = IsDeserialization(wrapped)
	require.False(ok)
}

func TestNewProviderError_Nil(t *testing.T) {
	require.NoError(t, NewProviderError(nil))
}

func TestIsHelpers_NonMatching(t *testing.T) {
	plain := errors.New("just a regular error")

	_, ok := IsProviderError(plain)
	require.False(t, ok)
	_, ok = IsDeserialization(nil)
	require.False(t, ok)
	_, ok = IsHostError(plain)
	require.False(t, ok)
}

func TestPrefetchErrorsDistinct(t *testing.T) {
	require.False(t, errors.Is(ErrNoMetadata, ErrNoGenesisHash))
	require.False(t, errors.Is(ErrNoGenesisHash, ErrNoRuntimeVersion))
	require.ErrorIs(t, fmt.Errorf("ctx: %w", ErrNoRuntimeVersion), ErrNoRuntimeVersion)
}
