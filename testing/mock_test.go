package chainapitest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockberries/chainapi"
	"github.com/blockberries/chainapi/bridge"
	"github.com/blockberries/chainapi/types"
)

func TestMockBase_Compliance(t *testing.T) {
	RunBaseAPIComplianceSuite(t, func(*testing.T) chainapi.BaseAPI {
		return &MockBase{}
	})
}

func TestMockBase_Overrides(t *testing.T) {
	boom := errors.New("boom")
	m := &MockBase{
		FetchGenesisHashFn: func(context.Context) (*types.Hash, error) { return nil, boom },
	}
	_, err := m.FetchGenesisHash(context.Background())
	require.ErrorIs(t, err, boom)
	require.Equal(t, int64(1), m.GenesisHashCalls.Load())
}

func TestMockBridge_RecordsCalls(t *testing.T) {
	m := &MockBridge{}
	body, err := m.Request(context.Background(), bridge.RequestArgs{Method: "a", Params: []byte("[1]")})
	require.NoError(t, err)
	require.Equal(t, "null", body)
	require.Equal(t, "a", m.LastArgs().Method)
	require.Equal(t, int64(1), m.RequestCalls.Load())
}

func TestExtrinsicHash_RejectsBadHex(t *testing.T) {
	_, err := ExtrinsicHash("0xzz")
	require.Error(t, err)
}
