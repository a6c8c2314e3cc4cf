package provider_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/blockberries/chainapi"
	"github.com/blockberries/chainapi/bridge"
	"github.com/blockberries/chainapi/provider"
	chainapitest "github.com/blockberries/chainapi/testing"
	"github.com/blockberries/chainapi/types"
)

func respondWith(body string) *chainapitest.MockBridge {
	return &chainapitest.MockBridge{
		RequestFn: func(context.Context, bridge.RequestArgs) (string, error) {
			return body, nil
		},
	}
}

func TestRequest_OneHostCallPerRequest(t *testing.T) {
	require := require.New(t)

	host := respondWith(`"0x1"`)
	p := provider.New(host)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := provider.Request[string](ctx, p, "eth_chainId", nil)
		require.NoError(err)
		require.Equal(int64(i), host.RequestCalls.Load())
	}
}

func TestRequest_ForwardsMethodAndParams(t *testing.T) {
	require := require.New(t)

	host := respondWith(`null`)
	p := provider.New(host)

	var out any
	err := p.Request(context.Background(), "eth_getBalance", []any{"0xabc", "latest"}, &out)
	require.NoError(err)

	args := host.LastArgs()
	require.Equal("eth_getBalance", args.Method)
	require.True(args.HasParams())
	require.JSONEq(`["0xabc","latest"]`, string(args.Params))
}

func TestRequest_ParamsAlwaysForwardedAsArray(t *testing.T) {
	cases := []struct {
		name   string
		params any
		want   string
	}{
		{name: "typed_slice", params: []int{0}, want: `[0]`},
		{name: "single_value", params: "0x01", want: `["0x01"]`},
		{name: "hash", params: chainapitest.DefaultGenesisHash(), want: `["` + chainapitest.DefaultGenesisHash().Hex() + `"]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			host := respondWith(`null`)
			var out any
			require.NoError(t, provider.New(host).Request(context.Background(), "m", tc.params, &out))
			require.JSONEq(t, tc.want, string(host.LastArgs().Params))
		})
	}
}

func TestRequest_EmptyParamsSendsNone(t *testing.T) {
	host := respondWith(`1`)
	_, err := provider.Request[int](context.Background(), provider.New(host), "m", []string{})
	require.NoError(t, err)
	require.False(t, host.LastArgs().HasParams())
}

func TestRequest_NilParamsSendsNone(t *testing.T) {
	host := respondWith(`1`)
	_, err := provider.Request[int](context.Background(), provider.New(host), "eth_blockNumber", nil)
	require.NoError(t, err)
	require.False(t, host.LastArgs().HasParams())
}

func TestRequest_RoundTrip(t *testing.T) {
	ctx := context.Background()

	t.Run("runtime_version", func(t *testing.T) {
		want := chainapitest.DefaultRuntimeVersion()
		body, err := json.Marshal(want)
		require.NoError(t, err)

		got, err := provider.Request[types.RuntimeVersion](ctx, provider.New(respondWith(string(body))), "state_getRuntimeVersion", nil)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("hash", func(t *testing.T) {
		want := chainapitest.DefaultGenesisHash()
		body, err := json.Marshal(want)
		require.NoError(t, err)

		got, err := provider.Request[types.Hash](ctx, provider.New(respondWith(string(body))), "chain_getBlockHash", []int{0})
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("map", func(t *testing.T) {
		want := map[string]uint64{"a": 1, "b": 2}
		body, err := json.Marshal(want)
		require.NoError(t, err)

		got, err := provider.Request[map[string]uint64](ctx, provider.New(respondWith(string(body))), "m", nil)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})
}

func TestRequest_DeserializationError(t *testing.T) {
	require := require.New(t)

	const body = `{"specName": 42}`
	host := respondWith(body)

	_, err := provider.Request[types.RuntimeVersion](context.Background(), provider.New(host), "state_getRuntimeVersion", nil)
	require.Error(err)

	_, ok := chainapi.IsProviderError(err)
	require.True(ok)
	d, ok := chainapi.IsDeserialization(err)
	require.True(ok)
	require.Equal(body, d.Text, "raw response is kept for diagnostics")
	require.Equal(int64(1), host.RequestCalls.Load(), "no retry after decode failure")
}

func TestRequest_NotJSON(t *testing.T) {
	_, err := provider.Request[int](context.Background(), provider.New(respondWith("<html>")), "m", nil)
	_, ok := chainapi.IsDeserialization(err)
	require.True(t, ok)
}

func TestRequest_HostFailureIsReturned(t *testing.T) {
	require := require.New(t)

	trap := errors.New("host trapped")
	host := &chainapitest.MockBridge{
		RequestFn: func(context.Context, bridge.RequestArgs) (string, error) {
			return "", trap
		},
	}

	_, err := provider.Request[string](context.Background(), provider.New(host), "system_name", nil)
	require.ErrorIs(err, trap)

	h, ok := chainapi.IsHostError(err)
	require.True(ok)
	require.Equal("system_name", h.Method)
	require.Equal(int64(1), host.RequestCalls.Load())
}

func TestRequest_UnencodableParams(t *testing.T) {
	host := respondWith(`1`)
	_, err := provider.Request[int](context.Background(), provider.New(host), "m", make(chan int))

	_, ok := chainapi.IsProviderError(err)
	require.True(t, ok)
	require.Zero(t, host.RequestCalls.Load(), "host must not be called")
}

func TestProvider_CopiesShareHost(t *testing.T) {
	host := respondWith(`"ok"`)
	p := provider.New(host, provider.WithLogger(zaptest.NewLogger(t)))
	clone := p

	_, err := provider.Request[string](context.Background(), p, "a", nil)
	require.NoError(t, err)
	_, err = provider.Request[string](context.Background(), clone, "b", nil)
	require.NoError(t, err)
	require.Equal(t, int64(2), host.RequestCalls.Load())
}
