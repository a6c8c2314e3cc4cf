package local

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockberries/chainapi/bridge"
)

func TestHost_Dispatch(t *testing.T) {
	require := require.New(t)

	h := NewHost()
	h.HandleStatic("system_chain", `"Polkadot"`)
	h.Handle("echo", func(_ context.Context, params []byte) (string, error) {
		return string(params), nil
	})
	require.Equal(2, h.Methods())

	body, err := h.Request(context.Background(), bridge.RequestArgs{Method: "system_chain"})
	require.NoError(err)
	require.Equal(`"Polkadot"`, body)

	body, err = h.Request(context.Background(), bridge.RequestArgs{
		Method: "echo",
		Params: []byte(`[1,2]`),
	})
	require.NoError(err)
	require.Equal(`[1,2]`, body)
	require.Equal(int64(2), h.Calls())
}

func TestHost_UnknownMethod(t *testing.T) {
	h := NewHost()
	_, err := h.Request(context.Background(), bridge.RequestArgs{Method: "nope"})
	require.ErrorIs(t, err, ErrUnknownMethod)
	require.Contains(t, err.Error(), "nope")
	require.Equal(t, int64(1), h.Calls())
}

func TestHost_HandlerError(t *testing.T) {
	h := NewHost()
	boom := errors.New("boom")
	h.Handle("fail", func(context.Context, []byte) (string, error) {
		return "", boom
	})
	_, err := h.Request(context.Background(), bridge.RequestArgs{Method: "fail"})
	require.ErrorIs(t, err, boom)
}

func TestHost_CanceledContext(t *testing.T) {
	h := NewHost()
	called := false
	h.Handle("m", func(context.Context, []byte) (string, error) {
		called = true
		return "1", nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := h.Request(ctx, bridge.RequestArgs{Method: "m"})
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, called)
}

func TestHost_Concurrent(t *testing.T) {
	h := NewHost()
	h.HandleStatic("m", "1")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := h.Request(context.Background(), bridge.RequestArgs{Method: "m"}); err != nil {
				t.Errorf("Request error: %v", err)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, int64(20), h.Calls())
}
