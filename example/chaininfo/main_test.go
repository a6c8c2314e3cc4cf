package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"

	chainapitest "github.com/blockberries/chainapi/testing"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("CHAINAPI_URL", "http://localhost:9933")
	t.Setenv("CHAINAPI_TIMEOUT", "3s")
	t.Setenv("CHAINAPI_LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9933", cfg.URL)
	require.Equal(t, 3*time.Second, cfg.Timeout)
	require.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	require.False(t, cfg.DevLog)
}

func TestFromEnv_MissingURL(t *testing.T) {
	t.Setenv("CHAINAPI_URL", "")
	_, err := FromEnv()
	require.Error(t, err)
}

func TestFromEnv_BadTimeout(t *testing.T) {
	t.Setenv("CHAINAPI_URL", "http://localhost:9933")
	t.Setenv("CHAINAPI_TIMEOUT", "soon")
	_, err := FromEnv()
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	cfg := Config{
		URL:     chainapitest.StartHTTP(t, chainapitest.NewFakeNode()),
		Timeout: 5 * time.Second,
	}
	require.NoError(t, run(context.Background(), cfg, zaptest.NewLogger(t)))
}
