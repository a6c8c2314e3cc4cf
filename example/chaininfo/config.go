package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	URL      string
	Timeout  time.Duration
	LogLevel zapcore.Level
	DevLog   bool
}

func FromEnv() (Config, error) {
	var c Config

	c.URL = os.Getenv("CHAINAPI_URL")
	if c.URL == "" {
		return Config{}, errors.New("missing CHAINAPI_URL")
	}

	timeout, err := time.ParseDuration(getenvDefault("CHAINAPI_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("CHAINAPI_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return Config{}, errors.New("CHAINAPI_TIMEOUT must be > 0")
	}
	c.Timeout = timeout

	if err := c.LogLevel.UnmarshalText([]byte(getenvDefault("CHAINAPI_LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("CHAINAPI_LOG_LEVEL: %w", err)
	}

	c.DevLog, err = strconv.ParseBool(getenvDefault("CHAINAPI_DEV_LOG", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("CHAINAPI_DEV_LOG: %w", err)
	}
	return c, nil
}

// Logger builds the process logger described by the config.
func (c Config) Logger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.DevLog {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)
	return zc.Build()
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
