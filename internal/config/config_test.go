package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "content-1", cfg.WorkerID)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "content.render", cfg.StreamKey)
	assert.Equal(t, "content-workers", cfg.ConsumerGroup)
	assert.Equal(t, "content.rendered", cfg.ResultStream)
	assert.Equal(t, time.Second, cfg.BlockTime)
	assert.Equal(t, 24*time.Hour, cfg.ResultTTL)
	assert.Equal(t, "content:rendered:", cfg.ResultKeyPrefix)
	assert.True(t, cfg.CELEnabled)
	assert.Equal(t, 8083, cfg.HealthPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogEncoding)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("WORKER_ID", "content-7")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("RESULT_TTL", "0s")
	t.Setenv("CEL_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "content-7", cfg.WorkerID)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Zero(t, cfg.ResultTTL)
	assert.False(t, cfg.CELEnabled)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("HEALTH_PORT", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty worker id", func(c *Config) { c.WorkerID = "" }},
		{"empty redis addr", func(c *Config) { c.RedisAddr = "" }},
		{"empty stream", func(c *Config) { c.StreamKey = "" }},
		{"empty group", func(c *Config) { c.ConsumerGroup = "" }},
		{"empty result stream", func(c *Config) { c.ResultStream = "" }},
		{"same streams", func(c *Config) { c.ResultStream = c.StreamKey }},
		{"zero block time", func(c *Config) { c.BlockTime = 0 }},
		{"negative ttl", func(c *Config) { c.ResultTTL = -time.Second }},
		{"empty key prefix", func(c *Config) { c.ResultKeyPrefix = "" }},
		{"port too high", func(c *Config) { c.HealthPort = 70000 }},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }},
		{"bad encoding", func(c *Config) { c.LogEncoding = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestString_OmitsPassword(t *testing.T) {
	cfg := &Config{RedisPassword: "s3cret", WorkerID: "w"}
	assert.NotContains(t, cfg.String(), "s3cret")
	assert.Contains(t, cfg.String(), "WorkerID=w")
}
