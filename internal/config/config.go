package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the content worker
type Config struct {
	// Worker configuration
	WorkerID string `env:"WORKER_ID" envDefault:"content-1"`

	// Redis configuration
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASS" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Stream configuration
	StreamKey     string        `env:"STREAM_KEY" envDefault:"content.render"`
	ConsumerGroup string        `env:"CONSUMER_GROUP" envDefault:"content-workers"`
	ResultStream  string        `env:"RESULT_STREAM" envDefault:"content.rendered"`
	BlockTime     time.Duration `env:"BLOCK_TIME" envDefault:"1s"`

	// Result storage configuration
	ResultTTL       time.Duration `env:"RESULT_TTL" envDefault:"24h"`
	ResultKeyPrefix string        `env:"RESULT_KEY_PREFIX" envDefault:"content:rendered:"`

	// CEL configuration
	CELEnabled bool `env:"CEL_ENABLED" envDefault:"true"`

	// Health check configuration
	HealthPort int `env:"HEALTH_PORT" envDefault:"8083"`

	// Logging configuration
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogEncoding string `env:"LOG_ENCODING" envDefault:"json"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.WorkerID == "" {
		return fmt.Errorf("WORKER_ID is required")
	}

	if c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	if c.StreamKey == "" {
		return fmt.Errorf("STREAM_KEY is required")
	}

	if c.ConsumerGroup == "" {
		return fmt.Errorf("CONSUMER_GROUP is required")
	}

	if c.ResultStream == "" {
		return fmt.Errorf("RESULT_STREAM is required")
	}

	if c.ResultStream == c.StreamKey {
		return fmt.Errorf("RESULT_STREAM must differ from STREAM_KEY")
	}

	if c.BlockTime <= 0 {
		return fmt.Errorf("BLOCK_TIME must be positive")
	}

	// RESULT_TTL of zero stores results without expiry
	if c.ResultTTL < 0 {
		return fmt.Errorf("RESULT_TTL must be non-negative")
	}

	if c.ResultKeyPrefix == "" {
		return fmt.Errorf("RESULT_KEY_PREFIX is required")
	}

	if c.HealthPort <= 0 || c.HealthPort > 65535 {
		return fmt.Errorf("HEALTH_PORT must be between 1 and 65535")
	}

	if !IsValidLogLevel(c.LogLevel) {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	if c.LogEncoding != "json" && c.LogEncoding != "console" {
		return fmt.Errorf("LOG_ENCODING must be one of: json, console")
	}

	return nil
}

// IsValidLogLevel checks if the log level is valid
func IsValidLogLevel(level string) bool {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	return validLevels[level]
}

// String returns a string representation of the config (without sensitive data)
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{WorkerID=%s, RedisAddr=%s, RedisDB=%d, StreamKey=%s, ConsumerGroup=%s, "+
			"ResultStream=%s, ResultTTL=%s, CELEnabled=%v, HealthPort=%d, LogLevel=%s}",
		c.WorkerID,
		c.RedisAddr,
		c.RedisDB,
		c.StreamKey,
		c.ConsumerGroup,
		c.ResultStream,
		c.ResultTTL,
		c.CELEnabled,
		c.HealthPort,
		c.LogLevel,
	)
}
