// Package logging builds the zap loggers used by the worker and the CLI.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a logger writing to stdout with the given level and encoding
// ("json" or "console").
func New(level, encoding string) (*zap.Logger, error) {
	return Config(level, encoding).Build()
}

// Config returns the zap configuration New builds from.
func Config(level, encoding string) zap.Config {
	encoderConfig := zap.NewProductionEncoderConfig()
	if encoding != "console" {
		encoding = "json"
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	return zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
}
