// Package logging builds the process logger from configuration.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LeJamon/goXRPLwallet/internal/config"
)

// New builds a logger writing to stderr so command output on stdout stays
// clean. debug forces the debug level regardless of cfg.
func New(cfg config.LogConfig, debug bool) (*zap.Logger, error) {
	return build(cfg, debug, []string{"stderr"})
}

func build(cfg config.LogConfig, debug bool, outputs []string) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		var err error
		level, err = zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil
	cc.OutputPaths = outputs
	cc.ErrorOutputPaths = []string{"stderr"}

	switch cfg.Format {
	case "", "console":
		cc.Encoding = "console"
		cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	case "json":
		cc.Encoding = "json"
	default:
		return nil, fmt.Errorf("log setting: unknown format %q", cfg.Format)
	}

	return cc.Build()
}
