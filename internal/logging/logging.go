// Package logging builds the structured logger shared by the server
// and CLI. Per-connection context (the remote address) is added by the
// server through the logger's With method.
package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap.SugaredLogger for the given level and format.
// format is "console" (human-readable, for local/dev use) or "json"
// (for production log aggregation); level is one of
// debug|info|warn|error.
func New(level, format string) (*zap.SugaredLogger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console", "":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, errors.Errorf("invalid log format %q (want console or json)", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building zap logger")
	}
	return logger.Sugar(), nil
}
