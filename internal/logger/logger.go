// Package logger builds the zap logger of the command line.
package logger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON  = "json"
	FormatHuman = "human"
)

type Config struct {
	Debug  bool
	Format string
	// OutputPaths defaults to stderr.
	OutputPaths []string
}

// New returns a JSON production logger for FormatJSON, and a colored
// development logger otherwise. Development loggers log at debug level only
// when Debug is set.
func New(cfg Config) (*zap.Logger, error) {
	var zapConfig zap.Config

	switch cfg.Format {
	case FormatJSON:
		zapConfig = zap.NewProductionConfig()
	case FormatHuman, "":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, errors.Errorf("unknown log format %q", cfg.Format)
	}

	zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if cfg.Debug {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	if len(cfg.OutputPaths) > 0 {
		zapConfig.OutputPaths = cfg.OutputPaths
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, errors.Wrap(err, "unable to build logger")
	}

	return logger, nil
}
