// Package logging builds the zap logger used by the routegraph CLI.
package logging

import (
	"errors"
	"fmt"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrBadVerbosity is returned for a negative verbosity.
var ErrBadVerbosity = errors.New("logging: verbosity must be >= 0")

// Options selects the level and the optional rotating file sink.
type Options struct {
	// Verbosity 0 is production JSON at info, 1 is development console at
	// info, 2 and up add debug.
	Verbosity int
	// File, when set, receives a JSON copy of every entry, rotated by size.
	File       string
	MaxSizeMB  int
	MaxBackups int
	// OutputPaths overrides the console sinks (default stderr).
	OutputPaths []string
}

// New builds a logger for opts. The returned cleanup flushes the logger and
// closes the file sink; it is safe to call more than once.
func New(opts Options) (*zap.Logger, func(), error) {
	cfg, err := zapConfig(opts.Verbosity)
	if err != nil {
		return nil, nil, err
	}
	if len(opts.OutputPaths) > 0 {
		cfg.OutputPaths = opts.OutputPaths
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("logging: build: %w", err)
	}
	if opts.File == "" {
		return logger, func() { _ = logger.Sync() }, nil
	}

	sink := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB, // megabytes
		MaxBackups: opts.MaxBackups,
	}
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(sink),
		cfg.Level,
	)
	logger = logger.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, fileCore)
	}))

	return logger, func() {
		_ = logger.Sync()
		_ = sink.Close()
	}, nil
}

// zapConfig maps a verbosity to a zap.Config.
func zapConfig(verbosity int) (zap.Config, error) {
	var cfg zap.Config
	switch {
	case verbosity < 0:
		return zap.Config{}, ErrBadVerbosity
	case verbosity == 0:
		cfg = zap.NewProductionConfig()
		cfg.Level.SetLevel(zap.InfoLevel)
	case verbosity == 1:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level.SetLevel(zap.InfoLevel)
	case verbosity == 2:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level.SetLevel(zap.DebugLevel)
	default: // 3+
		cfg = zap.NewDevelopmentConfig()
		cfg.Level.SetLevel(zap.DebugLevel)
		cfg.Development = true
	}

	return cfg, nil
}
