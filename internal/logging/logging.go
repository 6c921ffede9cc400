package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logDirMode = 0o700

type Options struct {
	Debug bool
	Path  string
}

// New returns a file-only diagnostic logger. Without Debug it returns a no-op
// logger: diagnostics never reach the terminal the user is chatting in.
func New(opts Options) (*zap.Logger, error) {
	if !opts.Debug {
		return zap.NewNop(), nil
	}
	if opts.Path == "" {
		return nil, errors.New("log path is required in debug mode")
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), logDirMode); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(rotator),
		zap.DebugLevel,
	)

	return zap.New(core, zap.AddCaller()), nil
}

// OrNop lets components accept a nil logger.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
