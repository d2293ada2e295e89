package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where and how verbosely to log.
type Options struct {
	Env     string    // "production" selects JSON output
	Verbose bool      // log at debug level to Writer
	Writer  io.Writer // destination for verbose logs, usually stderr
	File    string    // optional log file, always written when set
}

// New builds a zap logger. With neither Verbose nor File set it returns a
// no-op logger. The returned close function releases the log file.
func New(opts Options) (*zap.Logger, func() error, error) {
	noop := func() error { return nil }
	if !opts.Verbose && strings.TrimSpace(opts.File) == "" {
		return zap.NewNop(), noop, nil
	}

	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	encoder := newEncoder(opts.Env)

	var cores []zapcore.Core
	if opts.Verbose && opts.Writer != nil {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(opts.Writer), level))
	}

	closer := noop
	if path := strings.TrimSpace(opts.File); path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("create log directory: %w", err)
			}
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(file), level))
		closer = file.Close
	}

	return zap.New(zapcore.NewTee(cores...)), closer, nil
}

func newEncoder(env string) zapcore.Encoder {
	if strings.EqualFold(env, "production") {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
}
