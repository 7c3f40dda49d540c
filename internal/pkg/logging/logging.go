// Package logging builds the process zap logger.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects level, encoder and an optional rotating log file.
type Config struct {
	Level string `yaml:"level"`
	// Mode is "production" (JSON) or "development" (console).
	Mode string `yaml:"mode"`
	// File, when set, receives JSON logs rotated by size.
	File string `yaml:"file"`
}

// New builds a logger that writes to stderr, keeping stdout free for command output.
func New(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("logging: invalid level %q: %w", cfg.Level, err)
		}
	}

	var encoder zapcore.Encoder
	switch cfg.Mode {
	case "", "production":
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "development":
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		return nil, fmt.Errorf("logging: unknown mode %q", cfg.Mode)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)

	if cfg.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}
		core = zapcore.NewTee(
			core,
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(rotating),
				level,
			),
		)
	}

	return zap.New(core, zap.AddCaller()), nil
}
