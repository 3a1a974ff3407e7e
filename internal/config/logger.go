package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Destination string `yaml:"destination,omitempty"`
}

// Prepare returns our standard logger. With no destination, info and debug
// go to stdout and errors to stderr; with a destination everything goes to
// that file (overwritten). console=false suppresses console output, for hosts
// that own the terminal.
func (conf *LoggingConfig) Prepare(console bool) (*zap.Logger, error) {
	var enabler zapcore.LevelEnabler
	switch conf.Level {
	case "debug":
		enabler = zapcore.DebugLevel
	case "normal":
		enabler = zapcore.InfoLevel
	default:
		return zap.NewNop(), nil
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil

	if len(conf.Destination) > 0 {
		f, err := os.OpenFile(conf.Destination, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, fmt.Errorf("unable to open log file: %w", err)
		}
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(f), enabler)
		return zap.New(core), nil
	}
	if !console {
		return zap.NewNop(), nil
	}

	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(ec)
	low := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return enabler.Enabled(lvl) && lvl < zapcore.ErrorLevel
	})
	high := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), low),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), high),
	)
	return zap.New(core), nil
}
