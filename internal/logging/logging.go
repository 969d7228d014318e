// Package logging builds the zap logger writing dotty.log.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/byterings/dotty/internal/config"
)

// Options selects where and how much is logged
type Options struct {
	Path        string
	Level       config.LogLevel
	Development bool
}

// ZapLevel maps a configured level to zap. LogOff has no zap equivalent and reports false.
func ZapLevel(level config.LogLevel) (zapcore.Level, bool) {
	switch level {
	case config.LogError:
		return zapcore.ErrorLevel, true
	case config.LogWarn:
		return zapcore.WarnLevel, true
	case config.LogInfo:
		return zapcore.InfoLevel, true
	case config.LogDebug:
		return zapcore.DebugLevel, true
	default:
		return zapcore.InvalidLevel, false
	}
}

// New returns a logger writing to opts.Path and a function flushing and closing it.
// LogOff yields a no-op logger that never touches the file.
func New(opts Options) (*zap.Logger, func(), error) {
	if opts.Level == config.LogOff {
		return zap.NewNop(), func() {}, nil
	}
	level, ok := ZapLevel(opts.Level)
	if !ok {
		return nil, nil, fmt.Errorf("unknown log level '%s'", opts.Level)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	if opts.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	sink := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(sink),
		level,
	)

	zapOpts := []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}
	if opts.Development {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.Development())
	}
	logger := zap.New(core, zapOpts...)

	closer := func() {
		_ = logger.Sync()
		_ = sink.Close()
	}
	return logger, closer, nil
}
