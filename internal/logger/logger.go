package logger

import (
	"io"
	"os"

	"survey-console/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Initialize sets up the global logger on stdout with the given configuration
func Initialize(loggerCfg config.LoggerConfig) error {
	log = New(loggerCfg, os.Stdout)
	return nil
}

// New builds a logger writing to w. Production uses JSON, anything else the console encoder.
// An unknown level falls back to info.
func New(loggerCfg config.LoggerConfig, w io.Writer) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	logLevel, err := zapcore.ParseLevel(loggerCfg.Level)
	if err != nil {
		logLevel = zapcore.InfoLevel
	}

	encoder := zapcore.NewConsoleEncoder(encoderConfig)
	if loggerCfg.Env == "production" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), logLevel)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).
		With(zap.String("service", "survey-console"))
}

// Get returns the global logger instance. Before Initialize it returns a no-op logger.
func Get() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// Sync flushes any buffered log entries
func Sync() error {
	if log == nil {
		return nil
	}
	return log.Sync()
}
