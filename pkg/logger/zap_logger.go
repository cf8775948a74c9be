package logger

import (
	"fmt"
	"os"

	"quoteintake/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	_defaultMaxSize    = 10
	_defaultMaxBackups = 10
	_defaultMaxAge     = 28

	_envLocal = "local"
)

type ZapLogger struct {
	logger *zap.Logger
	level  zapcore.Level
	output zapcore.WriteSyncer

	maxSize    int
	maxBackups int
	maxAge     int
}

// NewZapLogger writes JSON to stdout and to a rotated file. When
// cfg.Logger.Filename is empty only stdout is used, and the local
// environment gets a console encoder instead of JSON.
func NewZapLogger(cfg *config.Config, opts ...Option) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	l := &ZapLogger{
		level:      level,
		maxSize:    _defaultMaxSize,
		maxBackups: _defaultMaxBackups,
		maxAge:     _defaultMaxAge,
	}
	if cfg.Logger.MaxSize > 0 {
		l.maxSize = cfg.Logger.MaxSize
	}
	if cfg.Logger.MaxBackups > 0 {
		l.maxBackups = cfg.Logger.MaxBackups
	}
	if cfg.Logger.MaxAge > 0 {
		l.maxAge = cfg.Logger.MaxAge
	}

	for _, opt := range opts {
		opt(l)
	}

	if err = l.validate(); err != nil {
		return nil, fmt.Errorf("logger.NewZapLogger: validation: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if cfg.Env == _envLocal && l.output == nil {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, l.sink(cfg.Logger.Filename), zap.NewAtomicLevelAt(l.level))

	l.logger = zap.New(core,
		zap.Fields(
			zap.String("service", cfg.App.Name),
			zap.String("env", cfg.Env),
		),
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	)

	return l, nil
}

func (l *ZapLogger) sink(filename string) zapcore.WriteSyncer {
	if l.output != nil {
		return l.output
	}

	stdout := zapcore.Lock(os.Stdout)
	if filename == "" {
		return stdout
	}

	return zapcore.NewMultiWriteSyncer(
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   filename,
			MaxSize:    l.maxSize,
			MaxBackups: l.maxBackups,
			MaxAge:     l.maxAge,
			Compress:   true,
		}),
		stdout,
	)
}

func (l *ZapLogger) Zap() *zap.Logger {
	return l.logger
}
