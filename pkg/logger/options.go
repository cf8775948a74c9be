package logger

import (
	"errors"
	"io"

	"go.uber.org/zap/zapcore"
)

type Option func(*ZapLogger)

// Output replaces the file and stdout sinks with w.
func Output(w io.Writer) Option {
	return func(l *ZapLogger) {
		l.output = zapcore.AddSync(w)
	}
}

func SetLevel(level zapcore.Level) Option {
	return func(l *ZapLogger) {
		l.level = level
	}
}

func (l *ZapLogger) validate() error {
	if l.maxSize <= 0 {
		return errors.New("invalid maxSize: must be > 0")
	}

	if l.maxBackups < 0 {
		return errors.New("invalid maxBackups: must be >= 0")
	}

	if l.maxAge <= 0 {
		return errors.New("invalid maxAge: must be > 0")
	}
	return nil
}
