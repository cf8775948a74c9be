package logger

import "go.uber.org/zap"

// NewNop returns a Logger that discards everything.
func NewNop() *Adapter {
	return &Adapter{zapLogger: &ZapLogger{logger: zap.NewNop()}}
}
