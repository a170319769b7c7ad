package zapsink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pipelog/pipelog/core"
)

// Sink forwards records to a zap logger.
type Sink struct {
	l *zap.Logger
}

// New creates a sink over l.
func New(l *zap.Logger) *Sink {
	return &Sink{l: l}
}

// Accept logs r on the wrapped zap logger.
func (s *Sink) Accept(r core.Record) {
	ce := s.l.Check(level(r.Severity), r.Message)
	if ce == nil {
		return
	}
	ce.Time = r.Timestamp()
	ce.Write(
		zap.String("context", r.Context),
		zap.Int("severity", int(r.Severity)),
	)
}

func level(s core.Severity) zapcore.Level {
	switch {
	case s < core.Warning:
		return zapcore.InfoLevel
	case s < core.Error:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
