// Package zapsink reports NaN diagnostics through a zap.Logger.
package zapsink

import (
	"fmt"

	nan "github.com/shabbyrobe/go-nan"
	"go.uber.org/zap"
)

// Sink implements nan.Sink. Each diagnostic becomes one Warn entry whose
// message is the diagnostic text, with the details repeated as fields.
type Sink struct {
	logger *zap.Logger
}

var _ nan.Sink = (*Sink)(nil)

// New returns a Sink writing to logger. A nil logger discards everything.
func New(logger *zap.Logger) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{logger: logger}
}

func (s *Sink) Diagnose(d nan.Diagnostic) {
	fields := []zap.Field{
		zap.String("caller", d.Caller),
		zap.Stringer("kind", d.Kind),
	}
	if d.Kind == nan.InvalidPayload {
		fields = append(fields, zap.String("payload", fmt.Sprintf("%#x", d.Payload)))
	} else {
		fields = append(fields, zap.String("bits", fmt.Sprintf("%#016x", nan.BitsOf(d.Value))))
	}
	s.logger.Warn(d.String(), fields...)
}
