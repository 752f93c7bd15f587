package blossomlog

import "go.uber.org/zap"

// zapLogger adapts a *zap.SugaredLogger to the Logger interface.
type zapLogger struct {
	s *zap.SugaredLogger
}

// FromZap wraps z so it can be passed to matching.WithLogger /
// cardinality.WithLogger. A nil z yields the no-op Logger instead of
// panicking on first use.
func FromZap(z *zap.Logger) Logger {
	if z == nil {
		return Nop()
	}

	return zapLogger{s: z.Sugar()}
}

func (l zapLogger) Debugf(format string, args ...interface{}) { l.s.Debugf(format, args...) }
func (l zapLogger) Infof(format string, args ...interface{})  { l.s.Infof(format, args...) }
func (l zapLogger) Warnf(format string, args ...interface{})  { l.s.Warnf(format, args...) }
