package blossomlog

// Logger is the structured-logging hook consumed by the matching and
// cardinality packages. Debugf carries substage-level tracing (stage
// number, blossom id, delta values); Infof marks stage/phase boundaries;
// Warnf marks recoverable oddities worth surfacing (e.g. a consistency
// check skipped because it was disabled).
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// nopLogger discards everything; it is the default so that running with no
// logger configured costs nothing and changes no behavior.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}

// Nop returns the shared no-op Logger.
func Nop() Logger { return nopLogger{} }
