package vis

// Logger is the small structured-logging surface the core depends on. The
// core never imports zap or any other concrete logging library directly —
// internal/logging supplies a zap-backed implementation, the CLI installs
// it, and library callers who don't care get NopLogger by default.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugw(string, ...interface{}) {}
func (nopLogger) Infow(string, ...interface{})  {}
func (nopLogger) Errorw(string, ...interface{}) {}

// NopLogger is a Logger that discards everything.
var NopLogger Logger = nopLogger{}

// Stats is a point-in-time snapshot of Editor bookkeeping, reported to a
// MetricsRecorder after every mutation.
type Stats struct {
	Pieces            int
	AppendBufferBytes int64
	UndoDepth         int
	RedoDepth         int
}

// MetricsRecorder receives Stats after each mutating operation.
// internal/metrics supplies a Prometheus-backed implementation; the
// default is a no-op so metrics stay entirely optional.
type MetricsRecorder interface {
	Observe(Stats)
}

type nopMetrics struct{}

func (nopMetrics) Observe(Stats) {}

// NopMetrics is a MetricsRecorder that discards everything.
var NopMetrics MetricsRecorder = nopMetrics{}
