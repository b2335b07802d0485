package gmaps

// Logger is the logging interface consumed by the client. Retry attempts,
// rate-limit throttling, and HTTP traffic are reported through it; provide
// an adapter for your logging library of choice.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// NoopLogger discards all log output. It is the default when no Logger is
// configured.
type NoopLogger struct{}

// Debug implements Logger.
func (NoopLogger) Debug(msg string, fields map[string]interface{}) {}

// Info implements Logger.
func (NoopLogger) Info(msg string, fields map[string]interface{}) {}

// Warn implements Logger.
func (NoopLogger) Warn(msg string, fields map[string]interface{}) {}

// Error implements Logger.
func (NoopLogger) Error(msg string, fields map[string]interface{}) {}
