package core

// LogLevel orders logging severities; a logger emits records at or above
// its configured minimum
type LogLevel int

// Severity levels, lowest first
const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// ParseLogLevel maps a configured level name to a LogLevel, defaulting to
// info for unknown names
func ParseLogLevel(name string) LogLevel {
	switch name {
	case "debug":
		return LogLevelDebug
	case "warn":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger is the engine's structured logging port. Every record pairs a
// message with a flat field map (account ids, amounts, streaks, ranks) so
// reward operations stay traceable per account; adapters pick the encoding.
type Logger interface {
	// Debug logs diagnostic detail below operational interest
	Debug(message string, fields map[string]any)
	// Info logs one record per completed operation
	Info(message string, fields map[string]any)
	// Warn logs rejected or degraded operations that need no intervention
	Warn(message string, fields map[string]any)
	// Error logs failures
	Error(message string, fields map[string]any)
	// Flush writes out any buffered records; called once at shutdown
	Flush() error
}
