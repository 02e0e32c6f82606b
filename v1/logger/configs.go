package logger

// Level enumerates the supported logging levels.
type Level int

const (
	// Debug enables all log output, including per-record decode details.
	Debug Level = iota

	// Info enables informational output and above. This is the default.
	Info

	// Warning enables warnings and errors only.
	Warning

	// Error enables error output only.
	Error
)

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level that will be logged
	// Default: Info
	Level Level

	// ServiceName is attached to every log entry as the "service" field
	// Default: "kafscope"
	ServiceName string

	// CaptureSize is the maximum number of log entries buffered in memory
	// for display in the UI log view. Older entries are dropped as newer
	// ones arrive.
	// Default: 256
	// Set to -1 to disable capturing entirely.
	CaptureSize int
}

// Default configuration values for the logger.
const (
	DefaultServiceName = "kafscope"
	DefaultCaptureSize = 256
)
