package logger

// Log level constants accepted by Config.Level.
const (
	// Debug shows every message, including per-attempt HTTP pipeline events.
	Debug = "debug"

	// Info shows info, warning and error messages.
	Info = "info"

	// Warning shows warning and error messages.
	Warning = "warning"

	// Error shows error messages only.
	Error = "error"
)

// Encodings accepted by Config.Encoding.
const (
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// Config defines the configuration structure for the logger.
type Config struct {
	// Level determines the minimum log level that will be output.
	// Valid values are "debug", "info", "warning" and "error"; anything else
	// falls back to "info".
	//
	// This setting can be configured via:
	//   - YAML configuration with the "level" key
	//   - Environment variable AZREST_LOGGER_LEVEL
	Level string `yaml:"level" split_words:"true" validate:"omitempty,oneof=debug info warning error"`

	// EnableTracing adds "trace_id" and "span_id" fields to entries logged
	// through the *WithContext methods when the context carries a recording
	// span.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "enable_tracing" key
	//   - Environment variable LOGGER_ENABLE_TRACING
	EnableTracing bool `yaml:"enable_tracing" split_words:"true"`

	// ServiceName populates the "service" field of every entry.
	ServiceName string `yaml:"service_name" split_words:"true"`

	// Encoding selects "json" (default) or "console" output.
	Encoding string `yaml:"encoding" split_words:"true" validate:"omitempty,oneof=json console"`

	// OutputPaths are zap sink URLs or file paths. Defaults to stderr.
	OutputPaths []string `yaml:"output_paths" split_words:"true"`

	// AzureSDKEvents forwards azcore pipeline log events (Request, Response,
	// Retry, ...) to this logger at debug level. An empty list disables the
	// bridge; "all" forwards every event.
	AzureSDKEvents []string `yaml:"azure_sdk_events" split_words:"true"`

	// CallerSkip controls the number of stack frames to skip when reporting
	// the caller. If not set or set to 0, defaults to 1.
	CallerSkip int `yaml:"caller_skip" split_words:"true"`
}
