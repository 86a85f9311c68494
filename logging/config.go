package logging

// Config defines the [logging] table of the p4mux config file.
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	// Can be overridden by the P4MUX_LOG_LEVEL environment variable.
	Level string `toml:"level" yaml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=warning,enum=error,enum=fatal,enum=panic"`

	// ReportCaller, if true, includes the file, line, and function name in the log output.
	ReportCaller bool `toml:"report_caller" yaml:"report_caller" json:"report_caller"`

	// File configures logging to a file.
	File FileSinkConfig `toml:"file" yaml:"file" json:"file"`

	// Format configures the appearance of the log output.
	Format FormatConfig `toml:"format" yaml:"format" json:"format"`
}

// FileSinkConfig configures the file logging sink.
type FileSinkConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled" json:"enabled"`
	// Path is the full path to the log file. Defaults to the p4mux state
	// directory when empty.
	Path string `toml:"path,omitempty" yaml:"path,omitempty" json:"path,omitempty"`
}

// FormatConfig controls the log output format.
type FormatConfig struct {
	// Preset can be "default" (rich text), "simple" (minimal text), or "json".
	Preset string `toml:"preset,omitempty" yaml:"preset,omitempty" json:"preset,omitempty" jsonschema:"enum=default,enum=simple,enum=json"`
	// DisableTimestamp disables the timestamp from the "default" and "simple" formats.
	DisableTimestamp bool `toml:"disable_timestamp" yaml:"disable_timestamp" json:"disable_timestamp"`
	// DisableComponent disables the component name from the "default" and "simple" formats.
	DisableComponent bool `toml:"disable_component" yaml:"disable_component" json:"disable_component"`
	// StructuredToStderr controls when structured logs are sent to stderr.
	// Can be "auto" (default), "always", or "never".
	StructuredToStderr string `toml:"structured_to_stderr,omitempty" yaml:"structured_to_stderr,omitempty" json:"structured_to_stderr,omitempty" jsonschema:"enum=auto,enum=always,enum=never"`
}

// DefaultConfig returns the logging defaults. p4mux runs on a timer inside
// tmux, so only warnings and errors are kept unless asked otherwise.
func DefaultConfig() Config {
	return Config{
		Level: "warn",
		Format: FormatConfig{
			Preset:             "default",
			StructuredToStderr: "auto",
		},
	}
}
