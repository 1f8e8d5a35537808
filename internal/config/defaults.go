package config

// Output format names.
const (
	FormatTable   = "table"
	FormatPlain   = "plain"
	FormatOrdered = "ordered"
)

const (
	defaultOutputFormat = FormatTable
	defaultTrackOrder   = true
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Format:     defaultOutputFormat,
			TrackOrder: defaultTrackOrder,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
