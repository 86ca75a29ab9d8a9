package config

// Stacking mode values
const (
	// StackTypeAdd sums each source's bonus over neutral onto the base
	StackTypeAdd = "add"

	// StackTypeMultiply multiplies all sources together
	StackTypeMultiply = "multiply"
)

// Default values
const (
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultBaseMultiplier   = 1.0
	DefaultVeinMultiplier   = 0.5
	DefaultVeinTimeoutTicks = 15
	DefaultMinimumPayout    = 0.01
	DefaultDataDir          = "data"
	DefaultDatabasePort     = 5432
	DefaultDatabaseName     = "orevault"
	DefaultMaxConns         = 10
	DefaultServerPort       = 8080
)

// Error message constants
const (
	// ErrMsgReadConfigFailed is returned when the config file cannot be read
	ErrMsgReadConfigFailed = "failed to read config file"

	// ErrMsgDecodeConfigFailed is returned when the config cannot be decoded
	ErrMsgDecodeConfigFailed = "failed to decode config"

	// ErrMsgValidateConfigFailed is returned when validation rejects the config
	ErrMsgValidateConfigFailed = "invalid configuration"
)
