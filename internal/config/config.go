package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is an immutable snapshot of the service configuration.
// Load builds a fresh snapshot each time; a reload never mutates a
// snapshot already handed out.
type Config struct {
	Log         LogConfig          `mapstructure:"log"`
	Rewards     map[string]float64 `mapstructure:"rewards"`
	Multipliers MultiplierConfig   `mapstructure:"multipliers"`
	VeinMining  VeinMiningConfig   `mapstructure:"vein-mining"`
	Statistics  StatisticsConfig   `mapstructure:"statistics"`
	Storage     StorageConfig      `mapstructure:"storage"`
	Server      ServerConfig       `mapstructure:"server"`

	MinimumPayout float64 `mapstructure:"minimum-payout" validate:"gte=0"`
}

// LogConfig controls the slog setup
type LogConfig struct {
	Level       string `mapstructure:"level" validate:"oneof=debug info warn warning error"`
	Format      string `mapstructure:"format" validate:"oneof=json text"`
	Environment string `mapstructure:"environment"`
}

// MultiplierConfig controls the multiplier stacking engine
type MultiplierConfig struct {
	Enabled   bool    `mapstructure:"enabled"`
	Base      float64 `mapstructure:"base" validate:"gt=0"`
	StackType string  `mapstructure:"stack-type" validate:"oneof=add multiply"`

	Permission PermissionMultiplierConfig `mapstructure:"permission"`
	Temporary  TemporaryMultiplierConfig  `mapstructure:"temporary"`
	World      WorldMultiplierConfig      `mapstructure:"world"`
}

// PermissionMultiplierConfig enables permission-tier multipliers
type PermissionMultiplierConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// TemporaryMultiplierConfig enables temporary multiplier grants
type TemporaryMultiplierConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// WorldMultiplierConfig holds per-world multiplier overrides
type WorldMultiplierConfig struct {
	Enabled bool               `mapstructure:"enabled"`
	Worlds  map[string]float64 `mapstructure:"worlds"`
}

// VeinMiningConfig controls burst detection and payout dampening.
// TimeoutTicks selects the logical-tick time source; when zero,
// TimeoutMS selects the wall-clock source.
type VeinMiningConfig struct {
	DetectionEnabled bool    `mapstructure:"detection-enabled"`
	EnableMultiplier bool    `mapstructure:"enable-multiplier"`
	Multiplier       float64 `mapstructure:"multiplier" validate:"gt=0,lte=1"`
	TimeoutTicks     int64   `mapstructure:"timeout-ticks" validate:"gte=0"`
	TimeoutMS        int64   `mapstructure:"timeout-ms" validate:"gte=0"`
}

// StatisticsConfig globally gates statistic recording
type StatisticsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// StorageConfig selects and parameterizes the persistence backend
type StorageConfig struct {
	UseDatabase bool           `mapstructure:"use-database"`
	DataDir     string         `mapstructure:"data-dir"`
	Database    DatabaseConfig `mapstructure:"database"`
}

// DatabaseConfig holds structured-backend connection parameters.
// Credentials are normally supplied through environment variables.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"gt=0,lte=65535"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxConns int    `mapstructure:"max-conns" validate:"gt=0"`
}

// ServerConfig holds the HTTP surface parameters
type ServerConfig struct {
	Port   int    `mapstructure:"port" validate:"gt=0,lte=65535"`
	APIKey string `mapstructure:"api-key"`
}

// Load reads the YAML config at path, applies environment overrides and
// defaults, validates ranges, and returns an immutable snapshot.
func Load(path string) (*Config, error) {
	v := viper.New()

	filename := filepath.Base(path)
	v.AddConfigPath(filepath.Dir(path))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	setDefaults(v)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadConfigFailed, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeConfigFailed, err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgValidateConfigFailed, err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.environment", DefaultEnvironment)

	v.SetDefault("multipliers.enabled", true)
	v.SetDefault("multipliers.base", DefaultBaseMultiplier)
	v.SetDefault("multipliers.stack-type", StackTypeAdd)
	v.SetDefault("multipliers.permission.enabled", true)
	v.SetDefault("multipliers.temporary.enabled", true)
	v.SetDefault("multipliers.world.enabled", true)

	v.SetDefault("vein-mining.detection-enabled", true)
	v.SetDefault("vein-mining.enable-multiplier", true)
	v.SetDefault("vein-mining.multiplier", DefaultVeinMultiplier)
	v.SetDefault("vein-mining.timeout-ticks", DefaultVeinTimeoutTicks)
	v.SetDefault("vein-mining.timeout-ms", 0)

	v.SetDefault("minimum-payout", DefaultMinimumPayout)
	v.SetDefault("statistics.enabled", true)

	v.SetDefault("storage.use-database", false)
	v.SetDefault("storage.data-dir", DefaultDataDir)
	v.SetDefault("storage.database.host", "localhost")
	v.SetDefault("storage.database.port", DefaultDatabasePort)
	v.SetDefault("storage.database.name", DefaultDatabaseName)
	v.SetDefault("storage.database.user", "postgres")
	v.SetDefault("storage.database.password", "postgres")
	v.SetDefault("storage.database.sslmode", "disable")
	v.SetDefault("storage.database.max-conns", DefaultMaxConns)

	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.api-key", "")
}

func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("log.level", "OREVAULT_LOG_LEVEL")
	_ = v.BindEnv("storage.database.host", "DB_HOST")
	_ = v.BindEnv("storage.database.port", "DB_PORT")
	_ = v.BindEnv("storage.database.name", "DB_NAME")
	_ = v.BindEnv("storage.database.user", "DB_USER")
	_ = v.BindEnv("storage.database.password", "DB_PASSWORD")
	_ = v.BindEnv("server.api-key", "API_KEY")
}

// ConnString returns the PostgreSQL connection string for the structured
// backend.
func (c *DatabaseConfig) ConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Name,
		c.SSLMode,
	)
}

// StackMultiply reports whether the multiply stacking mode is configured
func (c *MultiplierConfig) StackMultiply() bool {
	return strings.EqualFold(c.StackType, StackTypeMultiply)
}
