// Package config loads the settings of the grieks binaries from defaults,
// an optional YAML file, GRIEKS_* environment variables and command flags.
package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. GRIEKS_SERVER_ADDR.
const EnvPrefix = "GRIEKS"

var (
	ErrInvalidAddr      = errors.New("invalid listen address")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidRateLimit = errors.New("invalid rate limit")
)

// Settings is the complete configuration.
type Settings struct {
	Server ServerSettings `mapstructure:"server" yaml:"server"`
	Log    LogSettings    `mapstructure:"log" yaml:"log"`
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	Addr            string        `mapstructure:"addr" yaml:"addr"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	RateLimit       float64       `mapstructure:"rate_limit" yaml:"rate_limit"` // requests per second, 0 disables
	Burst           int           `mapstructure:"burst" yaml:"burst"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl" yaml:"cache_ttl"` // 0 disables the response cache
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// LogSettings configures the slog handler.
type LogSettings struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// setDefaults registers the default value of every key. Keys without a
// default are invisible to environment overrides.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.rate_limit", 20.0)
	v.SetDefault("server.burst", 40)
	v.SetDefault("server.cache_ttl", 10*time.Minute)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// New returns a viper instance with defaults and environment binding in place.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path into v and decodes the result.
func Load(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}
	return settings, nil
}

// Validate checks the settings for values the binaries cannot work with.
func (s *Settings) Validate() error {
	if _, _, err := net.SplitHostPort(s.Server.Addr); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidAddr, s.Server.Addr, err)
	}
	if s.Server.RateLimit < 0 || (s.Server.RateLimit > 0 && s.Server.Burst < 1) {
		return fmt.Errorf("%w: %v req/s with burst %d", ErrInvalidRateLimit, s.Server.RateLimit, s.Server.Burst)
	}
	switch strings.ToLower(s.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, s.Log.Level)
	}
	switch strings.ToLower(s.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, s.Log.Format)
	}
	return nil
}
