// Package config loads the service configuration from configs/config.yml
// with DASHBOARD_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "DASHBOARD"

// Token modes.
const (
	TokenModeStatic = "static"
	TokenModeJWT    = "jwt"
)

type Config struct {
	Port            string        `mapstructure:"port"`
	LogLevel        string        `mapstructure:"log_level"`
	PersistInterval time.Duration `mapstructure:"persist_interval"`

	DB      DBConfig      `mapstructure:"db"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Server  ServerConfig  `mapstructure:"server"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

// AuthConfig holds the single credential pair and token settings.
type AuthConfig struct {
	Username    string        `mapstructure:"username"`
	Password    string        `mapstructure:"password"`
	TokenMode   string        `mapstructure:"token_mode"`
	StaticToken string        `mapstructure:"static_token"`
	SigningKey  string        `mapstructure:"signing_key"`
	TokenTTL    time.Duration `mapstructure:"token_ttl"`

	// Per-IP login throttle; LoginBurst 0 turns it off.
	LoginRatePerSec float64 `mapstructure:"login_rate_per_sec"`
	LoginBurst      int     `mapstructure:"login_burst"`
}

type CatalogConfig struct {
	Size    int           `mapstructure:"size"`
	Seed    int64         `mapstructure:"seed"`
	Latency time.Duration `mapstructure:"latency"`
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

var defaults = map[string]any{
	"port":             "8080",
	"log_level":        "info",
	"persist_interval": "1s",

	"db.path": "app.db",

	"auth.username":           "shrisant",
	"auth.password":           "shrisantp",
	"auth.token_mode":         TokenModeStatic,
	"auth.static_token":       "mocked_token",
	"auth.signing_key":        "",
	"auth.token_ttl":          "0s",
	"auth.login_rate_per_sec": 1.0,
	"auth.login_burst":        0,

	"catalog.size":    100,
	"catalog.seed":    0,
	"catalog.latency": "500ms",

	"server.read_header_timeout": "10s",
	"server.write_timeout":       "10s",
	"server.idle_timeout":        "60s",
	"server.shutdown_timeout":    "10s",
}

// Load reads configName (without extension) from the given paths. A missing
// config file is not an error: defaults and environment still apply.
func Load(configName string, paths ...string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetConfigName(configName)
	v.SetConfigType("yml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail late at runtime.
func (c *Config) Validate() error {
	switch c.Auth.TokenMode {
	case TokenModeStatic:
		if c.Auth.StaticToken == "" {
			return errors.New("auth.static_token must be set in static mode")
		}
	case TokenModeJWT:
		if c.Auth.SigningKey == "" {
			return errors.New("auth.signing_key must be set in jwt mode")
		}
	default:
		return fmt.Errorf("unknown auth.token_mode %q", c.Auth.TokenMode)
	}
	if c.Auth.Username == "" || c.Auth.Password == "" {
		return errors.New("auth.username and auth.password must be set")
	}
	if c.Auth.LoginBurst < 0 {
		return fmt.Errorf("auth.login_burst must be >= 0, got %d", c.Auth.LoginBurst)
	}
	if c.Auth.LoginBurst > 0 && c.Auth.LoginRatePerSec <= 0 {
		return fmt.Errorf("auth.login_rate_per_sec must be positive when the throttle is on, got %g", c.Auth.LoginRatePerSec)
	}
	if c.Catalog.Size < 0 {
		return fmt.Errorf("catalog.size must be >= 0, got %d", c.Catalog.Size)
	}
	if c.PersistInterval <= 0 {
		return fmt.Errorf("persist_interval must be positive, got %s", c.PersistInterval)
	}
	return nil
}
