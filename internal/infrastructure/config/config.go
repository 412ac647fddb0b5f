package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// EnvPrefix is the prefix shared by every environment variable the service reads
const EnvPrefix = "SENTIMENT"

// Supported model backends
const (
	BackendMock    = "mock"
	BackendLexicon = "lexicon"
	BackendHub     = "hub"
)

// Config holds all configuration for the service
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	Model  ModelConfig  `mapstructure:"model"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Log    LogConfig    `mapstructure:"log"`
}

// AppConfig holds the metadata reported by the health endpoint
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	Endpoint    string `mapstructure:"endpoint"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// ModelConfig selects the classifier backend and where its artifact lives
type ModelConfig struct {
	Backend    string        `mapstructure:"backend"`
	HubURL     string        `mapstructure:"hub_url"`
	Repository string        `mapstructure:"repository"`
	Revision   string        `mapstructure:"revision"`
	Filename   string        `mapstructure:"filename"`
	Token      string        `mapstructure:"token"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// CacheConfig controls the optional prediction cache
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.App.Debug {
		cfg.Server.Mode = "debug"
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadEnvFile loads variables from a dotenv file without overriding ones
// already present in the environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := gotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// Validate checks for settings the service cannot start with
func (c *Config) Validate() error {
	switch c.Model.Backend {
	case BackendMock, BackendLexicon:
	case BackendHub:
		if c.Model.Repository == "" {
			return errors.New("model repository is required for the hub backend")
		}
		if c.Model.Filename == "" {
			return errors.New("model filename is required for the hub backend")
		}
	default:
		return fmt.Errorf("unknown model backend %q", c.Model.Backend)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}

	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return errors.New("cache ttl must be positive when the cache is enabled")
	}

	return nil
}

// Address returns the host:port the HTTP server binds to
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Address returns the host:port of the Redis server
func (r RedisConfig) Address() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "restaurant-sentiment")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.endpoint", "http://localhost:8080")

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	// Model defaults
	v.SetDefault("model.backend", BackendMock)
	v.SetDefault("model.hub_url", "https://huggingface.co")
	v.SetDefault("model.repository", "")
	v.SetDefault("model.revision", "main")
	v.SetDefault("model.filename", "model.json")
	v.SetDefault("model.token", "")
	v.SetDefault("model.timeout", 30*time.Second)

	// Cache defaults
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.ttl", time.Hour)

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
