package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the service configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	ORS      ORSConfig      `mapstructure:"ors"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // "sqlite" or "postgres"
	URL    string `mapstructure:"url"`
}

type ORSConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Profile string `mapstructure:"profile"`
	Country string `mapstructure:"country"` // geocoding boundary, empty for none
}

// RedisConfig enables the route cache when Addr is set.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from defaults, an optional config file and the
// environment. Environment keys are upper-cased with "." replaced by "_",
// e.g. ORS_API_KEY or DATABASE_URL.
func Load(configPath string) (*Config, error) {
	cfg, err := read(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDatabase resolves only the database settings, from the same sources as
// Load. Tools that never call ORS use it so they need no API key.
func LoadDatabase(configPath string) (*DatabaseConfig, error) {
	cfg, err := read(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}

	return &cfg.Database, nil
}

func read(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("load config: read %q: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("load config: unmarshal: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.write_timeout", 120*time.Second)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.url", "data/app.db")

	v.SetDefault("ors.api_key", "")
	v.SetDefault("ors.base_url", "https://api.openrouteservice.org")
	v.SetDefault("ors.profile", "driving-hgv")
	v.SetDefault("ors.country", "")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 24*time.Hour)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.ORS.APIKey) == "" {
		return fmt.Errorf("load config: ors.api_key (ORS_API_KEY) is required")
	}
	return c.Database.Validate()
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("load config: database.driver must be sqlite or postgres, got %q", d.Driver)
	}
	if strings.TrimSpace(d.URL) == "" {
		return fmt.Errorf("load config: database.url (DATABASE_URL) is required")
	}
	return nil
}
