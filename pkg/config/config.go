package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/csxhair/pkg/cvar"
)

// Config represents the configuration of the share code HTTP adapter
type Config struct {
	Server   Server   `yaml:"server"`
	CORS     CORS     `yaml:"cors"`
	Logging  Logging  `yaml:"logging"`
	Metrics  Metrics  `yaml:"metrics"`
	Commands Commands `yaml:"commands"`
}

// Server contains listener configuration
type Server struct {
	Bind        string        `yaml:"bind"`
	Port        int           `yaml:"port"`
	ReadTimeout time.Duration `yaml:"read_timeout"`
}

// CORS contains cross-origin configuration
type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	MaxAge         int      `yaml:"max_age"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// Metrics contains Prometheus configuration
type Metrics struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// Commands contains console command rendering defaults
type Commands struct {
	DefaultVariant string `yaml:"default_variant"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: Server{
			Bind:        "127.0.0.1",
			Port:        9200,
			ReadTimeout: 5 * time.Second,
		},
		CORS: CORS{
			AllowedOrigins: []string{"*"},
			MaxAge:         300,
		},
		Logging: Logging{
			Level: "info",
		},
		Metrics: Metrics{
			Enabled:   true,
			Namespace: "csxhair",
		},
		Commands: Commands{
			DefaultVariant: string(cvar.VariantCS2),
		},
	}
}

// Parse reads YAML on top of the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Marshal renders the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate checks that every value is usable
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: server.port %d out of range", c.Server.Port)
	}
	if c.Server.ReadTimeout < 0 {
		return fmt.Errorf("invalid config: server.read_timeout must not be negative")
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Variant(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Bind, c.Server.Port)
}

// LogLevel parses logging.level
func (c *Config) LogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logging.level: %w", err)
	}
	return level, nil
}

// Variant parses commands.default_variant
func (c *Config) Variant() (cvar.Variant, error) {
	v, err := cvar.ParseVariant(c.Commands.DefaultVariant)
	if err != nil {
		return "", fmt.Errorf("commands.default_variant: %w", err)
	}
	return v, nil
}
