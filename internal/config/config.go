// Package config loads the service configuration from YAML with environment
// overrides.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"inheritance-engine/internal/logging"
	"inheritance-engine/internal/model"
)

//go:embed default-config.yaml
var defaultConfigYAML []byte

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Log         LogConfig         `yaml:"log"`
	Calculation CalculationConfig `yaml:"calculation"`
}

type ServerConfig struct {
	Name               string        `yaml:"name"`
	Port               int           `yaml:"port"`
	ReadTimeout        time.Duration `yaml:"read_timeout"`
	WriteTimeout       time.Duration `yaml:"write_timeout"`
	MaxRequestBodySize int           `yaml:"max_request_body_size"`
}

type LogConfig struct {
	Environment string `yaml:"environment"`
	Level       string `yaml:"level"`
}

type CalculationConfig struct {
	DefaultRounding string `yaml:"default_rounding"`
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return ":" + strconv.Itoa(s.Port)
}

func (c CalculationConfig) Rounding() model.RoundingPolicy {
	return model.RoundingPolicy(c.DefaultRounding)
}

// LoadDefault parses the embedded default configuration.
func LoadDefault() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		return nil, fmt.Errorf("parse default config: %w", err)
	}
	return &cfg, nil
}

// Load reads the defaults, overlays the file at path when non-empty, then
// applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg, err := LoadDefault()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if port, ok := lookup("PORT"); ok && port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		c.Server.Port = p
	}
	if env, ok := lookup("APP_ENV"); ok && env != "" {
		c.Log.Environment = env
	}
	if level, ok := lookup("LOG_LEVEL"); ok {
		c.Log.Level = level
	}
	return nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		errs = append(errs, errors.New("server timeouts must not be negative"))
	}
	if c.Server.MaxRequestBodySize <= 0 {
		errs = append(errs, fmt.Errorf("server.max_request_body_size must be positive, got %d", c.Server.MaxRequestBodySize))
	}
	if !logging.Environment(c.Log.Environment).Valid() {
		errs = append(errs, fmt.Errorf("log.environment %q is not one of production, staging, development, local", c.Log.Environment))
	}
	if !c.Calculation.Rounding().Valid() {
		errs = append(errs, fmt.Errorf("calculation.default_rounding %q is not one of round, floor, ceil", c.Calculation.DefaultRounding))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
