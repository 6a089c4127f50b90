package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all server configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig holds server-specific settings
type ServerConfig struct {
	Address     string `yaml:"address"`
	AllowOrigin string `yaml:"allow_origin"`
}

// GameConfig holds game session settings
type GameConfig struct {
	ClockSeconds int `yaml:"clock_seconds"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":3000"
	}
	if cfg.Server.AllowOrigin == "" {
		cfg.Server.AllowOrigin = "http://localhost:5173"
	}
	if cfg.Game.ClockSeconds == 0 {
		cfg.Game.ClockSeconds = 600
	}
}
