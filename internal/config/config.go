// Package config provides configuration for the minifigdb server.
//
// Configuration is a small YAML file plus environment overrides: the file
// carries durable choices (database path, listen address), environment
// variables win over the file for deployment tweaks.
//
// Config file locations (priority order):
//  1. $MINIFIGDB_CONFIG
//  2. ./minifigdb.yaml
//  3. ~/.config/minifigdb/config.yaml
//  4. /etc/minifigdb/config.yaml
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the full server configuration.
type Config struct {
	ListenAddr string         `yaml:"listen_addr" env:"MINIFIGDB_ADDR"`
	Database   DatabaseConfig `yaml:"database"`
	SeedDemo   bool           `yaml:"seed_demo" env:"MINIFIGDB_SEED_DEMO"`
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path string `yaml:"path" env:"MINIFIGDB_DB"`
}

// Load finds and loads the config file, or returns defaults if none is
// found. Environment overrides apply in both cases.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		cfg := DefaultConfig()
		if err := env.Parse(cfg); err != nil {
			return nil, "", fmt.Errorf("parse env: %w", err)
		}
		return cfg, "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path and applies environment
// overrides.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := env.Parse(&cfg); err != nil {
		return nil, path, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, path, nil
}

// Save writes config to the specified path.
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr: ":3000",
		Database:   DatabaseConfig{Path: "./minifigdb.db"},
	}
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":3000"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./minifigdb.db"
	}
}
