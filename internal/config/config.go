// Package config resolves runtime settings from an optional YAML file
// and TIKK_* environment variables, env winning over file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

type LogConfig struct {
	Level  string `yaml:"level" env:"TIKK_LOG_LEVEL" env-default:"warn"`
	Format string `yaml:"format" env:"TIKK_LOG_FORMAT" env-default:"console"`
}

type Config struct {
	// DBPath is the SQLite file; empty means ~/.tikk/tikk.db.
	DBPath string    `yaml:"db_path" env:"TIKK_DB"`
	Log    LogConfig `yaml:"log"`
}

// Load reads the config file at path when it exists, then applies
// environment overrides. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
			return &cfg, cfg.resolveDBPath()
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return &cfg, cfg.resolveDBPath()
}

func (c *Config) resolveDBPath() error {
	if c.DBPath != "" {
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	c.DBPath = filepath.Join(home, ".tikk", "tikk.db")
	return nil
}
