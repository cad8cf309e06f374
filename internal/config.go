package internal

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"shop-events/pkg/executor"
)

const AppVersion = "0.1.0"

type Config struct {
	Version string `yaml:"-"`

	LogLevel   string `yaml:"log_level"`
	PrettyLogs bool   `yaml:"pretty_logs"`

	Script []executor.Step `yaml:"script"`
}

func DefaultConfig() Config {
	return Config{
		Version:    AppVersion,
		LogLevel:   zerolog.LevelInfoValue,
		PrettyLogs: true,
	}
}

// LoadConfig reads the YAML file at configPath over the values already in cfg.
func LoadConfig(configPath string, cfg *Config) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return err
	}

	cfg.Version = AppVersion
	_, err = cfg.Level()
	return err
}

// Level parses LogLevel. An empty level means info.
func (cfg Config) Level() (zerolog.Level, error) {
	if cfg.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Steps returns the configured script, or the default one when none is set.
func (cfg Config) Steps() []executor.Step {
	if len(cfg.Script) == 0 {
		return executor.DefaultScript()
	}
	return cfg.Script
}
