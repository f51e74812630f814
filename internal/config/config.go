// Package config loads c2f's settings from YAML (or TOML) with environment
// overrides.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Ask before writing a file
	AskConfirmation bool `json:"ask_confirmation" yaml:"ask_confirmation" toml:"ask_confirmation"`
	// Suppress informational output
	Quiet bool `json:"quiet" yaml:"quiet" toml:"quiet"`
	// Classify text and pick up clipboard images
	DetectType bool `json:"detect_type" yaml:"detect_type" toml:"detect_type"`

	Log     LogConfig     `json:"log" yaml:"log" toml:"log"`
	History HistoryConfig `json:"history" yaml:"history" toml:"history"`
}

// LogConfig holds logging-related configuration
type LogConfig struct {
	Level string `json:"level" yaml:"level" toml:"level"` // debug, info, warn, error
}

// HistoryConfig controls the record of past saves
type HistoryConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
	DBPath    string `json:"db_path" yaml:"db_path" toml:"db_path"`
	KeepItems int    `json:"keep_items" yaml:"keep_items" toml:"keep_items"`
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	dbPath := "history.db"
	if paths, err := GetPaths(); err == nil {
		dbPath = paths.DBFile
	}

	return &Config{
		AskConfirmation: false,
		Quiet:           false,
		DetectType:      true,
		Log: LogConfig{
			Level: "warn",
		},
		History: HistoryConfig{
			Enabled:   true,
			DBPath:    dbPath,
			KeepItems: 500,
		},
	}
}

// Load reads the configuration at configPath, or the default location when
// configPath is empty. A missing file is created with defaults. Keys absent
// from the file keep their default values.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		paths, err := GetPaths()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
		configPath = paths.ConfigFile
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := cfg.Save(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	} else if err := unmarshal(configPath, data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	overrideFromEnv(cfg)
	return cfg, nil
}

// Save writes the configuration, in the format implied by the extension
func (c *Config) Save(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := marshal(configPath, c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func unmarshal(path string, data []byte, cfg *Config) error {
	if isTOML(path) {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func marshal(path string, cfg *Config) ([]byte, error) {
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return yaml.Marshal(cfg)
}

// overrideFromEnv overrides configuration values from environment variables.
// Values that do not parse are ignored.
func overrideFromEnv(config *Config) {
	overrideBool("C2F_ASK_CONFIRMATION", &config.AskConfirmation)
	overrideBool("C2F_QUIET", &config.Quiet)
	overrideBool("C2F_DETECT_TYPE", &config.DetectType)
	overrideBool("C2F_HISTORY", &config.History.Enabled)

	if val := os.Getenv("C2F_LOG_LEVEL"); val != "" {
		config.Log.Level = val
	}
}

func overrideBool(key string, dst *bool) {
	val := os.Getenv(key)
	if val == "" {
		return
	}
	if b, err := strconv.ParseBool(val); err == nil {
		*dst = b
	}
}
