package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/marcus/due/internal/models"
)

const configFile = ".due/config.json"
const lockFile = ".due/config.json.lock"

// Environment overrides
const (
	EnvLogLevel  = "DUE_LOG_LEVEL"
	EnvLogFormat = "DUE_LOG_FORMAT"
)

// Config keys accepted by Get and Set
const (
	KeyEndOfDay        = "end_of_day"
	KeyNaturalFallback = "natural_fallback"
	KeyLogLevel        = "log_level"
	KeyLogFormat       = "log_format"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Load reads the config from disk
func Load(baseDir string) (*models.Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Config{}, nil
		}
		return nil, err
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	return &cfg, nil
}

// Save writes the config to disk using atomic write (temp file + rename)
func Save(baseDir string, cfg *models.Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	// Atomic write: temp file in same dir, then rename
	tmp, err := os.CreateTemp(dir, "config-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, configPath)
}

// withConfigLock serializes access to config.json with an OS file lock
func withConfigLock(baseDir string, fn func() error) error {
	lockPath := filepath.Join(baseDir, lockFile)

	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := lockFileExclusive(f); err != nil {
		return err
	}
	defer unlockFile(f)

	return fn()
}

// ApplyEnv overrides logging settings from DUE_LOG_LEVEL and DUE_LOG_FORMAT.
func ApplyEnv(cfg *models.Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
}

// Keys returns the config keys in sorted order
func Keys() []string {
	keys := []string{KeyEndOfDay, KeyNaturalFallback, KeyLogLevel, KeyLogFormat}
	sort.Strings(keys)
	return keys
}

// Get returns the string form of a single config value
func Get(cfg *models.Config, key string) (string, error) {
	switch key {
	case KeyEndOfDay:
		return strconv.FormatBool(cfg.EndOfDay), nil
	case KeyNaturalFallback:
		return strconv.FormatBool(cfg.NaturalFallback), nil
	case KeyLogLevel:
		return cfg.LogLevel, nil
	case KeyLogFormat:
		return cfg.LogFormat, nil
	}
	return "", fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys(), ", "))
}

// Set validates value and persists it under key
func Set(baseDir, key, value string) error {
	return withConfigLock(baseDir, func() error {
		cfg, err := Load(baseDir)
		if err != nil {
			return err
		}
		if err := apply(cfg, key, value); err != nil {
			return err
		}
		return Save(baseDir, cfg)
	})
}

func apply(cfg *models.Config, key, value string) error {
	switch key {
	case KeyEndOfDay, KeyNaturalFallback:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false, got %q", key, value)
		}
		if key == KeyEndOfDay {
			cfg.EndOfDay = b
		} else {
			cfg.NaturalFallback = b
		}
	case KeyLogLevel:
		level := strings.ToLower(value)
		if !contains(validLogLevels, level) {
			return fmt.Errorf("log_level must be one of %s, got %q", strings.Join(validLogLevels, ", "), value)
		}
		cfg.LogLevel = level
	case KeyLogFormat:
		format := strings.ToLower(value)
		if format != models.LogFormatText && format != models.LogFormatJSON {
			return fmt.Errorf("log_format must be text or json, got %q", value)
		}
		cfg.LogFormat = format
	default:
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
