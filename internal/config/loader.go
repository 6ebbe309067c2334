package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvFPS         = "TETRIX_FPS"
	EnvSSHAddr     = "TETRIX_SSH_ADDR"
	EnvHostKey     = "TETRIX_HOST_KEY"
	EnvIdleTimeout = "TETRIX_IDLE_TIMEOUT"
	EnvLogLevel    = "TETRIX_LOG_LEVEL"
)

// Load loads the tetrix configuration.
// Search order: customPath -> ~/.tetrix/configs/tetrix.yaml -> ./configs/tetrix.yaml -> embedded default.
// Values from a .env file and the environment are applied on top, then the
// result is validated.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	// A missing .env is normal.
	_ = godotenv.Load()
	ApplyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tetrix.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "tetrix.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultTetrixYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults, so a file only needs the
// keys it changes.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any TETRIX_* variables that are set.
func ApplyEnv(cfg *Config) {
	cfg.Display.FPS = GetEnvAsInt(EnvFPS, cfg.Display.FPS)
	cfg.Server.Address = GetEnv(EnvSSHAddr, cfg.Server.Address)
	cfg.Server.HostKey = GetEnv(EnvHostKey, cfg.Server.HostKey)
	cfg.Server.IdleTimeout = GetEnvAsDuration(EnvIdleTimeout, cfg.Server.IdleTimeout)
	cfg.Log.Level = GetEnv(EnvLogLevel, cfg.Log.Level)
}

// GetEnv returns the variable's value or defaultValue when it is unset or empty.
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvAsInt is GetEnv for integers. Unparsable values keep the default.
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn("invalid integer in environment, using default", "key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsDuration is GetEnv for durations such as "90s".
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Warn("invalid duration in environment, using default", "key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}
	return value
}

// UserDir returns ~/.tetrix, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetrix")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}
