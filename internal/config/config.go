package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

// Config holds the SmartCart runtime settings.
type Config struct {
	LogDir      string
	LogLevel    string
	Sound       bool
	MinWeight   decimal.Decimal // pounds
	MaxWeight   decimal.Decimal // pounds
	SettleDelay time.Duration
}

const (
	defaultConfigPath  = "~/.config/smartcart/config.toml"
	defaultLogDir      = "~/.local/share/smartcart/logs"
	defaultLogLevel    = "info"
	defaultSettleDelay = 500 * time.Millisecond
)

var (
	defaultMinWeight = decimal.NewFromInt(1)
	defaultMaxWeight = decimal.NewFromInt(10)
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogDir:      mustExpand(defaultLogDir),
		LogLevel:    defaultLogLevel,
		Sound:       true,
		MinWeight:   defaultMinWeight,
		MaxWeight:   defaultMaxWeight,
		SettleDelay: defaultSettleDelay,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogDir        string   `toml:"log_dir"`
		LogLevel      string   `toml:"log_level"`
		Sound         *bool    `toml:"sound"`
		MinWeight     *float64 `toml:"min_weight"`
		MaxWeight     *float64 `toml:"max_weight"`
		SettleDelayMS *int     `toml:"settle_delay_ms"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}
	if lvl := strings.TrimSpace(raw.LogLevel); lvl != "" {
		cfg.LogLevel = strings.ToLower(lvl)
	}
	if raw.Sound != nil {
		cfg.Sound = *raw.Sound
	}
	if raw.SettleDelayMS != nil && *raw.SettleDelayMS >= 0 {
		cfg.SettleDelay = time.Duration(*raw.SettleDelayMS) * time.Millisecond
	}

	minW, maxW := cfg.MinWeight, cfg.MaxWeight
	if raw.MinWeight != nil {
		minW = decimal.NewFromFloat(*raw.MinWeight)
	}
	if raw.MaxWeight != nil {
		maxW = decimal.NewFromFloat(*raw.MaxWeight)
	}
	if minW.IsPositive() && maxW.GreaterThan(minW) {
		cfg.MinWeight, cfg.MaxWeight = minW, maxW
	}

	return cfg, nil
}

// LogPath returns the path of the application log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/smartcart.log")
	}
	return filepath.Join(c.LogDir, "smartcart.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
