package platform

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override (NOTES_DIR, NOTES_STORE, ...).
const EnvPrefix = "NOTES"

// Config is the startup configuration of the CLI.
type Config struct {
	Dir      string `mapstructure:"dir"`
	Store    string `mapstructure:"store"`
	Pretty   bool   `mapstructure:"pretty"`
	LogLevel string `mapstructure:"log_level"`
}

// LoadConfig reads defaults, then the optional config file, then NOTES_*
// environment variables. An empty configFile skips the file.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("dir", "")
	v.SetDefault("store", DefaultStore)
	v.SetDefault("pretty", false)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		ext := strings.TrimLeft(filepath.Ext(configFile), ".")
		if ext == "yml" {
			ext = "yaml"
		}
		v.SetConfigFile(configFile)
		v.SetConfigType(ext)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("v.ReadInConfig: %w", err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("v.Unmarshal: %w", err)
	}

	// Relative dirs in a config file are relative to the file, not the cwd.
	_, fromEnv := os.LookupEnv(EnvPrefix + "_DIR")
	if configFile != "" && cfg.Dir != "" && v.InConfig("dir") && !fromEnv {
		dir := expandHome(cfg.Dir)
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(configFile), dir)
		}
		cfg.Dir = dir
	}

	return cfg, nil
}

// Level maps the configured log level to slog.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Options converts the configuration into factory options.
func (c *Config) Options() []Option {
	return []Option{
		WithStore(c.Store),
		WithPretty(c.Pretty),
	}
}

var userHomeDir = os.UserHomeDir

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := userHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
