package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API       APIConfig
	Reconcile ReconcileConfig
	Notify    NotifyConfig
	Cache     CacheConfig
	Log       LogConfig
}

// APIConfig holds Task Status Service settings.
type APIConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	Token    string `mapstructure:"token"`
	TokenEnv string `mapstructure:"token_env"`
	Project  string `mapstructure:"project"`
}

// ReconcileConfig holds background reconciliation settings.
type ReconcileConfig struct {
	Delay time.Duration
}

// NotifyConfig holds notification settings.
type NotifyConfig struct {
	TTL time.Duration
}

// CacheConfig holds local snapshot cache settings.
type CacheConfig struct {
	Path string
}

// LogConfig holds logging settings. The log goes to a file because the TUI
// owns the terminal.
type LogConfig struct {
	Level string
	File  string
}

// ResolveToken returns the API token, preferring the configured env var over
// the config file value.
func (c Config) ResolveToken() string {
	if c.API.TokenEnv != "" {
		if tok := os.Getenv(c.API.TokenEnv); tok != "" {
			return tok
		}
	}
	return c.API.Token
}

// Load reads configuration from file and env. Env var overrides use prefix SPRINTDECK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "http://localhost:8080")
	v.SetDefault("api.token", "")
	v.SetDefault("api.token_env", "SPRINTDECK_API_TOKEN")
	v.SetDefault("api.project", "")
	v.SetDefault("reconcile.delay", "2s")
	v.SetDefault("notify.ttl", "4s")
	v.SetDefault("cache.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "sprintdeck", "board.db"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(os.Getenv("HOME"), ".local", "share", "sprintdeck", "sprintdeck.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SPRINTDECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "sprintdeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SPRINTDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the settings flow for non-sensitive preferences; the API
// token belongs in the env var, not the file.
func Save(cfg Config) error {
	path := os.Getenv("SPRINTDECK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "sprintdeck", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("api.base_url", cfg.API.BaseURL)
	v.Set("api.token_env", cfg.API.TokenEnv)
	v.Set("api.project", cfg.API.Project)
	v.Set("reconcile.delay", cfg.Reconcile.Delay.String())
	v.Set("notify.ttl", cfg.Notify.TTL.String())
	v.Set("cache.path", cfg.Cache.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
