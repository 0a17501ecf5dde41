// Package config loads kiosk settings from defaults, an optional .kiosk.yaml
// file, KIOSK_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"kitchenkiosk/internal/keys"
)

// Backend names accepted by the "backend" key.
const (
	BackendHTTP  = "http"
	BackendLocal = "local"
)

// Config is the resolved kiosk configuration.
type Config struct {
	Backend string        `mapstructure:"backend"`
	API     APIConfig     `mapstructure:"api"`
	Store   StoreConfig   `mapstructure:"store"`
	UI      UIConfig      `mapstructure:"ui"`
	Timer   TimerConfig   `mapstructure:"timer"`
	Keys    keys.Bindings `mapstructure:"keys"`
	Log     LogConfig     `mapstructure:"log"`
}

// APIConfig configures the REST backend client.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// StoreConfig configures the offline store.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig configures the host view.
type UIConfig struct {
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

// TimerConfig configures the quick timer overlay. Steps are the adjustment
// buttons in seconds, in focus order; the start button follows them.
type TimerConfig struct {
	DefaultSeconds int    `mapstructure:"default_seconds"`
	DefaultName    string `mapstructure:"default_name"`
	Steps          []int  `mapstructure:"steps"`
}

// LogConfig configures the debug log. An empty file disables logging.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// DefaultSteps are -5m, -1m, +30s, +1m and +5m.
var DefaultSteps = []int{-300, -60, 30, 60, 300}

// New returns a viper instance with defaults, search paths and environment
// binding set up. Flags may be bound to it before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("backend", BackendHTTP)
	v.SetDefault("api.base_url", "http://localhost:8000/api")
	v.SetDefault("api.timeout", 5*time.Second)
	v.SetDefault("store.path", "~/.kiosk/store")
	v.SetDefault("ui.refresh_interval", time.Second)
	v.SetDefault("timer.default_seconds", 300)
	v.SetDefault("timer.default_name", "Timer")
	v.SetDefault("timer.steps", DefaultSteps)
	v.SetDefault("log.file", "")

	d := keys.DefaultBindings()
	v.SetDefault("keys.left", d.Left)
	v.SetDefault("keys.right", d.Right)
	v.SetDefault("keys.ok", d.OK)
	v.SetDefault("keys.cancel", d.Cancel)
	v.SetDefault("keys.home", d.Home)
	v.SetDefault("keys.quick_timer", d.QuickTimer)
	v.SetDefault("keys.shopping", d.Shopping)

	v.SetConfigName(".kiosk") // .yaml is implicit
	v.SetEnvPrefix("KIOSK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("KIOSK_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	if dir, err := homedir.Expand("~/.config/kiosk"); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath("./")
	return v
}

// Load reads the config file if one exists and decodes the result.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	path, err := homedir.Expand(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("config: store.path: %w", err)
	}
	cfg.Store.Path = path

	if cfg.Log.File != "" {
		if cfg.Log.File, err = homedir.Expand(cfg.Log.File); err != nil {
			return nil, fmt.Errorf("config: log.file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would leave the kiosk unusable.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendHTTP, BackendLocal:
	default:
		return fmt.Errorf("config: backend %q: want %q or %q", c.Backend, BackendHTTP, BackendLocal)
	}
	if c.Backend == BackendHTTP && c.API.BaseURL == "" {
		return errors.New("config: api.base_url is required for the http backend")
	}
	if c.Backend == BackendLocal && c.Store.Path == "" {
		return errors.New("config: store.path is required for the local backend")
	}
	if c.UI.RefreshInterval <= 0 {
		return fmt.Errorf("config: ui.refresh_interval %s must be positive", c.UI.RefreshInterval)
	}
	if c.Timer.DefaultSeconds <= 0 {
		return fmt.Errorf("config: timer.default_seconds %d must be positive", c.Timer.DefaultSeconds)
	}
	if len(c.Timer.Steps) == 0 {
		return errors.New("config: timer.steps must list at least one step")
	}
	for _, s := range c.Timer.Steps {
		if s == 0 {
			return errors.New("config: timer.steps must not contain 0")
		}
	}
	return nil
}
