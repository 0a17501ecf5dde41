package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config search at an empty directory so a developer's
// own .kiosk.yaml never leaks into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("KIOSK_CONFIG_PATH", dir)
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)
	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, BackendHTTP, cfg.Backend)
	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, time.Second, cfg.UI.RefreshInterval)
	assert.Equal(t, 300, cfg.Timer.DefaultSeconds)
	assert.Equal(t, DefaultSteps, cfg.Timer.Steps)
	assert.Equal(t, filepath.Join(home, ".kiosk", "store"), cfg.Store.Path)
	assert.Equal(t, []string{"f1", "home"}, cfg.Keys.Home)
	assert.Equal(t, []string{"enter"}, cfg.Keys.OK)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	yaml := `
backend: local
store:
  path: /var/lib/kiosk
ui:
  refresh_interval: 2s
timer:
  default_seconds: 600
  steps: [-60, 60]
keys:
  home: [h]
  quick_timer: [t]
  shopping: [s]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".kiosk.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, BackendLocal, cfg.Backend)
	assert.Equal(t, "/var/lib/kiosk", cfg.Store.Path)
	assert.Equal(t, 2*time.Second, cfg.UI.RefreshInterval)
	assert.Equal(t, 600, cfg.Timer.DefaultSeconds)
	assert.Equal(t, []int{-60, 60}, cfg.Timer.Steps)
	assert.Equal(t, []string{"h"}, cfg.Keys.Home)
	assert.Equal(t, []string{"t"}, cfg.Keys.QuickTimer)
	assert.Equal(t, []string{"left"}, cfg.Keys.Left)
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("KIOSK_BACKEND", "local")
	t.Setenv("KIOSK_API_BASE_URL", "http://kitchen:9000/api")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, BackendLocal, cfg.Backend)
	assert.Equal(t, "http://kitchen:9000/api", cfg.API.BaseURL)
}

func TestLoad_BadFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".kiosk.yaml"), []byte("backend: [\n"), 0o644))
	_, err := Load(New())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Backend: BackendHTTP,
			API:     APIConfig{BaseURL: "http://x"},
			UI:      UIConfig{RefreshInterval: time.Second},
			Timer:   TimerConfig{DefaultSeconds: 300, Steps: []int{-60, 60}},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Backend = "grpc" }},
		{"missing base url", func(c *Config) { c.API.BaseURL = "" }},
		{"missing store path", func(c *Config) { c.Backend = BackendLocal }},
		{"zero refresh", func(c *Config) { c.UI.RefreshInterval = 0 }},
		{"negative default", func(c *Config) { c.Timer.DefaultSeconds = -1 }},
		{"zero default", func(c *Config) { c.Timer.DefaultSeconds = 0 }},
		{"no steps", func(c *Config) { c.Timer.Steps = nil }},
		{"zero step", func(c *Config) { c.Timer.Steps = []int{0} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
