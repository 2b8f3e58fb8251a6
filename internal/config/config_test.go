package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8000", cfg.HTTP.Addr)
	assert.Equal(t, "web", cfg.HTTP.StaticDir)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 30*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "0 */10 * * * *", cfg.Schedule.CacheSweepCron)
	assert.False(t, cfg.HasGeminiKey())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
http:
  addr: ":9000"
  static_dir: "./web"
gemini:
  api_key: "from-file"
  timeout: 10s
cache:
  ttl: 1m
`)
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("CACHE_TTL", "2m")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, "./web", cfg.HTTP.StaticDir)
	assert.Equal(t, "from-env", cfg.Gemini.APIKey)
	assert.Equal(t, 10*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.HasGeminiKey())
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "http: [unclosed"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.HTTP.Addr = "" }},
		{"negative gemini timeout", func(c *Config) { c.Gemini.Timeout = -time.Second }},
		{"zero market timeout", func(c *Config) { c.Market.Timeout = 0 }},
		{"negative ttl", func(c *Config) { c.Cache.TTL = -time.Minute }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
