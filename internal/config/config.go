package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	HTTP struct {
		Addr      string `yaml:"addr" envconfig:"HTTP_ADDR"`
		StaticDir string `yaml:"static_dir" envconfig:"STATIC_DIR"`
	} `yaml:"http"`
	Gemini struct {
		APIKey  string        `yaml:"api_key" envconfig:"GEMINI_API_KEY"`
		Model   string        `yaml:"model" envconfig:"GEMINI_MODEL"`
		Timeout time.Duration `yaml:"timeout" envconfig:"GEMINI_TIMEOUT"`
	} `yaml:"gemini"`
	Market struct {
		Timeout time.Duration `yaml:"timeout" envconfig:"MARKET_TIMEOUT"`
	} `yaml:"market"`
	Cache struct {
		TTL time.Duration `yaml:"ttl" envconfig:"CACHE_TTL"`
	} `yaml:"cache"`
	Schedule struct {
		CacheSweepCron string `yaml:"cache_sweep_cron" envconfig:"CRON_CACHE_SWEEP"`
	} `yaml:"schedule"`
	Log struct {
		Level string `yaml:"level" envconfig:"LOG_LEVEL"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy" envconfig:"HTTPS_PROXY"`
}

// Load reads config from a YAML file, then applies .env and environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// A missing .env is normal outside development.
	_ = godotenv.Load()

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = "127.0.0.1:8000"
	}
	if c.HTTP.StaticDir == "" {
		c.HTTP.StaticDir = "web"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-1.5-flash"
	}
	if c.Gemini.Timeout == 0 {
		c.Gemini.Timeout = 30 * time.Second
	}
	if c.Market.Timeout == 0 {
		c.Market.Timeout = 30 * time.Second
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 5 * time.Minute
	}
	if c.Schedule.CacheSweepCron == "" {
		c.Schedule.CacheSweepCron = "0 */10 * * * *"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks that all settings are usable.
func (c *Config) Validate() error {
	if c.HTTP.Addr == "" {
		return fmt.Errorf("http.addr is required")
	}
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("gemini.timeout must be positive")
	}
	if c.Market.Timeout <= 0 {
		return fmt.Errorf("market.timeout must be positive")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// HasGeminiKey reports whether decisions can be delegated to the model.
func (c *Config) HasGeminiKey() bool {
	return c.Gemini.APIKey != ""
}
