package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"StockForecast/internal/forecast"
	"StockForecast/internal/generator"
	"StockForecast/internal/model"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr          string `yaml:"addr"`
		SessionTTL    string `yaml:"session_ttl"`
		SessionHeader string `yaml:"session_header"`
	} `yaml:"server"`
	History struct {
		Length int    `yaml:"length"`
		Seed   uint64 `yaml:"seed"`
	} `yaml:"history"`
	Forecast struct {
		// Pointers so an explicit 0 is kept apart from an unset key.
		Drift          *float64 `yaml:"drift"`
		Volatility     *float64 `yaml:"volatility"`
		MaxResample    int      `yaml:"max_resample"`
		Horizons       []int    `yaml:"horizons"`
		DefaultHorizon int      `yaml:"default_horizon"`
	} `yaml:"forecast"`
	Schedule struct {
		RolloverCron string `yaml:"rollover_cron"`
		EvictCron    string `yaml:"evict_cron"`
	} `yaml:"schedule"`
	LogLevel string `yaml:"log_level"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
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

	// Environment variable overrides
	if v := os.Getenv("STOCKDASH_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		cfg.Server.SessionTTL = v
	}
	if v := os.Getenv("HISTORY_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.History.Length = n
		}
	}
	if v := os.Getenv("RANDOM_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.History.Seed = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.SessionTTL == "" {
		c.Server.SessionTTL = "30m"
	}
	if c.Server.SessionHeader == "" {
		c.Server.SessionHeader = "X-Session-ID"
	}
	if c.History.Length == 0 {
		c.History.Length = generator.DefaultLength
	}
	if c.Forecast.Drift == nil {
		c.Forecast.Drift = float64Ptr(forecast.DefaultDrift)
	}
	if c.Forecast.Volatility == nil {
		c.Forecast.Volatility = float64Ptr(forecast.DefaultVolatility)
	}
	if c.Forecast.MaxResample == 0 {
		c.Forecast.MaxResample = forecast.DefaultMaxResample
	}
	if len(c.Forecast.Horizons) == 0 {
		c.Forecast.Horizons = append([]int(nil), model.Horizons...)
	}
	if c.Forecast.DefaultHorizon == 0 {
		c.Forecast.DefaultHorizon = 5
	}
	if c.Schedule.RolloverCron == "" {
		c.Schedule.RolloverCron = "0 0 0 * * *"
	}
	if c.Schedule.EvictCron == "" {
		c.Schedule.EvictCron = "0 */5 * * * *"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks that all fields are usable.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	ttl, err := time.ParseDuration(c.Server.SessionTTL)
	if err != nil {
		return fmt.Errorf("server.session_ttl: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("server.session_ttl must be positive")
	}
	if c.History.Length < 2 {
		return fmt.Errorf("history.length must be at least 2")
	}
	if c.Forecast.Drift == nil || c.Forecast.Volatility == nil {
		return fmt.Errorf("forecast.drift and forecast.volatility are required")
	}
	if *c.Forecast.Volatility < 0 {
		return fmt.Errorf("forecast.volatility must not be negative")
	}
	if c.Forecast.MaxResample < 0 {
		return fmt.Errorf("forecast.max_resample must not be negative")
	}
	if len(c.Forecast.Horizons) == 0 {
		return fmt.Errorf("forecast.horizons must not be empty")
	}
	found := false
	for _, h := range c.Forecast.Horizons {
		if !model.ValidHorizon(h) {
			return fmt.Errorf("forecast.horizons: %d is not one of %v", h, model.Horizons)
		}
		if h == c.Forecast.DefaultHorizon {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("forecast.default_horizon %d is not in forecast.horizons", c.Forecast.DefaultHorizon)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error")
	}
	return nil
}

// TTL returns the parsed session TTL. Call Validate first.
func (c *Config) TTL() time.Duration {
	d, _ := time.ParseDuration(c.Server.SessionTTL)
	return d
}

// ForecastParams returns the random walk parameters.
func (c *Config) ForecastParams() forecast.Params {
	return forecast.Params{
		Drift:       derefOr(c.Forecast.Drift, forecast.DefaultDrift),
		Volatility:  derefOr(c.Forecast.Volatility, forecast.DefaultVolatility),
		MaxResample: c.Forecast.MaxResample,
	}
}

func float64Ptr(v float64) *float64 { return &v }

func derefOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// SaveToFile writes the configuration as YAML.
func (c *Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
