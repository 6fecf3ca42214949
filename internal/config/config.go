package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/leadradar/leadradar/internal/llm"
)

type PlacesConfig struct {
	APIKey   string `toml:"api_key"`
	Endpoint string `toml:"endpoint"`
}

type PageSpeedConfig struct {
	APIKey   string `toml:"api_key"`
	Endpoint string `toml:"endpoint"`
}

type ConcurrencyConfig struct {
	ProbeWindow   int `toml:"probe_window"`
	AnalyzeWindow int `toml:"analyze_window"`
}

type Config struct {
	Places              PlacesConfig       `toml:"places"`
	PageSpeed           PageSpeedConfig    `toml:"pagespeed"`
	LLM                 llm.ProviderConfig `toml:"llm"`
	Concurrency         ConcurrencyConfig  `toml:"concurrency"`
	ProbeTimeoutSeconds int                `toml:"probe_timeout_seconds"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays secrets and provider selection from the environment so a
// checked-in config file never has to carry keys.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PLACES_API_KEY"); v != "" {
		c.Places.APIKey = v
	}
	if v := os.Getenv("PAGESPEED_API_KEY"); v != "" {
		c.PageSpeed.APIKey = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
}
