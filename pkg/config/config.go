package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ProviderConfig describes one external data source. Exactly one provider
// must have role "primary".
type ProviderConfig struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"` // primary or secondary
	Kind string `yaml:"kind"` // scrape or api
	// URLTemplate contains a single %s placeholder for the ticker.
	URLTemplate string        `yaml:"url_template"`
	Timeout     time.Duration `yaml:"timeout"`
	// Selectors override the shipped CSS selector set (scrape kind only).
	Selectors map[string]string `yaml:"selectors"`
	RateLimit struct {
		Capacity     float64 `yaml:"capacity"`
		RefillPerSec float64 `yaml:"refill_per_sec"`
	} `yaml:"rate_limit"`
}

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Scrape struct {
		UserAgent      string        `yaml:"user_agent"`
		SessionTimeout time.Duration `yaml:"session_timeout"`
		SessionMaxAge  time.Duration `yaml:"session_max_age"`
		SessionMaxUses int           `yaml:"session_max_uses"`
	} `yaml:"scrape"`
	Providers []ProviderConfig `yaml:"providers"`
	Valuation struct {
		// BazinTargetYield is the ceiling-price divisor; 0.06 and 0.08 are
		// both in circulation, 0.06 ships as the default.
		BazinTargetYield   float64  `yaml:"bazin_target_yield"`
		BasePE             float64  `yaml:"base_pe"`
		CurrentRate        float64  `yaml:"current_rate"`
		HistoricalRate     float64  `yaml:"historical_rate"`
		FallbackGrowthRate float64  `yaml:"fallback_growth_rate"`
		UnreliableSegments []string `yaml:"unreliable_segments"`
	} `yaml:"valuation"`
	Events struct {
		Enabled      bool          `yaml:"enabled"`
		Brokers      []string      `yaml:"brokers"`
		Topic        string        `yaml:"topic"`
		RequiredAcks int           `yaml:"required_acks"`
		Compression  string        `yaml:"compression"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
	} `yaml:"events"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Events.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("EVENTS_TOPIC"); v != "" {
		c.Events.Topic = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if len(c.Providers) == 0 {
		return fmt.Errorf("providers cannot be empty")
	}

	primaries := 0
	seen := make(map[string]bool, len(c.Providers))
	for _, p := range c.Providers {
		if p.Name == "" {
			return fmt.Errorf("provider name is required")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate provider name '%s'", p.Name)
		}
		seen[p.Name] = true
		if p.Role != "primary" && p.Role != "secondary" {
			return fmt.Errorf("provider %s: role must be 'primary' or 'secondary', got '%s'", p.Name, p.Role)
		}
		if p.Kind != "scrape" && p.Kind != "api" {
			return fmt.Errorf("provider %s: kind must be 'scrape' or 'api', got '%s'", p.Name, p.Kind)
		}
		if p.URLTemplate == "" {
			return fmt.Errorf("provider %s: url_template is required", p.Name)
		}
		if p.Role == "primary" {
			primaries++
		}
	}
	if primaries != 1 {
		return fmt.Errorf("exactly one primary provider is required, got %d", primaries)
	}

	if c.Valuation.BazinTargetYield <= 0 {
		return fmt.Errorf("valuation.bazin_target_yield must be positive")
	}
	if c.Valuation.CurrentRate <= 0 {
		return fmt.Errorf("valuation.current_rate must be positive")
	}
	if c.Events.Enabled {
		if len(c.Events.Brokers) == 0 {
			return fmt.Errorf("events.brokers cannot be empty when events are enabled")
		}
		if c.Events.Topic == "" {
			return fmt.Errorf("events.topic is required when events are enabled")
		}
	}
	return nil
}

// Primary returns the primary provider config.
func (c *Config) Primary() ProviderConfig {
	for _, p := range c.Providers {
		if p.Role == "primary" {
			return p
		}
	}
	return ProviderConfig{}
}
