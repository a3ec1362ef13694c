package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPortfolio is the reference symbol set used as context for risk
// scoring when the config does not override it.
var DefaultPortfolio = []string{
	"TCS.NS", "ITC.NS", "ZOMATO.NS", "TATASTEEL.NS", "INFY.NS",
	"RELIANCE.NS", "HDFCBANK.NS", "ICICIBANK.NS", "SBIN.NS",
}

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	FMP struct {
		APIKey      string        `yaml:"api_key"`
		BaseURL     string        `yaml:"base_url"`
		SearchLimit int           `yaml:"search_limit"`
		NewsLimit   int           `yaml:"news_limit"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"fmp"`
	MarketData struct {
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"market_data"`
	Analysis struct {
		ServiceURL string        `yaml:"service_url"`
		Timeout    time.Duration `yaml:"timeout"`
	} `yaml:"analysis"`
	Risk struct {
		Portfolio []string `yaml:"portfolio"`
	} `yaml:"risk"`
	RateLimit struct {
		Enabled      bool    `yaml:"enabled"`
		Capacity     float64 `yaml:"capacity"`
		RefillPerSec float64 `yaml:"refill_per_sec"`
		Redis        struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"rate_limit"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	c, err := load(path)
	if err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment
// variables. Validation runs after the overrides so an env-only value
// such as FMP_API_KEY satisfies it.
func LoadWithEnv(path string) (*Config, error) {
	c, err := load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("FMP_API_KEY"); v != "" {
		c.FMP.APIKey = v
	}
	if v := os.Getenv("ANALYSIS_SERVICE_URL"); v != "" {
		c.Analysis.ServiceURL = v
	}
	if v := os.Getenv("PORTFOLIO"); v != "" {
		c.Risk.Portfolio = strings.Split(v, ",")
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.RateLimit.Redis.Addr = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

func load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.FMP.BaseURL == "" {
		c.FMP.BaseURL = "https://financialmodelingprep.com/api"
	}
	if c.FMP.SearchLimit == 0 {
		c.FMP.SearchLimit = 10
	}
	if c.FMP.NewsLimit == 0 {
		c.FMP.NewsLimit = 5
	}
	if c.FMP.Timeout == 0 {
		c.FMP.Timeout = 10 * time.Second
	}
	if c.MarketData.BaseURL == "" {
		c.MarketData.BaseURL = "https://query1.finance.yahoo.com"
	}
	if c.MarketData.Timeout == 0 {
		c.MarketData.Timeout = 10 * time.Second
	}
	if c.Analysis.Timeout == 0 {
		c.Analysis.Timeout = 10 * time.Second
	}
	if len(c.Risk.Portfolio) == 0 {
		c.Risk.Portfolio = DefaultPortfolio
	}
	if c.RateLimit.Capacity == 0 {
		c.RateLimit.Capacity = 10
	}
	if c.RateLimit.RefillPerSec == 0 {
		c.RateLimit.RefillPerSec = 5
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.FMP.APIKey == "" {
		return fmt.Errorf("fmp.api_key is required")
	}
	if len(c.Risk.Portfolio) == 0 {
		return fmt.Errorf("risk.portfolio cannot be empty")
	}
	return nil
}
