package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"MarketBrief/internal/model"
)

// Config holds all application configuration. Everything is fixed at
// process start; nothing is reloaded mid-run.
type Config struct {
	Finnhub struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"finnhub"`
	OpenAI struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"openai"`
	Mail struct {
		Host          string   `yaml:"host"`
		Port          int      `yaml:"port"`
		Username      string   `yaml:"username"`
		Password      string   `yaml:"password"`
		From          string   `yaml:"from"`
		To            []string `yaml:"to"`
		SubjectPrefix string   `yaml:"subject_prefix"`
	} `yaml:"mail"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Symbols struct {
		Indices []string `yaml:"indices"`
		Majors  []string `yaml:"majors"`
		Sectors []string `yaml:"sectors"`
	} `yaml:"symbols"`
	FetchDelaySeconds int `yaml:"fetch_delay_seconds"`
	Database          struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
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
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		cfg.Finnhub.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.Mail.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Mail.Port = port
		}
	}
	if v := os.Getenv("SMTP_USERNAME"); v != "" {
		cfg.Mail.Username = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.Mail.Password = v
	}
	if v := os.Getenv("MAIL_FROM"); v != "" {
		cfg.Mail.From = v
	}
	if v := os.Getenv("MAIL_TO"); v != "" {
		cfg.Mail.To = strings.Split(v, ",")
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("FETCH_DELAY_SECONDS"); v != "" {
		if d, err := strconv.Atoi(v); err == nil {
			cfg.FetchDelaySeconds = d
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 30 21 * * 1-5"
	}
	if cfg.FetchDelaySeconds == 0 {
		cfg.FetchDelaySeconds = 1
	}
	if cfg.Mail.Port == 0 {
		cfg.Mail.Port = 587
	}
	if cfg.Mail.SubjectPrefix == "" {
		cfg.Mail.SubjectPrefix = "Market Brief"
	}
	if len(cfg.Symbols.Indices) == 0 {
		cfg.Symbols.Indices = []string{"SPY", "QQQ", "DIA", "IWM"}
	}
	if len(cfg.Symbols.Majors) == 0 {
		cfg.Symbols.Majors = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "TSLA"}
	}
	if len(cfg.Symbols.Sectors) == 0 {
		cfg.Symbols.Sectors = []string{"XLF", "XLK", "XLE", "XLV", "XLI", "XLY", "XLP", "XLU", "XLRE"}
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Finnhub.APIKey == "" {
		return fmt.Errorf("finnhub.api_key is required")
	}
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai.api_key is required")
	}
	if c.Mail.Host == "" {
		return fmt.Errorf("mail.host is required")
	}
	if c.Mail.From == "" {
		return fmt.Errorf("mail.from is required")
	}
	if len(c.Mail.To) == 0 {
		return fmt.Errorf("mail.to is required")
	}
	if c.FetchDelaySeconds < 0 {
		return fmt.Errorf("fetch_delay_seconds must not be negative")
	}
	return nil
}

// Universe returns the configured symbol universe.
func (c *Config) Universe() model.Universe {
	return model.Universe{
		Indices: c.Symbols.Indices,
		Majors:  c.Symbols.Majors,
		Sectors: c.Symbols.Sectors,
	}
}

// FetchDelay returns the minimum spacing between consecutive quote fetches.
func (c *Config) FetchDelay() time.Duration {
	return time.Duration(c.FetchDelaySeconds) * time.Second
}
