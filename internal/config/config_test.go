package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg.FetchDelaySeconds != 1 {
		t.Errorf("expected default fetch delay 1s, got %d", cfg.FetchDelaySeconds)
	}
	if cfg.FetchDelay() != time.Second {
		t.Errorf("expected 1s duration, got %v", cfg.FetchDelay())
	}
	if cfg.Schedule.DailyCron == "" {
		t.Error("expected default daily cron")
	}
	if len(cfg.Symbols.Indices) == 0 || len(cfg.Symbols.Majors) == 0 || len(cfg.Symbols.Sectors) == 0 {
		t.Error("expected default symbol universe in all three categories")
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := writeTempConfig(t, `
finnhub:
  api_key: file-key
symbols:
  indices: [SPY]
  majors: [AAPL]
  sectors: [XLK]
fetch_delay_seconds: 3
`)
	t.Setenv("FINNHUB_API_KEY", "env-key")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Finnhub.APIKey != "env-key" {
		t.Errorf("env must override file, got %q", cfg.Finnhub.APIKey)
	}
	if cfg.FetchDelaySeconds != 3 {
		t.Errorf("expected fetch delay 3, got %d", cfg.FetchDelaySeconds)
	}
	u := cfg.Universe()
	if len(u.All()) != 3 || u.All()[0] != "SPY" || !u.IsIndex("SPY") || u.IsIndex("AAPL") {
		t.Errorf("unexpected universe: %+v", u)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation failure with no credentials")
	}

	cfg.Finnhub.APIKey = "k"
	cfg.OpenAI.APIKey = "k"
	cfg.Mail.Host = "smtp.example.com"
	cfg.Mail.From = "bot@example.com"
	cfg.Mail.To = []string{"me@example.com"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}
