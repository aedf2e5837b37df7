package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
environment: test
server:
  port: 8080
providers:
  - name: fundamentals
    role: primary
    kind: scrape
    url_template: "https://example.com/acoes/%s"
    timeout: 5s
  - name: analyst
    role: secondary
    kind: api
    url_template: "https://example.com/api/%s"
    timeout: 3s
valuation:
  bazin_target_yield: 0.06
  base_pe: 8.5
  current_rate: 10.5
  historical_rate: 7.5
  fallback_growth_rate: 5.0
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	c, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Primary().Name != "fundamentals" {
		t.Fatalf("unexpected primary %q", c.Primary().Name)
	}
	if c.Valuation.BazinTargetYield != 0.06 {
		t.Fatalf("unexpected yield %v", c.Valuation.BazinTargetYield)
	}
}

func TestValidateRejectsTwoPrimaries(t *testing.T) {
	c, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatal(err)
	}
	c.Providers[1].Role = "primary"
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for two primaries")
	}
}

func TestValidateRejectsMissingProviders(t *testing.T) {
	c, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatal(err)
	}
	c.Providers = nil
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for empty providers")
	}
}

func TestValidateRejectsNonPositiveYield(t *testing.T) {
	c, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatal(err)
	}
	c.Valuation.BazinTargetYield = 0
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for zero bazin_target_yield")
	}
}

func TestLoadWithEnvOverridesPort(t *testing.T) {
	t.Setenv("PORT", "9999")
	c, err := LoadWithEnv(writeConfig(t, validYAML))
	if err != nil {
		t.Fatal(err)
	}
	if c.Server.Port != 9999 {
		t.Fatalf("unexpected port %d", c.Server.Port)
	}
}
