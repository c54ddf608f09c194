package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/larklabs/gastutor/internal/entitlement"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.FreeQuota != 10 {
		t.Errorf("expected metered default, got quota %d", cfg.FreeQuota)
	}
	p := cfg.Policy()
	if !p.Enabled[entitlement.TierPaid] || !p.Enabled[entitlement.TierActivated] {
		t.Error("default policy should enable paid and activated tiers")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("free_quota: 0\ntiers: [free]\ncheckout_url: https://example.com/buy\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.FreeQuota != 0 {
		t.Errorf("explicit zero quota not honored, got %d", cfg.FreeQuota)
	}
	if cfg.CheckoutURL != "https://example.com/buy" {
		t.Errorf("checkout url not loaded, got %q", cfg.CheckoutURL)
	}
	p := cfg.Policy()
	if p.Enabled[entitlement.TierPaid] || p.Enabled[entitlement.TierActivated] {
		t.Error("free-only variant must disable paid tiers")
	}
	// Unspecified fields keep their defaults.
	if cfg.DBPath == "" {
		t.Error("db_path default lost")
	}
}

func TestLoadFromFileRejectsUnknownTier(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("tiers: [free, platinum]\n"), 0o644)

	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("expected unknown tier to fail validation")
	}
}

func TestLoadMissingUserConfigFallsBack(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load with no config file: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("fallback config invalid: %v", err)
	}
}

func TestLoadExplicitMissingPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("explicit missing config path should fail")
	}
}
