// Package config provides configuration loading for gastutor.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/larklabs/gastutor/internal/composer"
	"github.com/larklabs/gastutor/internal/entitlement"
)

// UserConfigDir is the directory holding user-level config and data.
const UserConfigDir = ".gastutor"

// ConfigFile is the name of the config file inside UserConfigDir.
const ConfigFile = "config.yaml"

// Config is the complete gastutor configuration.
type Config struct {
	// DBPath is the SQLite database path (default: ~/.gastutor/tutor.db).
	DBPath string `yaml:"db_path"`
	// CheckoutURL is the Pro subscription checkout link.
	CheckoutURL string `yaml:"checkout_url"`
	// FreeQuota is the free-tier message allowance. Zero disables
	// metered access entirely (the fully-free variant).
	FreeQuota int `yaml:"free_quota"`
	// Tiers lists the enabled access tiers. Free is always enabled.
	Tiers []string `yaml:"tiers"`
}

// DefaultConfig returns the metered variant: 10 free messages and all
// tiers enabled.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		DBPath:      filepath.Join(home, UserConfigDir, "tutor.db"),
		CheckoutURL: composer.DefaultCheckoutURL,
		FreeQuota:   10,
		Tiers:       []string{"free", "paid", "activated"},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.FreeQuota < 0 {
		return fmt.Errorf("free_quota must not be negative")
	}
	for _, t := range c.Tiers {
		switch entitlement.Tier(t) {
		case entitlement.TierFree, entitlement.TierPaid, entitlement.TierActivated:
		default:
			return fmt.Errorf("unknown tier %q", t)
		}
	}
	return nil
}

// Policy converts the configured variant into an entitlement policy.
func (c *Config) Policy() entitlement.Policy {
	enabled := map[entitlement.Tier]bool{}
	for _, t := range c.Tiers {
		enabled[entitlement.Tier(t)] = true
	}
	delete(enabled, entitlement.TierFree)
	return entitlement.Policy{FreeQuota: c.FreeQuota, Enabled: enabled}
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Load loads the user config file if present, defaults otherwise. An
// explicit non-empty path must exist and parse.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFromFile(path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfig(), nil
	}
	userPath := filepath.Join(home, UserConfigDir, ConfigFile)
	cfg, err := LoadFromFile(userPath)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
