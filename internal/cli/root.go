// Package cli implements the gastutor CLI commands.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/larklabs/gastutor/internal/catalog"
	"github.com/larklabs/gastutor/internal/config"
	"github.com/larklabs/gastutor/internal/entitlement"
	"github.com/larklabs/gastutor/internal/store"
)

var (
	configPath string
	dbPath     string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "gastutor",
	Short: "CSA gas technician study assistant",
	Long:  "A study assistant for G3/G2 gas technician certification. Answers questions from CSA B149.1-25 curriculum content. SQLite-backed, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.gastutor/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (overrides config)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitErr("load config", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg
}

func openStore(cfg *config.Config) (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(cfg.DBPath)
}

// openEntitlement restores entitlement state. When the database cannot
// be opened the session degrades to fresh in-memory free state instead
// of failing.
func openEntitlement(cfg *config.Config) (*entitlement.Store, *store.SQLiteStore) {
	db, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (continuing without saved state)\n", err)
		return entitlement.New(entitlement.NewMemoryStorage(), cfg.Policy(), nil), nil
	}
	return entitlement.New(db, cfg.Policy(), nil), db
}

func parseLevel(s string) (catalog.Level, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	if !catalog.ValidLevels[up] {
		return "", fmt.Errorf("unknown level %q (use G3 or G2)", s)
	}
	return catalog.Level(up), nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
