// Package cmd implements the CLI application to track a personal fund.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/adinata/fintrack"
	"github.com/adinata/fintrack/renderer"
	"github.com/adinata/fintrack/sheets"
	"github.com/google/subcommands"
)

// registration binds a subcommand to its help group.
type registration struct {
	subcommands.Command
	group string
}

// commands lists every subcommand of the application with its help group.
// The shell completion tree in Completion derives from the same list.
func commands() []registration {
	return []registration{
		{&topupCmd{}, "transactions"},
		{&profitCmd{}, "transactions"},
		{&withdrawCmd{}, "transactions"},
		{&autoprofitCmd{}, "transactions"},
		{&txCmd{}, "transactions"},
		{&exportCmd{}, "transactions"},

		{&dashboardCmd{}, "reports"},
		{&goalCmd{}, "reports"},
		{&simulateCmd{}, "reports"},
		{&publishCmd{}, "reports"},

		{&topicCmd{}, "documentation"},
		{&assistCmd{}, "assistant"},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, r := range commands() {
		c.Register(r.Command, r.group)
	}
}

// Known reports whether name is a built-in subcommand or one of the
// commander's help commands. Unknown names are candidates for extension
// dispatch.
func Known(name string) bool {
	for _, r := range commands() {
		if r.Name() == name {
			return true
		}
	}
	switch name {
	case "help", "flags", "commands":
		return true
	}
	return false
}

// A CLI has a short lived lifecycle, so globals are fine here.

var configFile = flag.String("config", "fintrack.toml", "Path to the TOML configuration file")

// Verbose enables log output. The main package discards logs otherwise.
var Verbose = flag.Bool("v", false, "Enable verbose logging")

// loadAppConfig loads the application config file. A missing file is not
// fatal: the defaults apply, and the store URLs stay empty until configured.
func loadAppConfig() (*Config, error) {
	cfg, err := LoadConfig(*configFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, config file does not exist, using defaults instead")
		return DefaultConfig(), nil
	}
	return cfg, err
}

// storeClient builds the sheet store client from the configuration.
func storeClient(cfg *Config) *sheets.Client {
	client := sheets.NewClient(cfg.FeedURL, cfg.ScriptURL)
	client.TTL = cfg.CacheTTL
	if cfg.CacheDir != "" {
		client.Cache = &sheets.DiskCache{Dir: cfg.CacheDir}
	}
	return client
}

// loadLedger fetches the current ledger snapshot from the store. With
// refresh the cached feed is dropped first.
func loadLedger(ctx context.Context, cfg *Config, refresh bool) (*fintrack.Ledger, error) {
	if cfg.FeedURL == "" {
		return nil, fmt.Errorf("feed_url is not configured, see 'fintrack topic config'")
	}
	client := storeClient(cfg)
	if refresh {
		client.Invalidate()
	}
	return client.Transactions(ctx)
}

// appendTransaction submits one validated record to the store and reports it.
func appendTransaction(ctx context.Context, cfg *Config, tx fintrack.Transaction) subcommands.ExitStatus {
	if cfg.ScriptURL == "" {
		fmt.Fprintln(os.Stderr, "Error: script_url is not configured, see 'fintrack topic config'")
		return subcommands.ExitFailure
	}
	if err := storeClient(cfg).Append(ctx, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved: %s\n", renderer.Transaction(tx, cfg.Currency))
	return subcommands.ExitSuccess
}
