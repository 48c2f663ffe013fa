package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/adinata/fintrack"
	"github.com/adinata/fintrack/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type simulateCmd struct {
	topup    string
	rate     string
	strategy string
	months   int
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "project a balance under contributions and compound growth" }
func (*simulateCmd) Usage() string {
	return `fintrack simulate -topup <amount> [-months <n>] [-strategy <name> | -rate <percent>]

  Projects a balance: each cycle starts with the contribution, then every one
  of its 20 steps compounds the balance at the per-step rate. The simulation
  runs on its own; the ledger is not involved.

Usage Examples:
# One year of monthly 1M contributions at the balanced preset.
$ fintrack simulate -topup 1000000 -months 12 -strategy balanced
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.topup, "topup", "", "Contribution added at the start of every cycle.")
	f.StringVar(&c.rate, "rate", "", "Custom per-step growth rate in percent. Overrides -strategy.")
	f.StringVar(&c.strategy, "strategy", "balanced", "Growth preset (conservative, balanced, aggressive).")
	f.IntVar(&c.months, "months", 12, "Number of contribution cycles to simulate.")
}

func (c *simulateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.topup == "" {
		fmt.Fprintln(os.Stderr, "Error: -topup is required.")
		return subcommands.ExitUsageError
	}
	contribution, err := decimal.NewFromString(c.topup)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing contribution: %v\n", err)
		return subcommands.ExitUsageError
	}

	strategy, err := fintrack.ParseStrategy(c.strategy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	rate, label := strategy.Rate(), strategy.String()
	if c.rate != "" {
		v, err := strconv.ParseFloat(c.rate, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing rate: %v\n", err)
			return subcommands.ExitUsageError
		}
		rate, label = fintrack.Percent(v), ""
	}

	cfg, err := loadAppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	points := fintrack.Simulate(contribution, rate, c.months)
	printMarkdown(renderer.SimulationMarkdown(fintrack.M(contribution, cfg.Currency), rate, label, c.months, points))
	return subcommands.ExitSuccess
}
