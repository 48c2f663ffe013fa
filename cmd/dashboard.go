package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/adinata/fintrack"
	"github.com/adinata/fintrack/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type dashboardCmd struct {
	period  string
	refresh bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the savings dashboard" }
func (*dashboardCmd) Usage() string {
	return `fintrack dashboard [-p <period>] [-refresh]

  Displays the current balance, the per-kind totals, the return on
  investment, the profit trend, and the goal forecast.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "monthly", "Trend bucketing period (daily, monthly).")
	f.BoolVar(&c.refresh, "refresh", false, "Drop the cached feed and fetch a fresh snapshot.")
}

func (c *dashboardCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := fintrack.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, err := loadAppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, err := loadLedger(ctx, cfg, c.refresh)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	goal := decimal.NewFromFloat(cfg.Goal)
	s := fintrack.Summarize(ledger, goal, cfg.Currency, fintrack.Today())
	trend := fintrack.ProfitTrend(ledger, period)
	var forecast *fintrack.Forecast
	if eta, ok := fintrack.GoalETA(ledger, s.Balance, goal, s.Date); ok {
		forecast = &eta
	}

	printMarkdown(renderer.DashboardMarkdown(&s, trend, forecast))
	return subcommands.ExitSuccess
}
