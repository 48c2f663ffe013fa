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

type goalCmd struct {
	target string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "display the progress toward the savings goal" }
func (*goalCmd) Usage() string {
	return `fintrack goal [-target <amount>]

  Displays the balance against the savings goal, the remaining amount, and
  the estimated completion date under the observed daily profit.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.target, "target", "", "Override the configured savings goal.")
}

func (c *goalCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadAppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	goal := decimal.NewFromFloat(cfg.Goal)
	if c.target != "" {
		g, err := decimal.NewFromString(c.target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing target: %v\n", err)
			return subcommands.ExitUsageError
		}
		goal = g
	}

	ledger, err := loadLedger(ctx, cfg, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	s := fintrack.Summarize(ledger, goal, cfg.Currency, fintrack.Today())
	var forecast *fintrack.Forecast
	if eta, ok := fintrack.GoalETA(ledger, s.Balance, goal, s.Date); ok {
		forecast = &eta
	}

	printMarkdown(renderer.GoalMarkdown(&s, forecast))
	return subcommands.ExitSuccess
}
