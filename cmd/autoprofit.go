package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/adinata/fintrack"
	"github.com/adinata/fintrack/renderer"
	"github.com/google/subcommands"
)

type autoprofitCmd struct {
	rate float64
	note string
	dry  bool
}

func (*autoprofitCmd) Name() string     { return "autoprofit" }
func (*autoprofitCmd) Synopsis() string { return "book one simulated day of profit" }
func (*autoprofitCmd) Usage() string {
	return `fintrack autoprofit [-rate <percent>] [-note <note>] [-y]

  Computes one day of simulated profit as a percentage of the contributed
  capital plus booked profits, truncated to whole currency units, and appends
  it as a profit record.
`
}

func (c *autoprofitCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "rate", 1.5, "Daily gain in percent of the non-withdrawn balance.")
	f.StringVar(&c.note, "note", "Simulated daily gain", "Note stored with the profit record.")
	f.BoolVar(&c.dry, "y", false, "Compute and print the gain without writing it to the store.")
}

func (c *autoprofitCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadAppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, err := loadLedger(ctx, cfg, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	gain := fintrack.DailyGain(ledger, fintrack.Percent(c.rate)).Truncate(0)
	if !gain.IsPositive() {
		fmt.Fprintln(os.Stderr, "Nothing to book: the balance yields no positive gain.")
		return subcommands.ExitSuccess
	}

	tx, err := fintrack.Validate(fintrack.NewProfit(fintrack.Today(), gain, c.note))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.dry {
		fmt.Println(renderer.Transaction(tx, cfg.Currency))
		return subcommands.ExitSuccess
	}
	return appendTransaction(ctx, cfg, tx)
}
