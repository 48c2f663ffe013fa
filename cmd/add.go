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

// addCmd is the shared implementation of the three record commands.
type addCmd struct {
	amount string
	note   string
	dry    bool
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount of the record, in major currency units.")
	f.StringVar(&c.note, "note", "", "Optional free-text note stored with the record.")
	f.BoolVar(&c.dry, "y", false, "Validate and print the record without writing it to the store.")
}

func (c *addCmd) add(ctx context.Context, kind fintrack.Kind) subcommands.ExitStatus {
	if c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -amount is required.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx, err := fintrack.Validate(fintrack.Transaction{Kind: kind, Amount: amount, Note: c.note})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, err := loadAppConfig()
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

type topupCmd struct{ addCmd }

func (*topupCmd) Name() string     { return "topup" }
func (*topupCmd) Synopsis() string { return "record a contribution into the fund" }
func (*topupCmd) Usage() string {
	return `fintrack topup -amount <amount> [-note <note>] [-y]

  Appends a top-up record to the sheet store.

Usage Examples:
$ fintrack topup -amount 1000000 -note "june salary"
`
}
func (c *topupCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.add(ctx, fintrack.TopUp)
}

type profitCmd struct{ addCmd }

func (*profitCmd) Name() string     { return "profit" }
func (*profitCmd) Synopsis() string { return "record a trading gain" }
func (*profitCmd) Usage() string {
	return `fintrack profit -amount <amount> [-note <note>] [-y]

  Appends a profit record to the sheet store. The amount must be positive;
  see 'fintrack withdraw' for money leaving the fund.
`
}
func (c *profitCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.add(ctx, fintrack.Profit)
}

type withdrawCmd struct{ addCmd }

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record money taken out of the fund" }
func (*withdrawCmd) Usage() string {
	return `fintrack withdraw -amount <amount> [-note <note>] [-y]

  Appends a withdrawal record to the sheet store. The amount may be given
  positive; it is stored negative so that summing the ledger nets the balance.
`
}
func (c *withdrawCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.add(ctx, fintrack.Withdraw)
}
