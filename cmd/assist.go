package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/adinata/fintrack"
	"github.com/adinata/fintrack/agent"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `fintrack assist [question]

  Starts an interactive session with the AI assistant. The assistant consults
  a bookkeeper expert reading the ledger and an advisor expert grounded in
  web search. Requires the GEMINI_API_KEY environment variable.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	cfg, err := loadAppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	load := func(ctx context.Context) (*fintrack.Ledger, error) {
		return loadLedger(ctx, cfg, false)
	}
	advisor := agent.NewAdvisor()
	bookkeeper := agent.NewBookkeeper(load, decimal.NewFromFloat(cfg.Goal), cfg.Currency)

	a := agent.New(os.Stdout, os.Stdin, advisor, bookkeeper)
	a.Render = renderMarkdown

	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
