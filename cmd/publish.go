package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"text/template"

	"github.com/adinata/fintrack"
	"github.com/adinata/fintrack/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// reportTask identifies one report file to generate. It is also the data
// passed to the front matter template.
type reportTask struct {
	Period      fintrack.Range
	Granularity fintrack.Period
	Report      string
}

// Identifier names the report file for the task's period. It is exported so
// that front matter templates can use it for permalinks.
func (t reportTask) Identifier() string {
	if t.Granularity == fintrack.Yearly {
		return t.Period.From.Format("2006")
	}
	return t.Period.From.Format("2006-01")
}

type publishCmd struct {
	outputDir      string
	frontMatterTpl string
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "generates all historical reports for the fund" }

func (*publishCmd) Usage() string {
	return `publish [-o <dir>] [-frontmatter <file>]

  Generates historical dashboard and transaction reports for every month
  and year covered by the ledger and saves them to a structured directory
  tree, ready for a static site generator.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "reports", "Root directory for the generated reports")
	f.StringVar(&c.frontMatterTpl, "frontmatter", "", "Path to a Go template file for the report front matter")
}

func (c *publishCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var frontMatterTpl *template.Template
	if c.frontMatterTpl != "" {
		var err error
		frontMatterTpl, err = template.ParseFiles(c.frontMatterTpl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse front matter template: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		return subcommands.ExitFailure
	}

	cfg, err := loadAppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := loadLedger(ctx, cfg, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	startDate := ledger.OldestTransactionDate()
	if startDate.IsZero() {
		fmt.Println("Ledger is empty, nothing to publish.")
		return subcommands.ExitSuccess
	}
	// Today's figures still move with the feed; publish up to yesterday.
	endDate := fintrack.Today().Add(-1)

	tasks := make([]reportTask, 0)
	for _, granularity := range []fintrack.Period{fintrack.Monthly, fintrack.Yearly} {
		for _, r := range generateRanges(granularity, startDate, endDate) {
			tasks = append(tasks, reportTask{Period: r, Granularity: granularity, Report: "dashboard"})
			tasks = append(tasks, reportTask{Period: r, Granularity: granularity, Report: "transactions"})
		}
	}

	goal := decimal.NewFromFloat(cfg.Goal)
	for _, task := range tasks {
		var doc string
		switch task.Report {
		case "dashboard":
			snapshot := ledgerAsOf(ledger, task.Period.To)
			s := fintrack.Summarize(snapshot, goal, cfg.Currency, task.Period.To)
			trend := fintrack.ProfitTrend(snapshot, task.Granularity)
			var forecast *fintrack.Forecast
			if eta, ok := fintrack.GoalETA(snapshot, s.Balance, goal, task.Period.To); ok {
				forecast = &eta
			}
			doc = renderer.DashboardMarkdown(&s, trend, forecast)
		case "transactions":
			within := task.Period
			inPeriod := func(tx fintrack.Transaction) bool {
				return !tx.Date.IsZero() && within.Contains(tx.Date)
			}
			title := fmt.Sprintf("Transactions for %s", task.Granularity.Label(task.Period.From))
			doc = renderer.TransactionsMarkdown(title, ledger, cfg.Currency, inPeriod)
		}

		if frontMatterTpl != nil {
			fm, err := renderFrontMatter(frontMatterTpl, task)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to render front matter for %s report %s: %v\n", task.Report, task.Identifier(), err)
				continue
			}
			doc = fm + "\n" + doc
		}

		filePath := path.Join(task.Report, task.Granularity.Name(), task.Identifier()+".md")
		fullPath := filepath.Join(c.outputDir, filePath)

		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create output directory for file %s: %v\n", filePath, err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(fullPath, []byte(doc), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write file %s: %v\n", filePath, err)
			return subcommands.ExitFailure
		}
		log.Printf("Generated %s report for period %s", task.Report, task.Identifier())
	}

	return subcommands.ExitSuccess
}

// generateRanges walks consecutive period ranges from the range containing
// start until the range starting after end.
func generateRanges(p fintrack.Period, start, end fintrack.Date) []fintrack.Range {
	var ranges []fintrack.Range
	for r := p.Range(start); !r.From.After(end); r = p.Range(r.To.Add(1)) {
		ranges = append(ranges, r)
	}
	return ranges
}

// ledgerAsOf restricts the ledger to records dated on or before end. Undated
// records have no position on the time axis and stay included.
func ledgerAsOf(l *fintrack.Ledger, end fintrack.Date) *fintrack.Ledger {
	sub := fintrack.NewLedger()
	for _, tx := range l.Transactions(fintrack.AcceptAll) {
		if tx.Date.IsZero() || !tx.Date.After(end) {
			sub.Append(tx)
		}
	}
	return sub
}

func renderFrontMatter(tpl *template.Template, task reportTask) (string, error) {
	var fmBuffer bytes.Buffer
	if err := tpl.Execute(&fmBuffer, task); err != nil {
		return "", err
	}
	return fmBuffer.String(), nil
}
