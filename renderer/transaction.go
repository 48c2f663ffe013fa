package renderer

import (
	"bytes"
	"fmt"

	"github.com/adinata/fintrack"
	md "github.com/nao1215/markdown"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx fintrack.Transaction, cur string) string {
	var line string
	switch tx.Kind {
	case fintrack.TopUp:
		line = fmt.Sprintf("Topped up %s", fintrack.M(tx.Amount, cur))
	case fintrack.Profit:
		line = fmt.Sprintf("Booked %s profit", fintrack.M(tx.Amount, cur))
	case fintrack.Withdraw:
		line = fmt.Sprintf("Withdrew %s", fintrack.M(tx.Amount.Abs(), cur))
	default:
		line = fmt.Sprintf("Recorded %s of %s", tx.Kind, fintrack.M(tx.Amount, cur))
	}
	if tx.Note != "" {
		line += fmt.Sprintf(" (%s)", tx.Note)
	}
	return line
}

// TransactionsMarkdown renders a transaction listing. Undated rows show an
// empty date cell, the same way the sheet publishes them.
func TransactionsMarkdown(title string, l *fintrack.Ledger, cur string, filters ...func(fintrack.Transaction) bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{
			"Date",
			"Type",
			"Amount",
			"Note",
		},
	}
	count := 0
	for _, tx := range l.Transactions(filters...) {
		count++
		day := ""
		if !tx.Date.IsZero() {
			day = tx.Date.String()
		}
		table.Rows = append(table.Rows, []string{
			day,
			tx.Kind.String(),
			fintrack.M(tx.Amount, cur).SignedString(),
			tx.Note,
		})
	}
	doc.Table(table)

	if count == 0 {
		doc.PlainText("No transactions.")
	}

	return doc.String()
}
