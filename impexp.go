package fintrack

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// this file contains functions to handle the published feed format.
// The feed is a CSV table with a header row; columns are matched by name so
// that reordering or extra columns in the sheet do not break the decoder.

// feedDateLayouts are the date shapes the sheet is known to publish:
// ISO dates, sheet-local timestamps, and US-locale variants.
var feedDateLayouts = []string{
	"2006-1-2",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"1/2/2006 15:04:05",
	"1/2/2006",
}

// parseFeedDate parses a feed date cell. It is total: anything unparseable
// yields the zero date, the record itself is kept.
func parseFeedDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}
	for _, layout := range feedDateLayouts {
		if on, err := time.Parse(layout, s); err == nil {
			return NewDate(on.Date())
		}
	}
	return Date{}
}

// parseFeedAmount parses a feed amount cell. A missing or malformed amount
// contributes zero to the sums, so the record stays visible in listings.
func parseFeedAmount(s string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return v
}

// DecodeFeed decodes the published CSV feed into a Ledger.
//
// The first row is the header; the Date, Type, Amount, and Note columns are
// located by name, case-insensitive. Rows shorter than the header are
// tolerated, missing cells read as empty. Only a stream that cannot be read
// as CSV, or a header without a Type and an Amount column, is an error.
func DecodeFeed(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // the sheet trims trailing empty cells
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read feed header: %w", err)
	}

	col := make(map[string]int)
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	kindCol, hasKind := col["type"]
	amountCol, hasAmount := col["amount"]
	if !hasKind || !hasAmount {
		return nil, fmt.Errorf("feed header %v misses the Type or Amount column", header)
	}
	dateCol, hasDate := col["date"]
	noteCol, hasNote := col["note"]

	cell := func(row []string, i int, ok bool) string {
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	ledger := NewLedger()
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read feed row: %w", err)
		}

		tx := Transaction{
			Kind:   Kind(strings.ToLower(strings.TrimSpace(cell(row, kindCol, true)))),
			Amount: parseFeedAmount(cell(row, amountCol, true)),
			Note:   strings.TrimSpace(cell(row, noteCol, hasNote)),
			Date:   parseFeedDate(cell(row, dateCol, hasDate)),
		}
		ledger.Append(tx)
	}
	return ledger, nil
}

// EncodeCSV writes the ledger in the canonical four-column export format.
// Undated transactions export with an empty date cell.
func EncodeCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Type", "Amount", "Note"}); err != nil {
		return fmt.Errorf("cannot write export header: %w", err)
	}
	for _, tx := range l.Transactions(AcceptAll) {
		day := ""
		if !tx.Date.IsZero() {
			day = tx.Date.String()
		}
		if err := cw.Write([]string{day, tx.Kind.String(), tx.Amount.String(), tx.Note}); err != nil {
			return fmt.Errorf("cannot write export row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
