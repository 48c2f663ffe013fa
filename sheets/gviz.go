package sheets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/adinata/fintrack"
	"github.com/shopspring/decimal"
)

// The gviz endpoint answers with a JSONP call, optionally preceded by an
// anti-hijacking comment:
//
//	/*O_o*/
//	google.visualization.Query.setResponse({"version":"0.6",...,"table":{...}});

var (
	gvizCallRE = regexp.MustCompile(`(?s)google\.visualization\.Query\.setResponse\((.*)\)\s*;?\s*$`)
	// gviz writes date cells as "Date(y,m,d)" literals with a zero-based month.
	gvizDateRE = regexp.MustCompile(`^Date\((\d+),(\d+),(\d+)`)
)

// isGviz reports whether the body is a gviz response rather than plain CSV.
func isGviz(body []byte) bool {
	head := bytes.TrimSpace(body)
	head = bytes.TrimPrefix(head, []byte("/*O_o*/"))
	head = bytes.TrimSpace(head)
	return bytes.HasPrefix(head, []byte("google.visualization.Query.setResponse("))
}

// decodeGviz decodes a gviz response into a Ledger, with the same cell
// semantics as the CSV decoder: columns match by label, malformed dates and
// amounts degrade to zero values, rows are kept in feed order.
func decodeGviz(body []byte) (*fintrack.Ledger, error) {
	match := gvizCallRE.FindSubmatch(body)
	if match == nil {
		return nil, fmt.Errorf("gviz feed: cannot find the setResponse payload")
	}
	var jobj any
	if err := json.Unmarshal(match[1], &jobj); err != nil {
		return nil, fmt.Errorf("gviz feed: %w", err)
	}

	if status, err := jsonpath.Get("$.status", jobj); err == nil && status == "error" {
		reason, _ := jsonpath.Get("$.errors[0].reason", jobj)
		return nil, fmt.Errorf("gviz feed: query error: %v", reason)
	}

	jlabels, err := jsonpath.Get("$.table.cols[*].label", jobj)
	if err != nil {
		return nil, fmt.Errorf("gviz feed: %w", err)
	}
	labels, _ := jlabels.([]any)
	col := make(map[string]int)
	for i, label := range labels {
		if s, ok := label.(string); ok {
			col[strings.ToLower(strings.TrimSpace(s))] = i
		}
	}
	kindCol, hasKind := col["type"]
	amountCol, hasAmount := col["amount"]
	if !hasKind || !hasAmount {
		return nil, fmt.Errorf("gviz feed: columns %v miss the Type or Amount label", labels)
	}
	dateCol, hasDate := col["date"]
	noteCol, hasNote := col["note"]

	jrows, err := jsonpath.Get("$.table.rows[*].c", jobj)
	if err != nil {
		return nil, fmt.Errorf("gviz feed: %w", err)
	}
	rows, _ := jrows.([]any)

	ledger := fintrack.NewLedger()
	for _, jrow := range rows {
		cells, _ := jrow.([]any)
		tx := fintrack.Transaction{
			Kind:   fintrack.Kind(strings.ToLower(strings.TrimSpace(cellString(cells, kindCol, true)))),
			Amount: cellAmount(cells, amountCol),
			Note:   strings.TrimSpace(cellString(cells, noteCol, hasNote)),
			Date:   cellDate(cells, dateCol, hasDate),
		}
		ledger.Append(tx)
	}
	return ledger, nil
}

// cellValue returns the raw "v" of the i-th cell, nil for blank cells.
func cellValue(cells []any, i int, ok bool) any {
	if !ok || i < 0 || i >= len(cells) {
		return nil
	}
	cell, _ := cells[i].(map[string]any)
	if cell == nil {
		return nil
	}
	return cell["v"]
}

func cellString(cells []any, i int, ok bool) string {
	s, _ := cellValue(cells, i, ok).(string)
	return s
}

func cellAmount(cells []any, i int) decimal.Decimal {
	// sometimes, this weird API returns the value as a string
	switch v := cellValue(cells, i, true).(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
			return d
		}
	}
	return decimal.Zero
}

func cellDate(cells []any, i int, ok bool) fintrack.Date {
	s, _ := cellValue(cells, i, ok).(string)
	if s == "" {
		return fintrack.Date{}
	}
	if m := gvizDateRE.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		mon, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		return fintrack.NewDate(y, time.Month(mon+1), d)
	}
	if d, err := fintrack.ParseDate(s); err == nil {
		return d
	}
	return fintrack.Date{}
}
