package fintrack

import (
	"time"

	"github.com/shopspring/decimal"
)

// dec is a helper for tests to build exact amounts from const
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// scenarioLedger builds the reference ledger used across aggregation tests:
// one top-up of 1M, two profits of 50k, one withdrawal of 20k.
func scenarioLedger() *Ledger {
	l := NewLedger()
	l.Append(
		NewTopUp(NewDate(2025, time.June, 1), 1_000_000, "initial deposit"),
		NewProfit(NewDate(2025, time.June, 2), 50_000, ""),
		NewProfit(NewDate(2025, time.June, 3), 50_000, ""),
		NewWithdraw(NewDate(2025, time.June, 4), 20_000, "coffee fund"),
	)
	return l
}
