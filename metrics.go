package fintrack

import "github.com/shopspring/decimal"

// This file holds the ledger aggregation functions. They are all total:
// defined for every input including empty ledgers and zero denominators,
// returning zero values for degenerate cases, never an error. The dashboard
// must stay renderable whatever the feed delivered.

// SumByType sums the amounts of all transactions matching the given kind
// exactly. An empty ledger or a kind with no match yields zero.
func SumByType(l *Ledger, kind Kind) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range l.Transactions(ByKind(kind)) {
		sum = sum.Add(tx.Amount)
	}
	return sum
}

// Balance nets the ledger: top-ups plus profits plus withdrawals.
// Withdrawals are stored negative, so the plain sum is the net balance.
func Balance(l *Ledger) decimal.Decimal {
	return SumByType(l, TopUp).Add(SumByType(l, Profit)).Add(SumByType(l, Withdraw))
}

// ROIPercent returns the profit as a percentage of the contributed capital.
// A zero top-up total yields 0.
func ROIPercent(topUpTotal, profitTotal decimal.Decimal) Percent {
	return NewPercent(profitTotal, topUpTotal)
}

// GoalProgressPercent returns the balance as a percentage of the goal.
// A zero goal yields 0.
func GoalProgressPercent(balance, goal decimal.Decimal) Percent {
	return NewPercent(balance, goal)
}

// Summary is the derived metrics snapshot of a ledger against a savings goal.
// It is recomputed on demand and never cached as authoritative state.
type Summary struct {
	Date          Date
	Currency      string
	TopUpTotal    decimal.Decimal
	ProfitTotal   decimal.Decimal
	WithdrawTotal decimal.Decimal
	Balance       decimal.Decimal
	ROI           Percent
	Goal          decimal.Decimal
	GoalProgress  Percent
}

// Money wraps a raw amount with the summary's display currency.
func (s Summary) Money(v decimal.Decimal) Money { return M(v, s.Currency) }

// Summarize computes the full metrics snapshot for a ledger.
func Summarize(l *Ledger, goal decimal.Decimal, currency string, on Date) Summary {
	s := Summary{
		Date:          on,
		Currency:      currency,
		TopUpTotal:    SumByType(l, TopUp),
		ProfitTotal:   SumByType(l, Profit),
		WithdrawTotal: SumByType(l, Withdraw),
		Goal:          goal,
	}
	s.Balance = s.TopUpTotal.Add(s.ProfitTotal).Add(s.WithdrawTotal)
	s.ROI = ROIPercent(s.TopUpTotal, s.ProfitTotal)
	s.GoalProgress = GoalProgressPercent(s.Balance, goal)
	return s
}
