package fintrack

import "github.com/shopspring/decimal"

// Forecast is a goal-completion estimate derived from the profit history.
// It is a linear extrapolation of the observed average daily profit; it
// deliberately ignores any acceleration from reinvested profit.
type Forecast struct {
	AvgDailyProfit decimal.Decimal // AvgDailyProfit is the observed profit per distinct day.
	DaysRemaining  int             // DaysRemaining is the whole days left at that pace.
	Date           Date            // Date is the estimated completion day.
}

// GoalETA estimates when the balance will reach the goal, counting from 'on'.
//
// The average daily profit divides the profit total by the number of distinct
// calendar dates among dated profit records; when no profit record carries a
// date, the record count serves as denominator so that a fresh ledger still
// forecasts. It returns false when no meaningful forecast exists: the goal is
// already met, or the profit trend is not positive.
func GoalETA(l *Ledger, balance, goal decimal.Decimal, on Date) (Forecast, bool) {
	profitTotal := SumByType(l, Profit)

	days := make(map[Date]struct{})
	count := 0
	for _, tx := range l.Transactions(ByKind(Profit)) {
		count++
		if !tx.Date.IsZero() {
			days[tx.Date] = struct{}{}
		}
	}
	den := len(days)
	if den == 0 {
		den = count
	}

	avg := decimal.Zero
	if den > 0 {
		avg = profitTotal.Div(decimal.NewFromInt(int64(den)))
	}
	if !avg.IsPositive() || balance.GreaterThanOrEqual(goal) {
		return Forecast{}, false
	}

	remaining := int(goal.Sub(balance).Div(avg).IntPart())
	return Forecast{
		AvgDailyProfit: avg,
		DaysRemaining:  remaining,
		Date:           on.Add(remaining),
	}, true
}

// DailyGain computes the simulated daily profit as rate percent of the
// balance excluding withdrawals (top-ups plus profits). This is the base the
// auto-profit feature grows; it returns zero when that base is not positive.
func DailyGain(l *Ledger, rate Percent) decimal.Decimal {
	base := SumByType(l, TopUp).Add(SumByType(l, Profit))
	if !base.IsPositive() {
		return decimal.Zero
	}
	return base.Mul(decimal.NewFromFloat(float64(rate))).Div(decimal.NewFromInt(100))
}
