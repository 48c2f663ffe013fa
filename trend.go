package fintrack

import (
	"slices"

	"github.com/shopspring/decimal"
)

// TrendPoint is the profit aggregated over one period bucket.
type TrendPoint struct {
	Label  string          // Label is the bucket's display name.
	Bucket Date            // Bucket is the first day of the period.
	Profit decimal.Decimal // Profit is the summed profit of the period.
}

// ProfitTrend groups dated profit transactions into period buckets and sums
// their amounts. Buckets come back in chronological order. Undated records
// cannot be placed on the time axis and are left out; they still count in
// [SumByType].
func ProfitTrend(l *Ledger, period Period) []TrendPoint {
	buckets := make(map[Date]decimal.Decimal)
	for _, tx := range l.Transactions(ByKind(Profit)) {
		if tx.Date.IsZero() {
			continue
		}
		b := tx.Date.StartOf(period)
		buckets[b] = buckets[b].Add(tx.Amount)
	}

	points := make([]TrendPoint, 0, len(buckets))
	for b, sum := range buckets {
		points = append(points, TrendPoint{Label: period.Label(b), Bucket: b, Profit: sum})
	}
	slices.SortFunc(points, func(a, b TrendPoint) int {
		switch {
		case a.Bucket.Before(b.Bucket):
			return -1
		case a.Bucket.After(b.Bucket):
			return 1
		default:
			return 0
		}
	})
	return points
}
