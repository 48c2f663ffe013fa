package fintrack

import (
	"testing"
)

func TestGoalETA_Scenario(t *testing.T) {
	// 100k profit over two distinct days averages 50k/day; the 8.92M gap
	// to a 10M goal then closes in 178 whole days.
	l := scenarioLedger()
	on := NewDate(2025, 6, 5)

	f, ok := GoalETA(l, Balance(l), dec(10_000_000), on)
	if !ok {
		t.Fatal("GoalETA() not ok, want a forecast")
	}
	if !f.AvgDailyProfit.Equal(dec(50_000)) {
		t.Errorf("AvgDailyProfit = %s, want 50000", f.AvgDailyProfit)
	}
	if f.DaysRemaining != 178 {
		t.Errorf("DaysRemaining = %d, want 178", f.DaysRemaining)
	}
	if want := NewDate(2025, 11, 30); f.Date != want {
		t.Errorf("Date = %s, want %s", f.Date, want)
	}
}

func TestGoalETA_DuplicateDays(t *testing.T) {
	// Two profits on the same day count as one day of history.
	l := NewLedger()
	l.Append(
		NewTopUp(NewDate(2025, 6, 1), 1_000_000, ""),
		NewProfit(NewDate(2025, 6, 2), 50_000, ""),
		NewProfit(NewDate(2025, 6, 2), 50_000, ""),
	)

	f, ok := GoalETA(l, Balance(l), dec(10_000_000), NewDate(2025, 6, 5))
	if !ok {
		t.Fatal("GoalETA() not ok, want a forecast")
	}
	if !f.AvgDailyProfit.Equal(dec(100_000)) {
		t.Errorf("AvgDailyProfit = %s, want 100000", f.AvgDailyProfit)
	}
	if f.DaysRemaining != 89 {
		t.Errorf("DaysRemaining = %d, want 89", f.DaysRemaining)
	}
}

func TestGoalETA_UndatedProfits(t *testing.T) {
	// Without dates the record count stands in for the day count.
	l := NewLedger()
	l.Append(
		NewProfit(Date{}, 30_000, ""),
		NewProfit(Date{}, 60_000, ""),
	)

	f, ok := GoalETA(l, Balance(l), dec(1_000_000), NewDate(2025, 6, 5))
	if !ok {
		t.Fatal("GoalETA() not ok, want a forecast")
	}
	if !f.AvgDailyProfit.Equal(dec(45_000)) {
		t.Errorf("AvgDailyProfit = %s, want 45000", f.AvgDailyProfit)
	}
}

func TestGoalETA_NoForecast(t *testing.T) {
	reached := scenarioLedger()

	noProfit := NewLedger()
	noProfit.Append(NewTopUp(NewDate(2025, 6, 1), 1_000_000, ""))

	losing := NewLedger()
	losing.Append(
		NewTopUp(NewDate(2025, 6, 1), 1_000_000, ""),
		NewProfit(NewDate(2025, 6, 2), -50_000, "bad day"),
	)

	tests := []struct {
		name    string
		ledger  *Ledger
		balance float64
		goal    float64
	}{
		{"goal already met", reached, 1_080_000, 1_000_000},
		{"goal met exactly", reached, 1_080_000, 1_080_000},
		{"no profit history", noProfit, 1_000_000, 10_000_000},
		{"negative trend", losing, 950_000, 10_000_000},
		{"empty ledger", NewLedger(), 0, 10_000_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if f, ok := GoalETA(tt.ledger, dec(tt.balance), dec(tt.goal), NewDate(2025, 6, 5)); ok {
				t.Errorf("GoalETA() = %+v, ok; want no forecast", f)
			}
		})
	}
}

func TestDailyGain(t *testing.T) {
	l := scenarioLedger()

	// 1% of 1.1M in top-ups and profits. Withdrawals do not shrink the base.
	if got := DailyGain(l, 1.0); !got.Equal(dec(11_000)) {
		t.Errorf("DailyGain(1%%) = %s, want 11000", got)
	}
	if got := DailyGain(l, 0.5); !got.Equal(dec(5_500)) {
		t.Errorf("DailyGain(0.5%%) = %s, want 5500", got)
	}
	if got := DailyGain(NewLedger(), 1.0); !got.IsZero() {
		t.Errorf("DailyGain(empty) = %s, want 0", got)
	}

	losing := NewLedger()
	losing.Append(NewProfit(NewDate(2025, 6, 2), -50_000, ""))
	if got := DailyGain(losing, 1.0); !got.IsZero() {
		t.Errorf("DailyGain(negative base) = %s, want 0", got)
	}
}
