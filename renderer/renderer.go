// Package renderer turns ledger snapshots, simulations, and forecasts into
// markdown reports for the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/adinata/fintrack"
)

// forecastLine phrases a goal forecast, or explains why there is none.
func forecastLine(s *fintrack.Summary, forecast *fintrack.Forecast) string {
	if forecast == nil {
		if s.GoalProgress >= 100 {
			return "Goal reached. Time to set a new one."
		}
		return "No forecast: the profit history shows no positive daily trend yet."
	}
	return fmt.Sprintf("Estimated time to reach goal: %d days, around %s, at %s per day.",
		forecast.DaysRemaining, forecast.Date, s.Money(forecast.AvgDailyProfit))
}

// progressBar draws a percentage as a fixed-width text gauge.
func progressBar(p fintrack.Percent) string {
	const width = 20
	filled := int(float64(p) / 100 * width)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %s", strings.Repeat("#", filled), strings.Repeat("-", width-filled), p)
}
