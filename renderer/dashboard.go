package renderer

import (
	"bytes"
	"fmt"

	"github.com/adinata/fintrack"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the dashboard overview: the metrics snapshot,
// the profit trend, and the goal forecast.
func DashboardMarkdown(s *fintrack.Summary, trend []fintrack.TrendPoint, forecast *fintrack.Forecast) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dashboard Overview on %s", s.Date))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Current Balance"),
			md.Bold(s.Money(s.Balance).String()),
		},
		Rows: [][]string{
			{"Total Top-Up", s.Money(s.TopUpTotal).String()},
			{"Total Profit", s.Money(s.ProfitTotal).String()},
			{"Total Withdrawn", s.Money(s.WithdrawTotal).String()},
			{"ROI", s.ROI.SignedString()},
			{"Target Goal", s.Money(s.Goal).String()},
			{"Goal Progress", s.GoalProgress.String()},
		},
	})

	if len(trend) > 0 {
		doc.H2("Profit Trend")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{
				"Period",
				"Profit",
			},
		}
		for _, p := range trend {
			table.Rows = append(table.Rows, []string{p.Label, s.Money(p.Profit).String()})
		}
		doc.Table(table)
	}

	doc.H2("Goal Forecast")
	doc.PlainText(forecastLine(s, forecast))

	return doc.String()
}
