package renderer

import (
	"bytes"
	"fmt"

	"github.com/adinata/fintrack"
	md "github.com/nao1215/markdown"
)

// SimulationMarkdown renders a growth trajectory. The label names the
// strategy behind the rate; an empty label means a custom rate. Only
// cycle-end balances make the table; sixty cycles of daily steps would
// drown the terminal.
func SimulationMarkdown(contribution fintrack.Money, rate fintrack.Percent, label string, cycles int, points []fintrack.SimulationPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Earnings Simulation")
	intro := fmt.Sprintf("Contributing %s per cycle for %d cycles, compounding at %s per step", contribution, cycles, rate)
	if label != "" {
		intro += fmt.Sprintf(" (%s strategy)", label)
	}
	doc.PlainText(intro + ".")

	if len(points) == 0 {
		doc.PlainText("Nothing to simulate: the duration is zero cycles.")
		return doc.String()
	}

	cur := contribution.Currency()
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Cycle",
			"Step",
			"Balance",
		},
	}
	for _, p := range points {
		if p.Step%fintrack.StepsPerCycle != 0 {
			continue
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", p.Step/fintrack.StepsPerCycle),
			fmt.Sprintf("%d", p.Step),
			fintrack.M(p.Balance, cur).String(),
		})
	}
	doc.Table(table)

	if final, ok := fintrack.FinalBalance(points); ok {
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{
				md.Bold("Final Balance"),
				md.Bold(fintrack.M(final, cur).String()),
			},
		})
	}

	return doc.String()
}
