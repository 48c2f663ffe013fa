package renderer

import (
	"bytes"
	"fmt"

	"github.com/adinata/fintrack"
	md "github.com/nao1215/markdown"
)

// GoalMarkdown renders the goal tracker: progress toward the target and the
// linear forecast when one exists.
func GoalMarkdown(s *fintrack.Summary, forecast *fintrack.Forecast) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Goal Tracker on %s", s.Date))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Progress"),
			md.Bold(s.GoalProgress.String()),
		},
		Rows: [][]string{
			{"Current Balance", s.Money(s.Balance).String()},
			{"Target Goal", s.Money(s.Goal).String()},
			{"Remaining", s.Money(s.Goal.Sub(s.Balance)).String()},
		},
	})

	doc.PlainText(progressBar(s.GoalProgress))
	doc.PlainText(forecastLine(s, forecast))

	return doc.String()
}
