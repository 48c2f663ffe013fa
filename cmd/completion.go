package cmd

import (
	"github.com/adinata/fintrack/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the application. It covers
// the same commands Register installs.
func Completion() *complete.Command {
	record := &complete.Command{Flags: map[string]complete.Predictor{
		"amount": predict.Nothing,
		"note":   predict.Nothing,
		"y":      predict.Nothing,
	}}
	periods := predict.Set{"day", "week", "month", "quarter", "year"}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.toml"),
		},
		Sub: map[string]*complete.Command{
			"topup":    record,
			"profit":   record,
			"withdraw": record,
			"autoprofit": {Flags: map[string]complete.Predictor{
				"rate": predict.Nothing,
				"note": predict.Nothing,
				"y":    predict.Nothing,
			}},
			"tx": {Flags: map[string]complete.Predictor{
				"p":    periods,
				"s":    predict.Nothing,
				"d":    predict.Nothing,
				"head": predict.Nothing,
				"tail": predict.Nothing,
			}},
			"export": {Flags: map[string]complete.Predictor{
				"o": predict.Files("*.csv"),
			}},
			"dashboard": {Flags: map[string]complete.Predictor{
				"p":       predict.Set{"daily", "monthly"},
				"refresh": predict.Nothing,
			}},
			"goal": {Flags: map[string]complete.Predictor{
				"target": predict.Nothing,
			}},
			"simulate": {Flags: map[string]complete.Predictor{
				"topup":    predict.Nothing,
				"rate":     predict.Nothing,
				"strategy": predict.Set{"conservative", "balanced", "aggressive"},
				"months":   predict.Nothing,
			}},
			"publish": {Flags: map[string]complete.Predictor{
				"o":           predict.Dirs("*"),
				"frontmatter": predict.Files("*"),
			}},
			"topic":  {Args: topicPredictor()},
			"assist": {},
		},
	}
}

// topicPredictor completes topic names from the embedded documentation.
func topicPredictor() complete.Predictor {
	names, err := docs.GetAllTopics()
	if err != nil {
		return predict.Nothing
	}
	return predict.Set(append(names, "readme"))
}
