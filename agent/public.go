package agent

import (
	"context"
	"fmt"

	"github.com/adinata/fintrack"
	"github.com/adinata/fintrack/docs"
	"github.com/adinata/fintrack/renderer"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// LoadFunc loads the current ledger snapshot from the store.
type LoadFunc func(ctx context.Context) (*fintrack.Ledger, error)

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expected from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Analyse sentiment of user request, they are here primarily to track their savings:
			the balance, the daily profits, and the progress toward their goal.
			If they are angry try to understand why, and seek for a clear user approval.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

			The user will assume that you know their balance and their goal, check with the Bookkeeper first to understand where they stand.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor creates the search-grounded expert for everything outside the
// ledger: markets, products, rates, news.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is an expert financial advisor,
		very well aware of savings products, market conditions and interest rates,
		and of the latest financial news.
		Ask the Advisor whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in personal finance, you can search and find about anything related to
			savings products, banks, markets, rates etc. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewBookkeeper creates the expert in charge of the user's ledger. It reads
// the store through load and computes figures against the given goal.
func NewBookkeeper(load LoadFunc, goal decimal.Decimal, currency string) *Expert {

	lib := []Function{
		overviewFunc(load, goal, currency),
		transactionsFunc(load, currency),
		simulateFunc(currency),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. It is in charge of reading the user's transaction ledger.
		It can compute the relevant figures about the user's savings: balance, totals, return, goal progress,
		the goal forecast, and it can run growth simulations.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's savings ledger.
				You know how to use the Tools to extract relevant information about the user's balance and goal.
				You are part of a team of experts, yours is everything about the user's ledger. They might ask
				you questions about the user's savings, pardon their approximative language and figure out what they meant.

				Use the available tools to get information about the user's savings
				  - the dashboard overview with balance, totals, return and goal progress
				  - the raw transaction history
				  - growth simulations under a contribution plan
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func overviewFunc(load LoadFunc, goal decimal.Decimal, currency string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Overview",
			Description: `Overview computes the dashboard of the user's savings on a given day:
			current balance, total top-ups, total profits, total withdrawals, return on investment,
			progress toward the goal, the monthly profit trend, and the goal completion forecast.
			`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type: genai.TypeString,
						Description: `The date on which to compute the overview. Today is the default.
						Otherwise it uses a flexible date format based on YYYY-MM-DD:

						` + must(docs.GetTopic("dates")),
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted dashboard of the user's savings.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on, err := parseDate(args)
			if err != nil {
				return errResponse(id, "Overview", err)
			}
			ledger, err := load(ctx)
			if err != nil {
				return errResponse(id, "Overview", fmt.Errorf("could not load ledger: %w", err))
			}

			s := fintrack.Summarize(ledger, goal, currency, on)
			trend := fintrack.ProfitTrend(ledger, fintrack.Monthly)
			var forecast *fintrack.Forecast
			if f, ok := fintrack.GoalETA(ledger, s.Balance, goal, on); ok {
				forecast = &f
			}
			return okResponse(id, "Overview", renderer.DashboardMarkdown(&s, trend, forecast))
		},
	}
}

func transactionsFunc(load LoadFunc, currency string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Transactions",
			Description: `Transactions lists the raw records of the user's ledger, optionally
			restricted to one kind and to a date range. Records freshly written to the store
			may carry no date yet.
			`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"kind": {
						Type:        genai.TypeString,
						Description: "Restrict the listing to one kind: topup, profit, or withdraw.",
					},
					"from": {
						Type:        genai.TypeString,
						Description: "Keep only records on or after this date (flexible format based on YYYY-MM-DD).",
					},
					"to": {
						Type:        genai.TypeString,
						Description: "Keep only records on or before this date (flexible format based on YYYY-MM-DD).",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the matching transactions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			filter, err := parseFilter(args)
			if err != nil {
				return errResponse(id, "Transactions", err)
			}
			ledger, err := load(ctx)
			if err != nil {
				return errResponse(id, "Transactions", fmt.Errorf("could not load ledger: %w", err))
			}
			return okResponse(id, "Transactions", renderer.TransactionsMarkdown("Transactions", ledger, currency, filter))
		},
	}
}

func simulateFunc(currency string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Simulate",
			Description: `Simulate projects a balance under a steady contribution plan with
			compound growth. A cycle is a contribution period of 20 compounding steps.
			`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"amount": {
						Type:        genai.TypeNumber,
						Description: "The contribution added at the start of every cycle, in the user's currency.",
					},
					"cycles": {
						Type:        genai.TypeInteger,
						Description: "The number of contribution cycles to simulate.",
					},
					"strategy": {
						Type:        genai.TypeString,
						Description: "The growth strategy: conservative (0.5% per step), balanced (1%), or aggressive (1.5%). Balanced is the default.",
					},
				},
				Required: []string{"amount", "cycles"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted trajectory with cycle-end balances and the final balance.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			amount, ok := args["amount"].(float64)
			if !ok {
				return errResponse(id, "Simulate", fmt.Errorf("argument 'amount' is not a number as expected but %T", args["amount"]))
			}
			cycles, ok := args["cycles"].(float64)
			if !ok {
				return errResponse(id, "Simulate", fmt.Errorf("argument 'cycles' is not a number as expected but %T", args["cycles"]))
			}
			strategy := fintrack.Balanced
			if s, given := args["strategy"]; given {
				name, ok := s.(string)
				if !ok {
					return errResponse(id, "Simulate", fmt.Errorf("argument 'strategy' is not a string as expected but %T", s))
				}
				var err error
				if strategy, err = fintrack.ParseStrategy(name); err != nil {
					return errResponse(id, "Simulate", err)
				}
			}

			contribution := decimal.NewFromFloat(amount)
			points := fintrack.Simulate(contribution, strategy.Rate(), int(cycles))
			return okResponse(id, "Simulate", renderer.SimulationMarkdown(fintrack.M(contribution, currency), strategy.Rate(), strategy.String(), int(cycles), points))
		},
	}
}

// parseFilter builds a single transaction predicate from kind/from/to args.
// Several args restrict together, so they cannot be separate filters.
func parseFilter(args map[string]any) (func(fintrack.Transaction) bool, error) {
	var kind fintrack.Kind
	if v, given := args["kind"]; given {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("argument 'kind' is not a string as expected but %T", v)
		}
		k, err := fintrack.ParseKind(s)
		if err != nil {
			return nil, err
		}
		kind = k
	}

	from, err := parseDateArg(args, "from")
	if err != nil {
		return nil, err
	}
	to, err := parseDateArg(args, "to")
	if err != nil {
		return nil, err
	}

	return func(tx fintrack.Transaction) bool {
		if kind != "" && tx.Kind != kind {
			return false
		}
		if !from.IsZero() && (tx.Date.IsZero() || tx.Date.Before(from)) {
			return false
		}
		if !to.IsZero() && (tx.Date.IsZero() || tx.Date.After(to)) {
			return false
		}
		return true
	}, nil
}

func parseDate(args map[string]any) (fintrack.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return fintrack.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return fintrack.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}

	date, err := fintrack.ParseDate(sdate)
	if err != nil {
		return fintrack.Today(), fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the format date\n\n%s ", sdate, must(docs.GetTopic("dates")))
	}

	return date, nil
}

func parseDateArg(args map[string]any, key string) (fintrack.Date, error) {
	v, given := args[key]
	if !given {
		return fintrack.Date{}, nil
	}
	s, ok := v.(string)
	if !ok {
		return fintrack.Date{}, fmt.Errorf("argument %q is not a string as expected but %T", key, v)
	}
	date, err := fintrack.ParseDate(s)
	if err != nil {
		return fintrack.Date{}, fmt.Errorf("argument %q must be a valid date got %q. Below is the doc about the format date\n\n%s ", key, s, must(docs.GetTopic("dates")))
	}
	return date, nil
}
