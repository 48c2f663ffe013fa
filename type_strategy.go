package fintrack

import "fmt"

// Strategy defines a named growth-rate preset for the simulator.
type Strategy int

const (
	// Conservative compounds at 0.5% per step.
	Conservative Strategy = iota
	// Balanced compounds at 1.0% per step.
	Balanced
	// Aggressive compounds at 1.5% per step.
	Aggressive
)

func (s Strategy) String() string {
	switch s {
	case Conservative:
		return "conservative"
	case Balanced:
		return "balanced"
	case Aggressive:
		return "aggressive"
	default:
		return "unknown"
	}
}

// Rate returns the per-step growth rate of the strategy.
func (s Strategy) Rate() Percent {
	switch s {
	case Conservative:
		return 0.5
	case Balanced:
		return 1.0
	case Aggressive:
		return 1.5
	default:
		return 0
	}
}

// ParseStrategy parses a string into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "conservative":
		return Conservative, nil
	case "balanced":
		return Balanced, nil
	case "aggressive":
		return Aggressive, nil
	default:
		return 0, fmt.Errorf("unknown strategy: %q", s)
	}
}
