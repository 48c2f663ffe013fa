package fintrack

import (
	"fmt"
	"strings"
)

// Kind is a typed string identifying the nature of a transaction.
type Kind string

// Transaction kinds recorded in the sheet store.
const (
	TopUp    Kind = "topup"
	Profit   Kind = "profit"
	Withdraw Kind = "withdraw"
)

func (k Kind) String() string { return string(k) }

// Known reports whether k is one of the recorded kinds. The feed may carry
// rows with other type labels; they are kept in the ledger but match no sum.
func (k Kind) Known() bool {
	switch k {
	case TopUp, Profit, Withdraw:
		return true
	}
	return false
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case TopUp:
		return TopUp, nil
	case Profit:
		return Profit, nil
	case Withdraw:
		return Withdraw, nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}
