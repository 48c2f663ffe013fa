package fintrack

import "fmt"

// Validate checks a user-submitted transaction before it goes to the store
// and returns a copy with quick fixes applied, or an error.
//
// Quick fixes: a zero date becomes today, and a positively-signed withdrawal
// is flipped negative to honor the stored sign convention. Feed-decoded
// records are never validated; the store's data is taken as delivered.
func Validate(tx Transaction) (Transaction, error) {
	if !tx.Kind.Known() {
		return tx, fmt.Errorf("unknown transaction kind: %q", tx.Kind)
	}
	if tx.Amount.IsZero() {
		return tx, fmt.Errorf("%s transaction amount must not be zero", tx.Kind)
	}
	if tx.Date.IsZero() {
		tx.Date = Today()
	}
	switch tx.Kind {
	case TopUp, Profit:
		if tx.Amount.IsNegative() {
			return tx, fmt.Errorf("%s transaction amount must be positive, got %s", tx.Kind, tx.Amount)
		}
	case Withdraw:
		if tx.Amount.IsPositive() {
			tx.Amount = tx.Amount.Neg()
		}
	}
	return tx, nil
}
