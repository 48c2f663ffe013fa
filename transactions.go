package fintrack

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Transaction is a single immutable record from the sheet store.
//
// Amount is signed: withdrawals are stored negative so that a plain sum over
// all records nets the balance. Date is the zero value when the feed row
// carried no parseable date (freshly-submitted rows often do not).
type Transaction struct {
	Kind   Kind            // Kind is the transaction type (topup, profit, withdraw).
	Amount decimal.Decimal // Amount is the signed value in currency major units.
	Note   string          // Note is an optional free-text rationale.
	Date   Date            // Date is the day the record was written, possibly zero.
}

// NewTopUp creates a top-up (contribution) transaction.
func NewTopUp[T float32 | float64 | int | int32 | int64 | decimal.Decimal](day Date, amount T, note string) Transaction {
	return Transaction{Kind: TopUp, Amount: newDecimal(amount), Note: note, Date: day}
}

// NewProfit creates a profit (gain) transaction.
func NewProfit[T float32 | float64 | int | int32 | int64 | decimal.Decimal](day Date, amount T, note string) Transaction {
	return Transaction{Kind: Profit, Amount: newDecimal(amount), Note: note, Date: day}
}

// NewWithdraw creates a withdrawal transaction. The amount is recorded
// negative regardless of the sign it is given with.
func NewWithdraw[T float32 | float64 | int | int32 | int64 | decimal.Decimal](day Date, amount T, note string) Transaction {
	return Transaction{Kind: Withdraw, Amount: newDecimal(amount).Abs().Neg(), Note: note, Date: day}
}

// When returns the date of the transaction.
func (t Transaction) When() Date { return t.Date }

func (t Transaction) Equal(o Transaction) bool {
	return t.Kind == o.Kind && t.Amount.Equal(o.Amount) && t.Note == o.Note && t.Date == o.Date
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s on %s", t.Kind, t.Amount, t.Date)
}

// Filters for [Ledger.Transactions].

// AcceptAll accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// ByKind returns a filter accepting only transactions of the given kind.
func ByKind(k Kind) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Kind == k }
}

// InRange returns a filter accepting only transactions dated within r.
// Undated transactions never match a range.
func InRange(r Range) func(Transaction) bool {
	return func(tx Transaction) bool { return !tx.Date.IsZero() && r.Contains(tx.Date) }
}
