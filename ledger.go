package fintrack

import "iter"

// Ledger represents the snapshot of transactions delivered by the store.
//
// Transactions keep the order in which the feed delivered them; the ledger
// never re-sorts because undated records carry no meaningful position on a
// time axis.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append adds transactions at the end of the ledger.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator that yields each transaction in its original order.
// A transaction is yielded when at least one filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	// The returned iterator preserves the original order of transactions in the ledger.
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := false
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// OldestTransactionDate returns the earliest date carried by a transaction,
// skipping undated records. It returns the zero date for an all-undated or
// empty ledger.
func (l *Ledger) OldestTransactionDate() Date {
	var oldest Date
	for _, tx := range l.transactions {
		if tx.Date.IsZero() {
			continue
		}
		if oldest.IsZero() || tx.Date.Before(oldest) {
			oldest = tx.Date
		}
	}
	return oldest
}

// NewestTransactionDate returns the latest date carried by a transaction,
// skipping undated records.
func (l *Ledger) NewestTransactionDate() Date {
	var newest Date
	for _, tx := range l.transactions {
		if tx.Date.IsZero() {
			continue
		}
		if newest.IsZero() || tx.Date.After(newest) {
			newest = tx.Date
		}
	}
	return newest
}
