package fintrack

import (
	"reflect"
	"testing"
)

func TestLedger_Transactions(t *testing.T) {
	tx1_topup := NewTopUp(NewDate(2025, 6, 1), 1_000_000, "initial deposit")
	tx2_profit := NewProfit(NewDate(2025, 6, 2), 50_000, "")
	tx3_undated := NewProfit(Date{}, 25_000, "pending row")
	tx4_withdraw := NewWithdraw(NewDate(2025, 6, 4), 20_000, "coffee fund")

	ledger := &Ledger{
		transactions: []Transaction{tx1_topup, tx2_profit, tx3_undated, tx4_withdraw},
	}

	testCases := []struct {
		name    string
		filters []func(Transaction) bool
		wantTx  []Transaction
	}{
		{
			name:    "accept all keeps delivery order",
			filters: []func(Transaction) bool{AcceptAll},
			wantTx:  []Transaction{tx1_topup, tx2_profit, tx3_undated, tx4_withdraw},
		},
		{
			name:    "by kind",
			filters: []func(Transaction) bool{ByKind(Profit)},
			wantTx:  []Transaction{tx2_profit, tx3_undated},
		},
		{
			name:    "filters combine as a union",
			filters: []func(Transaction) bool{ByKind(TopUp), ByKind(Withdraw)},
			wantTx:  []Transaction{tx1_topup, tx4_withdraw},
		},
		{
			name:    "in range excludes undated",
			filters: []func(Transaction) bool{InRange(NewRange(NewDate(2025, 6, 1), NewDate(2025, 6, 30)))},
			wantTx:  []Transaction{tx1_topup, tx2_profit, tx4_withdraw},
		},
		{
			name:    "no filter yields nothing",
			filters: nil,
			wantTx:  []Transaction{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotTx := []Transaction{}
			for _, tx := range ledger.Transactions(tc.filters...) {
				gotTx = append(gotTx, tx)
			}
			if !reflect.DeepEqual(gotTx, tc.wantTx) {
				t.Errorf("Transactions() got %v, want %v", gotTx, tc.wantTx)
			}
		})
	}
}

func TestLedger_TransactionsIndex(t *testing.T) {
	// The yielded index is the position in the full ledger, not in the
	// filtered view, so callers can name a row for the user.
	ledger := scenarioLedger()

	gotIdx := []int{}
	for i := range ledger.Transactions(ByKind(Profit)) {
		gotIdx = append(gotIdx, i)
	}
	if want := []int{1, 2}; !reflect.DeepEqual(gotIdx, want) {
		t.Errorf("Transactions(ByKind(profit)) indexes = %v, want %v", gotIdx, want)
	}
}

func TestLedger_OldestNewestTransactionDate(t *testing.T) {
	undated := NewLedger()
	undated.Append(NewProfit(Date{}, 10, ""))

	shuffled := NewLedger()
	shuffled.Append(
		NewProfit(NewDate(2025, 6, 3), 10, ""),
		NewProfit(Date{}, 10, ""),
		NewProfit(NewDate(2025, 6, 1), 10, ""),
		NewProfit(NewDate(2025, 6, 2), 10, ""),
	)

	testCases := []struct {
		name       string
		ledger     *Ledger
		wantOldest Date
		wantNewest Date
	}{
		{"empty", NewLedger(), Date{}, Date{}},
		{"all undated", undated, Date{}, Date{}},
		{"scenario", scenarioLedger(), NewDate(2025, 6, 1), NewDate(2025, 6, 4)},
		{"unsorted with undated", shuffled, NewDate(2025, 6, 1), NewDate(2025, 6, 3)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ledger.OldestTransactionDate(); got != tc.wantOldest {
				t.Errorf("OldestTransactionDate() = %s, want %s", got, tc.wantOldest)
			}
			if got := tc.ledger.NewestTransactionDate(); got != tc.wantNewest {
				t.Errorf("NewestTransactionDate() = %s, want %s", got, tc.wantNewest)
			}
		})
	}
}

func TestLedger_Append(t *testing.T) {
	l := NewLedger()
	if l.Len() != 0 {
		t.Fatalf("NewLedger().Len() = %d, want 0", l.Len())
	}
	l.Append(NewTopUp(NewDate(2025, 6, 1), 100, ""))
	l.Append(
		NewProfit(NewDate(2025, 6, 2), 10, ""),
		NewWithdraw(NewDate(2025, 6, 3), 5, ""),
	)
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
}

func TestNewWithdraw_AlwaysNegative(t *testing.T) {
	day := NewDate(2025, 6, 4)
	pos := NewWithdraw(day, 20_000, "")
	neg := NewWithdraw(day, -20_000, "")

	if !pos.Amount.Equal(dec(-20_000)) {
		t.Errorf("NewWithdraw(20000).Amount = %s, want -20000", pos.Amount)
	}
	if !pos.Equal(neg) {
		t.Errorf("NewWithdraw(20000) = %s, NewWithdraw(-20000) = %s, want equal", pos, neg)
	}
}
