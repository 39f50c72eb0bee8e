package sync

import (
	"context"
	"testing"
	"time"

	"github.com/plaid/plaid-go/v41/plaid"
)

func TestSyncBankTransactions(t *testing.T) {
	bank := &mockBankClient{
		accounts:     []plaid.AccountBase{{AccountId: "acc-1"}, {AccountId: "acc-2"}},
		transactions: []plaid.Transaction{{TransactionId: "t-1"}, {TransactionId: "t-2"}, {TransactionId: "t-3"}},
	}
	store := newMockStore()

	result, err := SyncBankTransactions(context.Background(), testLogger(), bank, "access-token", store)
	if err != nil {
		t.Fatalf("SyncBankTransactions failed: %v", err)
	}

	if result.Accounts != 2 || result.Transactions != 3 {
		t.Errorf("got %+v, want 2 accounts and 3 transactions", result)
	}
	if store.storedBankAccounts != 2 || store.storedBankTx != 3 {
		t.Errorf("stored %d accounts and %d transactions, want 2 and 3", store.storedBankAccounts, store.storedBankTx)
	}
}

func TestSyncBankTransactionsWindow(t *testing.T) {
	bank := &mockBankClient{}
	store := newMockStore()

	if _, err := SyncBankTransactions(context.Background(), testLogger(), bank, "access-token", store); err != nil {
		t.Fatalf("SyncBankTransactions failed: %v", err)
	}

	start, err := time.Parse("2006-01-02", bank.startDate)
	if err != nil {
		t.Fatalf("start date %q is not YYYY-MM-DD: %v", bank.startDate, err)
	}
	end, err := time.Parse("2006-01-02", bank.endDate)
	if err != nil {
		t.Fatalf("end date %q is not YYYY-MM-DD: %v", bank.endDate, err)
	}
	if days := end.Sub(start).Hours() / 24; days != 30 {
		t.Errorf("window spans %v days, want 30", days)
	}
}

func TestSyncBankTransactionsFailuresAbort(t *testing.T) {
	tests := []struct {
		name string
		bank *mockBankClient
		init func(*mockStore)
	}{
		{"account fetch fails", &mockBankClient{accountsErr: errBoom}, func(*mockStore) {}},
		{"account store fails", &mockBankClient{}, func(s *mockStore) { s.bankAccountsErr = errBoom }},
		{"transaction fetch fails", &mockBankClient{transactionsErr: errBoom}, func(*mockStore) {}},
		{"transaction store fails", &mockBankClient{}, func(s *mockStore) { s.bankTxErr = errBoom }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockStore()
			tt.init(store)
			if _, err := SyncBankTransactions(context.Background(), testLogger(), tt.bank, "access-token", store); err == nil {
				t.Fatal("expected error to propagate")
			}
		})
	}
}
