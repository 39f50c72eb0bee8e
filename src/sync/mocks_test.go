package sync

import (
	"context"
	"errors"
	"time"

	"finsync-server/src/models"
	"finsync-server/src/quickbooks"

	"github.com/plaid/plaid-go/v41/plaid"
)

var errBoom = errors.New("boom")

type mockLedgerClient struct {
	accounts    []quickbooks.Account
	accountsErr error
	entries     []quickbooks.JournalEntry
	entriesErr  error
	since       time.Time
}

func (m *mockLedgerClient) FindAccounts(ctx context.Context) ([]quickbooks.Account, error) {
	return m.accounts, m.accountsErr
}

func (m *mockLedgerClient) FindJournalEntries(ctx context.Context, since time.Time) ([]quickbooks.JournalEntry, error) {
	m.since = since
	return m.entries, m.entriesErr
}

type mockBankClient struct {
	accounts        []plaid.AccountBase
	accountsErr     error
	transactions    []plaid.Transaction
	transactionsErr error
	startDate       string
	endDate         string
}

func (m *mockBankClient) GetAccounts(ctx context.Context, accessToken string) ([]plaid.AccountBase, error) {
	return m.accounts, m.accountsErr
}

func (m *mockBankClient) GetTransactions(ctx context.Context, accessToken, startDate, endDate string) ([]plaid.Transaction, error) {
	m.startDate = startDate
	m.endDate = endDate
	return m.transactions, m.transactionsErr
}

type mockStore struct {
	ledgerAccountsErr error
	entryErrIDs       map[string]bool
	lineErr           error
	bankAccountsErr   error
	bankTxErr         error
	anomalies         []models.Anomaly
	anomaliesErr      error
	refreshErr        error

	storedLedgerAccounts int
	storedEntries        []string
	storedLines          map[string]int
	storedBankAccounts   int
	storedBankTx         int
	refreshCalls         int
}

func newMockStore() *mockStore {
	return &mockStore{storedLines: make(map[string]int)}
}

func (m *mockStore) UpsertLedgerAccounts(ctx context.Context, accounts []quickbooks.Account) error {
	if m.ledgerAccountsErr != nil {
		return m.ledgerAccountsErr
	}
	m.storedLedgerAccounts += len(accounts)
	return nil
}

func (m *mockStore) UpsertJournalEntry(ctx context.Context, entry quickbooks.JournalEntry) error {
	if m.entryErrIDs[entry.ID] {
		return errBoom
	}
	m.storedEntries = append(m.storedEntries, entry.ID)
	return nil
}

func (m *mockStore) UpsertJournalEntryLines(ctx context.Context, entryID string, lines []quickbooks.Line) error {
	if m.lineErr != nil {
		return m.lineErr
	}
	m.storedLines[entryID] += len(lines)
	return nil
}

func (m *mockStore) UpsertBankAccounts(ctx context.Context, accounts []plaid.AccountBase) error {
	if m.bankAccountsErr != nil {
		return m.bankAccountsErr
	}
	m.storedBankAccounts += len(accounts)
	return nil
}

func (m *mockStore) UpsertBankTransactions(ctx context.Context, transactions []plaid.Transaction) error {
	if m.bankTxErr != nil {
		return m.bankTxErr
	}
	m.storedBankTx += len(transactions)
	return nil
}

func (m *mockStore) DetectAnomalies(ctx context.Context) ([]models.Anomaly, error) {
	return m.anomalies, m.anomaliesErr
}

func (m *mockStore) RefreshMonthlySummary(ctx context.Context) error {
	m.refreshCalls++
	return m.refreshErr
}

type mockNotifier struct {
	textErr      error
	anomaliesErr error

	texts         []string
	anomalyBursts [][]models.Anomaly
}

func (m *mockNotifier) PostText(ctx context.Context, text string) error {
	if m.textErr != nil {
		return m.textErr
	}
	m.texts = append(m.texts, text)
	return nil
}

func (m *mockNotifier) PostAnomalies(ctx context.Context, anomalies []models.Anomaly) error {
	if m.anomaliesErr != nil {
		return m.anomaliesErr
	}
	m.anomalyBursts = append(m.anomalyBursts, anomalies)
	return nil
}
