package sync

import (
	"context"
	"time"

	"finsync-server/src/models"
	"finsync-server/src/quickbooks"

	"github.com/plaid/plaid-go/v41/plaid"
)

// LedgerClient is the QuickBooks surface the ledger sync needs.
type LedgerClient interface {
	FindAccounts(ctx context.Context) ([]quickbooks.Account, error)
	FindJournalEntries(ctx context.Context, since time.Time) ([]quickbooks.JournalEntry, error)
}

// BankClient is the Plaid surface the bank sync needs.
type BankClient interface {
	GetAccounts(ctx context.Context, accessToken string) ([]plaid.AccountBase, error)
	GetTransactions(ctx context.Context, accessToken, startDate, endDate string) ([]plaid.Transaction, error)
}

// Store covers the upserts and remote procedures used by the sync steps.
type Store interface {
	UpsertLedgerAccounts(ctx context.Context, accounts []quickbooks.Account) error
	UpsertJournalEntry(ctx context.Context, entry quickbooks.JournalEntry) error
	UpsertJournalEntryLines(ctx context.Context, entryID string, lines []quickbooks.Line) error
	UpsertBankAccounts(ctx context.Context, accounts []plaid.AccountBase) error
	UpsertBankTransactions(ctx context.Context, transactions []plaid.Transaction) error
	DetectAnomalies(ctx context.Context) ([]models.Anomaly, error)
	RefreshMonthlySummary(ctx context.Context) error
}

// Notifier posts to the Slack webhook.
type Notifier interface {
	PostText(ctx context.Context, text string) error
	PostAnomalies(ctx context.Context, anomalies []models.Anomaly) error
}
