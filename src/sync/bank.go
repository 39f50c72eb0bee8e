package sync

import (
	"context"
	"fmt"
	"time"

	"finsync-server/src/models"

	"github.com/rs/zerolog"
)

const bankLookbackDays = 30

// SyncBankTransactions pulls linked accounts and recent transactions from
// Plaid and upserts them. Unlike the ledger sync, any failure at any step
// aborts the whole operation.
func SyncBankTransactions(ctx context.Context, log zerolog.Logger, bank BankClient, accessToken string, store Store) (models.BankSyncResult, error) {
	accounts, err := bank.GetAccounts(ctx, accessToken)
	if err != nil {
		return models.BankSyncResult{}, fmt.Errorf("fetch Plaid accounts: %w", err)
	}

	if err := store.UpsertBankAccounts(ctx, accounts); err != nil {
		return models.BankSyncResult{}, fmt.Errorf("store Plaid accounts: %w", err)
	}

	endDate := time.Now().Format("2006-01-02")
	startDate := time.Now().AddDate(0, 0, -bankLookbackDays).Format("2006-01-02")

	transactions, err := bank.GetTransactions(ctx, accessToken, startDate, endDate)
	if err != nil {
		return models.BankSyncResult{}, fmt.Errorf("fetch Plaid transactions: %w", err)
	}

	if err := store.UpsertBankTransactions(ctx, transactions); err != nil {
		return models.BankSyncResult{}, fmt.Errorf("store Plaid transactions: %w", err)
	}

	log.Info().
		Int("accounts", len(accounts)).
		Int("transactions", len(transactions)).
		Msg("bank transaction sync complete")

	return models.BankSyncResult{
		Accounts:     len(accounts),
		Transactions: len(transactions),
	}, nil
}
