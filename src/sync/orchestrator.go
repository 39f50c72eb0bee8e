package sync

import (
	"context"
	"fmt"

	"finsync-server/src/models"

	"github.com/rs/zerolog"
)

// Runner sequences a full sync: ledger, bank, anomaly check, summary-view
// refresh, consolidated notification. Steps run strictly in order; each
// invocation builds a fresh QuickBooks client (the token refresh happens
// per run).
type Runner struct {
	NewLedgerClient func(ctx context.Context) (LedgerClient, error)
	Bank            BankClient
	BankAccessToken string
	Store           Store
	Notifier        Notifier
	Log             zerolog.Logger

	// InvalidateQueries, when set, is called after a fully successful run to
	// drop cached slash-command responses.
	InvalidateQueries func()
}

// Run executes the full sync. Any failure in the ledger, bank, or anomaly
// steps aborts the remaining steps and propagates. A summary-view refresh
// failure is logged and swallowed, as is a failure to post the final
// notification.
func (r *Runner) Run(ctx context.Context) (models.SyncResult, error) {
	qbo, err := r.NewLedgerClient(ctx)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("quickbooks client: %w", err)
	}

	r.Log.Info().Msg("syncing QuickBooks general ledger")
	glResult, err := SyncGeneralLedger(ctx, r.Log, qbo, r.Store)
	if err != nil {
		return models.SyncResult{}, err
	}

	r.Log.Info().Msg("syncing bank transactions")
	bankResult, err := SyncBankTransactions(ctx, r.Log, r.Bank, r.BankAccessToken, r.Store)
	if err != nil {
		return models.SyncResult{}, err
	}

	r.Log.Info().Msg("checking for anomalies")
	anomalyResult, err := CheckAnomalies(ctx, r.Log, r.Store, r.Notifier)
	if err != nil {
		return models.SyncResult{}, err
	}

	r.Log.Info().Msg("regenerating monthly P&L view")
	if err := r.Store.RefreshMonthlySummary(ctx); err != nil {
		r.Log.Error().Err(err).Msg("failed to regenerate monthly P&L view")
	}

	summary := fmt.Sprintf(
		"✅ Finance sync completed successfully:\n• %d accounts\n• %d journal entries\n• %d bank accounts\n• %d bank transactions\n• %d anomalies detected",
		glResult.Accounts,
		glResult.JournalEntries,
		bankResult.Accounts,
		bankResult.Transactions,
		anomalyResult.AnomaliesDetected,
	)
	if err := r.Notifier.PostText(ctx, summary); err != nil {
		r.Log.Error().Err(err).Msg("failed to post sync summary")
	}

	if r.InvalidateQueries != nil {
		r.InvalidateQueries()
	}

	return models.SyncResult{
		GeneralLedger:    glResult,
		BankTransactions: bankResult,
		Anomalies:        anomalyResult,
	}, nil
}
