package sync

import (
	"context"
	"fmt"
	"time"

	"finsync-server/src/models"

	"github.com/rs/zerolog"
)

// Journal entries are fetched over a fixed trailing window.
const ledgerLookbackDays = 90

// SyncGeneralLedger pulls the chart of accounts and recent journal entries
// from QuickBooks and upserts them. Fetch and account-batch failures abort
// the run; a failed journal-entry upsert skips that entry, and a failed
// line-item upsert is logged without halting the remaining entries.
func SyncGeneralLedger(ctx context.Context, log zerolog.Logger, qbo LedgerClient, store Store) (models.LedgerSyncResult, error) {
	accounts, err := qbo.FindAccounts(ctx)
	if err != nil {
		return models.LedgerSyncResult{}, fmt.Errorf("fetch QuickBooks accounts: %w", err)
	}

	if err := store.UpsertLedgerAccounts(ctx, accounts); err != nil {
		return models.LedgerSyncResult{}, fmt.Errorf("store QuickBooks accounts: %w", err)
	}

	since := time.Now().AddDate(0, 0, -ledgerLookbackDays)
	entries, err := qbo.FindJournalEntries(ctx, since)
	if err != nil {
		return models.LedgerSyncResult{}, fmt.Errorf("fetch journal entries: %w", err)
	}

	for _, entry := range entries {
		if err := store.UpsertJournalEntry(ctx, entry); err != nil {
			log.Error().Err(err).Str("entry_id", entry.ID).Msg("failed to store journal entry")
			continue
		}

		if len(entry.Line) > 0 {
			if err := store.UpsertJournalEntryLines(ctx, entry.ID, entry.Line); err != nil {
				log.Error().Err(err).Str("entry_id", entry.ID).Msg("failed to store journal entry lines")
			}
		}
	}

	log.Info().
		Int("accounts", len(accounts)).
		Int("journal_entries", len(entries)).
		Msg("general ledger sync complete")

	return models.LedgerSyncResult{
		Accounts:       len(accounts),
		JournalEntries: len(entries),
	}, nil
}
