package sql

import (
	"context"

	"finsync-server/src/quickbooks"
)

func (s *Store) UpsertLedgerAccounts(ctx context.Context, accounts []quickbooks.Account) error {
	for _, acc := range accounts {
		query := `
			INSERT INTO qbo_accounts (id, name, account_type, account_subtype, fully_qualified_name, active, current_balance, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			ON CONFLICT (id) DO UPDATE SET
				name = $2,
				account_type = $3,
				account_subtype = $4,
				fully_qualified_name = $5,
				active = $6,
				current_balance = $7,
				created_at = NOW(),
				updated_at = NOW()
		`

		_, err := s.Pool.Exec(ctx, query,
			acc.ID,
			acc.Name,
			acc.AccountType,
			acc.AccountSubType,
			acc.FullyQualifiedName,
			acc.Active,
			acc.CurrentBalance,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) UpsertJournalEntry(ctx context.Context, entry quickbooks.JournalEntry) error {
	query := `
		INSERT INTO qbo_journal_entries (id, txn_date, doc_number, private_note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			txn_date = $2,
			doc_number = $3,
			private_note = $4,
			created_at = NOW(),
			updated_at = NOW()
	`

	_, err := s.Pool.Exec(ctx, query, entry.ID, entry.TxnDate, entry.DocNumber, entry.PrivateNote)
	return err
}

func (s *Store) UpsertJournalEntryLines(ctx context.Context, entryID string, lines []quickbooks.Line) error {
	for _, line := range lines {
		query := `
			INSERT INTO qbo_journal_entry_lines (journal_entry_id, line_id, account_id, description, amount, posting_type, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			ON CONFLICT (journal_entry_id, line_id) DO UPDATE SET
				account_id = $3,
				description = $4,
				amount = $5,
				posting_type = $6,
				created_at = NOW(),
				updated_at = NOW()
		`

		_, err := s.Pool.Exec(ctx, query,
			entryID,
			line.ID,
			line.JournalEntryLineDetail.AccountRef.Value,
			line.Description,
			line.Amount,
			line.JournalEntryLineDetail.PostingType,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
